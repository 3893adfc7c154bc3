package jwt

import "time"

const (
	// MinSecretKeyLen is the minimum length for the HS256 secret key.
	MinSecretKeyLen = 32
	// DefaultTTL is the token lifetime when config does not set one.
	DefaultTTL = 24 * time.Hour
)
