package jwt

import "errors"

var (
	// ErrTokenExpired - the token signature is valid but past its expiry.
	ErrTokenExpired = errors.New("jwt: token has expired")

	// ErrTokenInvalid - the token is malformed, has a bad signature, or
	// carries an unusable payload.
	ErrTokenInvalid = errors.New("jwt: token is invalid")
)
