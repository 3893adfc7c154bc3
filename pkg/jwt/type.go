package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds JWT manager configuration.
type Config struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

// Claims is the token claims structure. The caller identity rides in the
// registered subject claim.
type Claims struct {
	jwt.RegisteredClaims
}

// Manager handles token generation and verification. Safe for concurrent use.
type Manager struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
}
