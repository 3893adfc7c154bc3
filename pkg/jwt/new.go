package jwt

import "fmt"

// New creates a new JWT manager with an HS256 symmetric key.
func New(cfg Config) (*Manager, error) {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, fmt.Errorf("secret key must be at least %d characters long, got %d", MinSecretKeyLen, len(cfg.SecretKey))
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Manager{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		ttl:       ttl,
	}, nil
}
