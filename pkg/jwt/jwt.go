package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"episode-srv/pkg/scope"
)

// Generate issues a new HS256 token for the given user.
func (m *Manager) Generate(userID string) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify parses and validates a token, returning the caller payload.
// Expired and otherwise-invalid tokens yield distinct sentinel errors so the
// auth gate can report a precise reason.
func (m *Manager) Verify(tokenString string) (scope.Payload, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return scope.Payload{}, ErrTokenExpired
		}
		return scope.Payload{}, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return scope.Payload{}, ErrTokenInvalid
	}
	if claims.Subject == "" {
		return scope.Payload{}, ErrTokenInvalid
	}

	p := scope.Payload{
		UserID: claims.Subject,
		Issuer: claims.Issuer,
		ID:     claims.ID,
	}
	if claims.IssuedAt != nil {
		p.IssuedAt = claims.IssuedAt.Unix()
	}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Unix()
	}
	return p, nil
}
