package scope

import (
	"context"

	"episode-srv/internal/model"
)

// Payload is the verified token payload.
type Payload struct {
	UserID    string
	Issuer    string
	ID        string
	IssuedAt  int64
	ExpiresAt int64
}

// Manager verifies credentials into payloads. Implemented by pkg/jwt.
type Manager interface {
	Verify(token string) (Payload, error)
}

// NewScope builds the caller scope from a verified payload.
func NewScope(payload Payload) model.Scope {
	return model.Scope{
		UserID: payload.UserID,
	}
}

type contextKey int

const (
	payloadKey contextKey = iota
	scopeKey
)

// SetPayloadToContext attaches the verified payload to the request context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadKey, payload)
}

// GetPayloadFromContext returns the verified payload, zero value if absent.
func GetPayloadFromContext(ctx context.Context) Payload {
	p, _ := ctx.Value(payloadKey).(Payload)
	return p
}

// SetScopeToContext attaches the caller scope to the request context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey, sc)
}

// GetScopeFromContext returns the caller scope, zero value if absent.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, _ := ctx.Value(scopeKey).(model.Scope)
	return sc
}
