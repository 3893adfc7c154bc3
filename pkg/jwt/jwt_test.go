package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewRejectsShortSecret(t *testing.T) {
	_, err := New(Config{SecretKey: "too-short"})
	require.Error(t, err)
}

func TestGenerateVerifyRoundTrip(t *testing.T) {
	m, err := New(Config{SecretKey: testSecret, Issuer: "episode-srv", TTL: time.Hour})
	require.NoError(t, err)

	token, err := m.Generate("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", payload.UserID)
	assert.Equal(t, "episode-srv", payload.Issuer)
	assert.NotEmpty(t, payload.ID)
	assert.Greater(t, payload.ExpiresAt, payload.IssuedAt)
}

func TestVerifyExpiredToken(t *testing.T) {
	m, err := New(Config{SecretKey: testSecret, Issuer: "episode-srv", TTL: -time.Minute})
	require.NoError(t, err)

	token, err := m.Generate("admin")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTamperedToken(t *testing.T) {
	m, err := New(Config{SecretKey: testSecret, Issuer: "episode-srv", TTL: time.Hour})
	require.NoError(t, err)

	token, err := m.Generate("admin")
	require.NoError(t, err)

	_, err = m.Verify(token + "x")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyWrongKey(t *testing.T) {
	issuer, err := New(Config{SecretKey: testSecret, Issuer: "episode-srv", TTL: time.Hour})
	require.NoError(t, err)
	verifier, err := New(Config{SecretKey: "ffffffffffffffffffffffffffffffff", Issuer: "episode-srv", TTL: time.Hour})
	require.NoError(t, err)

	token, err := issuer.Generate("admin")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	m, err := New(Config{SecretKey: testSecret, TTL: time.Hour})
	require.NoError(t, err)

	_, err = m.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
