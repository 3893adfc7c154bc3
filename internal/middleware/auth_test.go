package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgJWT "episode-srv/pkg/jwt"
	"episode-srv/pkg/log"
	"episode-srv/pkg/response"
	"episode-srv/pkg/scope"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newAuthRouter(t *testing.T, ttl time.Duration) (*gin.Engine, *pkgJWT.Manager) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	manager, err := pkgJWT.New(pkgJWT.Config{SecretKey: testSecret, Issuer: "episode-srv", TTL: ttl})
	require.NoError(t, err)

	mw := New(log.NewNoop(), manager)

	r := gin.New()
	r.GET("/guarded", mw.Auth(), func(c *gin.Context) {
		sc := scope.GetScopeFromContext(c.Request.Context())
		response.OK(c, gin.H{"user": sc.UserID})
	})

	return r, manager
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func respMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Message
}

func TestAuthMissingHeader(t *testing.T) {
	r, _ := newAuthRouter(t, time.Hour)

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authorization header missing", respMessage(t, w))
}

func TestAuthInvalidFormat(t *testing.T) {
	r, manager := newAuthRouter(t, time.Hour)

	token, err := manager.Generate("admin")
	require.NoError(t, err)

	w := doRequest(r, "Basic "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid authorization format", respMessage(t, w))
}

func TestAuthEmptyToken(t *testing.T) {
	r, _ := newAuthRouter(t, time.Hour)

	w := doRequest(r, "Bearer   ")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token is missing", respMessage(t, w))
}

func TestAuthExpiredToken(t *testing.T) {
	r, manager := newAuthRouter(t, -time.Minute)

	token, err := manager.Generate("admin")
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token has expired", respMessage(t, w))
}

func TestAuthInvalidToken(t *testing.T) {
	r, _ := newAuthRouter(t, time.Hour)

	w := doRequest(r, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token is invalid", respMessage(t, w))
}

func TestAuthValidTokenReachesHandler(t *testing.T) {
	r, manager := newAuthRouter(t, time.Hour)

	token, err := manager.Generate("admin")
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "admin", body["user"])
}
