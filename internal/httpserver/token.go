package httpserver

import (
	"github.com/gin-gonic/gin"

	"episode-srv/pkg/response"
	"episode-srv/pkg/scope"
)

// devToken issues an admin token. Registered outside production only.
// @Summary Issue development token
// @Description Issue a short-lived admin token for trying the API locally
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Token issued"
// @Router /token [get]
func (srv HTTPServer) devToken(c *gin.Context) {
	token, err := srv.jwtManager.Generate("admin")
	if err != nil {
		srv.l.Errorf(c.Request.Context(), "httpserver.devToken: token generation failed: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"token": token})
}

// protected echoes the verified caller identity. Registered outside
// production only, behind the auth gate.
// @Summary Verify token
// @Description Echo the identity behind a valid token
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Access granted"
// @Failure 401 {object} response.Resp
// @Security Bearer
// @Router /protected [get]
func (srv HTTPServer) protected(c *gin.Context) {
	sc := scope.GetScopeFromContext(c.Request.Context())

	response.OK(c, gin.H{
		"message": "Access granted",
		"user":    sc.UserID,
	})
}
