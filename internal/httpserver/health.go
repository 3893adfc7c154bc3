package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"episode-srv/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "The Joy of Painting catalog API"
	HealthVersion = "1.0.0"
	ServiceName   = "episode-srv"
)

// homeCheck confirms the API is up.
// @Summary Home
// @Description Check if the API is running
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is running"
// @Router / [get]
func (srv HTTPServer) homeCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "OK",
		"message": "API is running",
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   HealthVersion,
		"service":   ServiceName,
	})
}

// readyCheck handles readiness check requests (Postgres).
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := srv.postgresDB.PingContext(ctx); err != nil {
		c.JSON(503, gin.H{
			"status":  "not ready",
			"message": "Database connection failed",
			"error":   err.Error(),
		})
		return
	}
	response.OK(c, gin.H{
		"status":   "ready",
		"message":  HealthMessage,
		"version":  HealthVersion,
		"service":  ServiceName,
		"database": "connected",
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
