package http

import (
	"github.com/gin-gonic/gin"

	"episode-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/reference")
	api.Use(mw.Auth())
	{
		api.GET("/colors", h.ListColors)
		api.GET("/subjects", h.ListSubjects)
		api.GET("/tools", h.ListTools)
		api.GET("/techniques", h.ListTechniques)
	}
}
