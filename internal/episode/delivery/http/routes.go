package http

import (
	"github.com/gin-gonic/gin"

	"episode-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api")
	api.Use(mw.Auth())
	{
		api.GET("/episodes", h.ListEpisodes)
	}
}
