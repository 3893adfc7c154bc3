package http

import (
	"github.com/gin-gonic/gin"

	"episode-srv/internal/episode"
	"episode-srv/internal/middleware"
	"episode-srv/pkg/log"
)

// Handler - Interface for the episode HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc episode.UseCase
}

// New - Factory
func New(l log.Logger, uc episode.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
