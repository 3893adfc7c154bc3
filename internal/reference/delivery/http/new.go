package http

import (
	"github.com/gin-gonic/gin"

	"episode-srv/internal/middleware"
	"episode-srv/internal/reference"
	"episode-srv/pkg/log"
)

// Handler - Interface for the reference HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc reference.UseCase
}

// New - Factory
func New(l log.Logger, uc reference.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
