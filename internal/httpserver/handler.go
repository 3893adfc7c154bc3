package httpserver

import (
	"context"

	episodehttp "episode-srv/internal/episode/delivery/http"
	episodePostgre "episode-srv/internal/episode/repository/postgre"
	episodeUsecase "episode-srv/internal/episode/usecase"
	"episode-srv/internal/middleware"
	referencehttp "episode-srv/internal/reference/delivery/http"
	referencePostgre "episode-srv/internal/reference/repository/postgre"
	referenceUsecase "episode-srv/internal/reference/usecase"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, srv.jwtManager)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes(mw)

	// Initialize repositories
	episodeRepo := episodePostgre.New(srv.l, srv.postgresDB)
	referenceRepo := referencePostgre.New(srv.l, srv.postgresDB)

	// Initialize usecases
	episodeUC := episodeUsecase.New(episodeRepo, srv.l)
	referenceUC := referenceUsecase.New(referenceRepo, srv.l)

	// Initialize HTTP handlers
	episodeHandler := episodehttp.New(srv.l, episodeUC)
	referenceHandler := referencehttp.New(srv.l, referenceUC)

	// Map routes
	root := srv.gin.Group("")
	episodeHandler.RegisterRoutes(root, mw)
	referenceHandler.RegisterRoutes(root, mw)
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l))
	srv.gin.Use(middleware.CORS(srv.environment, srv.allowedOrigins))

	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (strict origins only)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive)", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes(mw middleware.Middleware) {
	srv.gin.GET("/", srv.homeCheck)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/api/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Token issuance shortcut (development only)
	if srv.environment != "production" {
		srv.gin.GET("/token", srv.devToken)
		srv.gin.GET("/protected", mw.Auth(), srv.protected)
	}

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
