package main

import (
	"context"
	"fmt"
	"time"

	"episode-srv/config"
	configPostgre "episode-srv/config/postgre"
	_ "episode-srv/docs" // Import swagger docs
	"episode-srv/internal/httpserver"
	pkgJWT "episode-srv/pkg/jwt"
	"episode-srv/pkg/log"
)

// @title       Joy of Painting Episode API
// @description Filterable catalog of "The Joy of Painting" episodes with their colors, subjects, tools and techniques.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Initialize JWT manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// 5. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		PostgresDB: postgresDB,

		JWTManager: jwtManager,

		CORS: cfg.CORS,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
	}
}
