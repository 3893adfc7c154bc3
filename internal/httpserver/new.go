package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"episode-srv/config"
	pkgJWT "episode-srv/pkg/jwt"
	"episode-srv/pkg/log"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB *sql.DB

	// Authentication Configuration
	jwtManager *pkgJWT.Manager

	// CORS Configuration
	allowedOrigins []string
}

type Config struct {
	// Server Configuration
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB *sql.DB

	// Authentication Configuration
	JWTManager *pkgJWT.Manager

	// CORS Configuration
	CORS config.CORSConfig
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		postgresDB: cfg.PostgresDB,

		jwtManager: cfg.JWTManager,

		allowedOrigins: cfg.CORS.AllowedOrigins,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}

	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}

	return nil
}
