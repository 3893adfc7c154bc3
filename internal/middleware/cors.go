package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS builds the CORS layer. Production restricts to configured origins;
// everything else is permissive for local development.
func CORS(environment string, allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if environment == "production" && len(allowedOrigins) > 0 {
		cfg.AllowOrigins = allowedOrigins
	} else {
		cfg.AllowOriginFunc = func(origin string) bool { return true }
	}

	return cors.New(cfg)
}
