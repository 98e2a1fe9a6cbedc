package server

import (
	"github.com/gin-gonic/gin"

	"readiness-backend/internal/shared/config"
	"readiness-backend/internal/shared/server/middleware"
)

// NewEngine builds the gin engine with the shared middleware chain. Routes
// are registered by the bootstrap layer.
func NewEngine(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)
	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
