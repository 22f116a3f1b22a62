package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-parser/internal/resumes"
	"resume-parser/internal/shared/config"
	"resume-parser/internal/shared/metrics"
	"resume-parser/internal/shared/server/middleware"
	"resume-parser/internal/shared/server/respond"
)

// RouterDeps bundles the handlers the router mounts.
type RouterDeps struct {
	Config         config.Config
	ResumesHandler *resumes.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.APIKeyAuth(deps.Config.APIKey),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.ResumesHandler.RegisterRoutes(api)

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
