package newapp

import (
	"github.com/Lax999/Newapp/sessions"
	"github.com/gin-gonic/gin"
)

// NewRouter mounts the HTTP and WebSocket chat surfaces for an orchestrator
// under /api/v1 and returns the engine ready to serve.
func NewRouter(o *Orchestrator) *gin.Engine {
	router := gin.Default()
	api := router.Group("/api/v1")

	sessions.NewHTTPSession(o).RegisterRoutes(api)
	sessions.RegisterWebSocketRoute(api, o)

	return router
}
