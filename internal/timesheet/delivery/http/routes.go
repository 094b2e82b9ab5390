package http

import (
	"github.com/gin-gonic/gin"

	"voice-timesheet/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// The process route is rate limited to protect remote-model quota.
func RegisterRoutes(r *gin.Engine, h *handler, mw middleware.Middleware) {
	r.GET("/", h.Index)
	r.POST("/process", mw.RateLimit(), h.Process)
	r.GET("/download", h.Download)
	r.POST("/clear", h.Clear)
	r.GET("/projects", h.Projects)
}
