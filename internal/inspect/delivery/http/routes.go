package http

import (
	"github.com/gin-gonic/gin"

	"botschema/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Every route
// is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/decode/:entity", mw.RateLimit(), h.Decode)
	rg.POST("/encode/:method", mw.RateLimit(), h.Encode)
	rg.GET("/enums", mw.RateLimit(), h.Enums)
	rg.GET("/entities/:entity", mw.RateLimit(), h.Entity)
}
