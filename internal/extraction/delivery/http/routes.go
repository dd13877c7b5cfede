package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Extraction is stateless, so only rate limiting guards it.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, guards ...gin.HandlerFunc) {
	extractions := rg.Group("/extractions", guards...)
	{
		extractions.POST("", h.Extract)
		extractions.POST("/explain", h.Explain)
	}
}
