package http

import (
	"github.com/gin-gonic/gin"

	"github.com/dondeestakoko/easemyday/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/extract", mw.RateLimit(), h.Extract)
	rg.POST("/commit", mw.RateLimit(), h.Commit)
	rg.POST("/transcribe", mw.RateLimit(), h.Transcribe)
	rg.GET("/agenda/digest", mw.RateLimit(), h.Digest)
}
