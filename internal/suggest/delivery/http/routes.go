package http

import (
	"github.com/gin-gonic/gin"

	"github.com/dondeestakoko/easemyday/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/suggest", mw.RateLimit(), h.Suggest)
}
