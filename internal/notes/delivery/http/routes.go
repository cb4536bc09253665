package http

import (
	"github.com/gin-gonic/gin"

	"github.com/dondeestakoko/easemyday/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	grp := rg.Group("/notes")
	{
		grp.POST("", mw.RateLimit(), h.Create)
		grp.GET("", mw.RateLimit(), h.List)
		grp.PUT("/:id", mw.RateLimit(), h.Update)
		grp.POST("/:id/archive", mw.RateLimit(), h.Archive)
		grp.DELETE("/:id", mw.RateLimit(), h.Delete)
	}
}
