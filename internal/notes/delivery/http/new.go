package http

import (
	"github.com/gin-gonic/gin"

	"github.com/dondeestakoko/easemyday/internal/notes"
	pkgLog "github.com/dondeestakoko/easemyday/pkg/log"
)

// Handler is the public interface for the notes HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Archive(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l   pkgLog.Logger
	svc notes.Service
}

// New creates a new HTTP handler for the notes domain.
func New(l pkgLog.Logger, svc notes.Service) *handler {
	return &handler{
		l:   l,
		svc: svc,
	}
}
