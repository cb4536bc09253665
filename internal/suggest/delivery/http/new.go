package http

import (
	"github.com/gin-gonic/gin"

	"github.com/dondeestakoko/easemyday/internal/suggest"
	pkgLog "github.com/dondeestakoko/easemyday/pkg/log"
)

// Handler is the public interface for the suggest HTTP delivery layer.
type Handler interface {
	Suggest(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc suggest.UseCase
}

// New creates a new HTTP handler for the suggest domain.
func New(l pkgLog.Logger, uc suggest.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
