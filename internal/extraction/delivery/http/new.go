package http

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/dondeestakoko/easemyday/internal/extraction"
	pkgLog "github.com/dondeestakoko/easemyday/pkg/log"
)

// Transcriber converts an uploaded audio file to text.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}

// Handler is the public interface for the extraction HTTP delivery layer.
type Handler interface {
	Extract(c *gin.Context)
	Commit(c *gin.Context)
	Transcribe(c *gin.Context)
	Digest(c *gin.Context)
}

type handler struct {
	l           pkgLog.Logger
	uc          extraction.UseCase
	transcriber Transcriber
}

// New creates a new HTTP handler for the extraction domain. The transcriber
// may be nil; the transcribe route then reports unavailability.
func New(l pkgLog.Logger, uc extraction.UseCase, transcriber Transcriber) *handler {
	return &handler{
		l:           l,
		uc:          uc,
		transcriber: transcriber,
	}
}
