package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/dondeestakoko/easemyday/internal/middleware"
	"github.com/dondeestakoko/easemyday/internal/notes"
	notesHTTP "github.com/dondeestakoko/easemyday/internal/notes/delivery/http"
	notesRepo "github.com/dondeestakoko/easemyday/internal/notes/repository/jsonfile"
	notesUC "github.com/dondeestakoko/easemyday/internal/notes/usecase"
)

// setupNotesDomain initializes the notes domain and registers its routes.
// The service is returned so the extraction domain can write notes too.
func (srv HTTPServer) setupNotesDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) notes.Service {
	// 1. Repository
	repo := notesRepo.New(srv.cfg.Store.NotesPath)

	// 2. UseCase
	svc := notesUC.New(srv.l, repo)

	// 3. HTTP Handler
	h := notesHTTP.New(srv.l, svc)

	// 4. Routes: registers /api/v1/notes
	notesHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Notes domain registered")
	return svc
}
