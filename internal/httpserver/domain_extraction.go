package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	extractionHTTP "github.com/dondeestakoko/easemyday/internal/extraction/delivery/http"
	"github.com/dondeestakoko/easemyday/internal/extraction/repository"
	extractionRepo "github.com/dondeestakoko/easemyday/internal/extraction/repository/jsonfile"
	extractionUC "github.com/dondeestakoko/easemyday/internal/extraction/usecase"
	"github.com/dondeestakoko/easemyday/internal/middleware"
	"github.com/dondeestakoko/easemyday/internal/notes"
)

// setupExtractionDomain initializes the extraction domain and registers its
// routes. The item repository is returned so the suggest domain can read the
// committed items.
func (srv HTTPServer) setupExtractionDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, noteSvc notes.Service) repository.ItemRepository {
	// 1. Repository
	repo := extractionRepo.New(srv.cfg.Store.ItemsPath)

	// 2. UseCase
	uc := extractionUC.New(
		srv.l,
		srv.llm,
		srv.calendar,
		srv.tasks,
		noteSvc,
		repo,
		srv.dateMath,
		extractionUC.Settings{
			Timezone:    srv.cfg.GoogleCalendar.Timezone,
			CalendarID:  srv.cfg.GoogleCalendar.CalendarID,
			TasklistID:  srv.cfg.GoogleTasks.TasklistID,
			StrictDates: srv.cfg.Extraction.StrictDates,
		},
	)

	// 3. HTTP Handler
	h := extractionHTTP.New(srv.l, uc, srv.transcriber)

	// 4. Routes: registers /api/v1/extract, /commit, /transcribe, /agenda/digest
	extractionHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Extraction domain registered")
	return repo
}
