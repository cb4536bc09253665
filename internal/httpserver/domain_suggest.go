package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	extractionrepo "github.com/dondeestakoko/easemyday/internal/extraction/repository"
	"github.com/dondeestakoko/easemyday/internal/middleware"
	suggestHTTP "github.com/dondeestakoko/easemyday/internal/suggest/delivery/http"
	suggestRepo "github.com/dondeestakoko/easemyday/internal/suggest/repository/jsonfile"
	suggestUC "github.com/dondeestakoko/easemyday/internal/suggest/usecase"
)

// setupSuggestDomain initializes the suggest domain and registers its routes.
func (srv HTTPServer) setupSuggestDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, items extractionrepo.ItemRepository) {
	// 1. Repository
	writer := suggestRepo.New(srv.cfg.Store.SuggestionsPath)

	// 2. UseCase
	uc := suggestUC.New(srv.l, srv.llm, items, writer, srv.cfg.Suggest.Temperature)

	// 3. HTTP Handler
	h := suggestHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/suggest
	suggestHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Suggest domain registered")
}
