package usecase

import (
	extractionrepo "github.com/dondeestakoko/easemyday/internal/extraction/repository"
	"github.com/dondeestakoko/easemyday/internal/suggest/repository"
	"github.com/dondeestakoko/easemyday/pkg/llmprovider"
	pkgLog "github.com/dondeestakoko/easemyday/pkg/log"

	"github.com/google/uuid"
)

type implUseCase struct {
	l           pkgLog.Logger
	llm         *llmprovider.Manager
	items       extractionrepo.ItemRepository
	writer      repository.SuggestionWriter
	temperature float64
	requestID   func() string
}

// New creates a new suggest UseCase instance.
func New(
	l pkgLog.Logger,
	llm *llmprovider.Manager,
	items extractionrepo.ItemRepository,
	writer repository.SuggestionWriter,
	temperature float64,
) *implUseCase {
	return &implUseCase{
		l:           l,
		llm:         llm,
		items:       items,
		writer:      writer,
		temperature: temperature,
		requestID:   func() string { return uuid.NewString() },
	}
}
