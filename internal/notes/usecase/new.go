package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/dondeestakoko/easemyday/internal/notes/repository"
	pkgLog "github.com/dondeestakoko/easemyday/pkg/log"
)

type implService struct {
	l    pkgLog.Logger
	repo repository.NoteRepository
	now  func() time.Time
	id   func() string
}

// New creates a new notes Service instance.
func New(l pkgLog.Logger, repo repository.NoteRepository) *implService {
	return &implService{
		l:    l,
		repo: repo,
		now:  time.Now,
		id:   func() string { return uuid.NewString() },
	}
}
