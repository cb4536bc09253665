package usecase

import (
	"context"
	"time"

	"github.com/dondeestakoko/easemyday/internal/extraction/repository"
	"github.com/dondeestakoko/easemyday/internal/extraction/schedule"
	"github.com/dondeestakoko/easemyday/internal/notes"
	"github.com/dondeestakoko/easemyday/pkg/datemath"
	"github.com/dondeestakoko/easemyday/pkg/gcalendar"
	"github.com/dondeestakoko/easemyday/pkg/gtasks"
	"github.com/dondeestakoko/easemyday/pkg/llmprovider"
	pkgLog "github.com/dondeestakoko/easemyday/pkg/log"
)

// Calendar is the calendar collaborator surface used by the pipeline.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// TaskWriter inserts to_do items into Google Tasks.
type TaskWriter interface {
	CreateTask(ctx context.Context, req gtasks.CreateTaskRequest) (*gtasks.Task, error)
}

// Settings carries per-deployment behavior knobs.
type Settings struct {
	Timezone    string
	CalendarID  string
	TasklistID  string
	StrictDates bool
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      *llmprovider.Manager
	calendar Calendar
	tasks    TaskWriter
	noteSvc  notes.Service
	repo     repository.ItemRepository
	checker  *schedule.Checker
	dateMath *datemath.Parser
	settings Settings
	now      func() time.Time
}

// New creates a new extraction UseCase instance. The calendar, tasks, and
// notes collaborators may be nil; affected items are then skipped or stored
// without that side effect.
func New(
	l pkgLog.Logger,
	llm *llmprovider.Manager,
	calendar Calendar,
	tasks TaskWriter,
	noteSvc notes.Service,
	repo repository.ItemRepository,
	dateMath *datemath.Parser,
	settings Settings,
) *implUseCase {
	uc := &implUseCase{
		l:        l,
		llm:      llm,
		calendar: calendar,
		tasks:    tasks,
		noteSvc:  noteSvc,
		repo:     repo,
		dateMath: dateMath,
		settings: settings,
		now:      time.Now,
	}
	if calendar != nil {
		uc.checker = schedule.NewChecker(calendar, settings.CalendarID, l)
	}
	return uc
}
