package usecase

// Shared fakes for the usecase tests.

import (
	"context"
	"time"

	"github.com/dondeestakoko/easemyday/internal/extraction/repository"
	"github.com/dondeestakoko/easemyday/internal/model"
	"github.com/dondeestakoko/easemyday/internal/notes"
	"github.com/dondeestakoko/easemyday/pkg/datemath"
	"github.com/dondeestakoko/easemyday/pkg/gcalendar"
	"github.com/dondeestakoko/easemyday/pkg/gtasks"
	"github.com/dondeestakoko/easemyday/pkg/llmprovider"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}

// stubProvider returns a fixed completion, or an error.
type stubProvider struct {
	content string
	err     error
	lastReq *llmprovider.Request
}

func (p *stubProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	p.lastReq = req
	if p.err != nil {
		return nil, p.err
	}
	return &llmprovider.Response{
		Content:      p.content,
		ProviderName: "stub",
		ModelName:    "stub-model",
		Usage:        &llmprovider.Usage{},
	}, nil
}

func (p *stubProvider) Name() string  { return "stub" }
func (p *stubProvider) Model() string { return "stub-model" }

func newLLM(p llmprovider.Provider) *llmprovider.Manager {
	return llmprovider.NewManager([]llmprovider.Provider{p}, &llmprovider.Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
	}, mockLogger{})
}

// memRepo is an in-memory ItemRepository.
type memRepo struct {
	items     []model.ExtractedItem
	appended  []model.ExtractedItem
	loadErr   error
	appendErr error
}

var _ repository.ItemRepository = (*memRepo)(nil)

func (r *memRepo) Load(ctx context.Context) ([]model.ExtractedItem, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.items, nil
}

func (r *memRepo) Append(ctx context.Context, items []model.ExtractedItem) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.appended = append(r.appended, items...)
	return nil
}

// fakeCalendar records inserts and serves a canned event list.
type fakeCalendar struct {
	events      []gcalendar.Event
	listErr     error
	createErr   error
	created     []gcalendar.CreateEventRequest
	lastListReq gcalendar.ListEventsRequest
}

func (c *fakeCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if c.createErr != nil {
		return nil, c.createErr
	}
	c.created = append(c.created, req)
	return &gcalendar.Event{ID: "ev1", Summary: req.Summary}, nil
}

func (c *fakeCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	c.lastListReq = req
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.events, nil
}

// fakeTasks records task inserts.
type fakeTasks struct {
	created []gtasks.CreateTaskRequest
	err     error
}

func (t *fakeTasks) CreateTask(ctx context.Context, req gtasks.CreateTaskRequest) (*gtasks.Task, error) {
	if t.err != nil {
		return nil, t.err
	}
	t.created = append(t.created, req)
	return &gtasks.Task{ID: "t1", Title: req.Title}, nil
}

// fakeNotes records note creation.
type fakeNotes struct {
	created []notes.CreateInput
	err     error
}

func (n *fakeNotes) Create(ctx context.Context, input notes.CreateInput) (notes.Note, error) {
	if n.err != nil {
		return notes.Note{}, n.err
	}
	n.created = append(n.created, input)
	return notes.Note{ID: "n1", Title: input.Title, Text: input.Text}, nil
}

func (n *fakeNotes) List(ctx context.Context) ([]notes.Note, error) { return nil, nil }
func (n *fakeNotes) FilterByTitle(ctx context.Context, title string) ([]notes.Note, error) {
	return nil, nil
}
func (n *fakeNotes) Update(ctx context.Context, id string, input notes.UpdateInput) (notes.Note, error) {
	return notes.Note{}, nil
}
func (n *fakeNotes) Archive(ctx context.Context, id string) (notes.Note, error) {
	return notes.Note{}, nil
}
func (n *fakeNotes) Delete(ctx context.Context, id string) error { return nil }

type fixture struct {
	uc       *implUseCase
	repo     *memRepo
	calendar *fakeCalendar
	tasks    *fakeTasks
	notes    *fakeNotes
	provider *stubProvider
}

// newFixture wires a usecase around fakes with a deterministic clock.
func newFixture(llmContent string) *fixture {
	f := &fixture{
		repo:     &memRepo{},
		calendar: &fakeCalendar{},
		tasks:    &fakeTasks{},
		notes:    &fakeNotes{},
		provider: &stubProvider{content: llmContent},
	}

	dm, err := datemath.NewParser("Europe/Paris")
	if err != nil {
		panic(err)
	}

	f.uc = New(mockLogger{}, newLLM(f.provider), f.calendar, f.tasks, f.notes, f.repo, dm, Settings{
		Timezone:   "Europe/Paris",
		CalendarID: "primary",
		TasklistID: "@default",
	})
	f.uc.now = func() time.Time {
		return time.Date(2025, 3, 3, 9, 0, 0, 0, dm.Location())
	}
	return f
}
