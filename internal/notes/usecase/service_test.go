package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/dondeestakoko/easemyday/internal/notes"
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

type memRepo struct {
	all     []notes.Note
	loadErr error
}

func (r *memRepo) Load(ctx context.Context) ([]notes.Note, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	out := make([]notes.Note, len(r.all))
	copy(out, r.all)
	return out, nil
}

func (r *memRepo) Save(ctx context.Context, all []notes.Note) error {
	r.all = all
	return nil
}

func newTestService(repo *memRepo) *implService {
	s := New(mockLogger{}, repo)
	i := 0
	s.id = func() string {
		i++
		return string(rune('a' + i - 1))
	}
	return s
}

func TestCreate(t *testing.T) {
	repo := &memRepo{}
	s := newTestService(repo)

	n, err := s.Create(context.Background(), notes.CreateInput{Title: "Courses", Text: "pain, lait", Color: "blue"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if n.Color != notes.ColorBlue {
		t.Errorf("color = %q, want BLUE", n.Color)
	}
	if n.ID == "" {
		t.Error("expected generated id")
	}
	if len(repo.all) != 1 {
		t.Errorf("persisted notes = %d, want 1", len(repo.all))
	}
}

func TestCreateInvalidColorFallsBack(t *testing.T) {
	s := newTestService(&memRepo{})

	n, err := s.Create(context.Background(), notes.CreateInput{Title: "x", Color: "MAGENTA"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if n.Color != notes.ColorYellow {
		t.Errorf("color = %q, want YELLOW fallback", n.Color)
	}
}

func TestCreateEmptyNote(t *testing.T) {
	s := newTestService(&memRepo{})

	_, err := s.Create(context.Background(), notes.CreateInput{Title: "  ", Text: ""})
	if !errors.Is(err, notes.ErrEmptyNote) {
		t.Fatalf("error = %v, want ErrEmptyNote", err)
	}
}

func TestListSkipsArchived(t *testing.T) {
	repo := &memRepo{all: []notes.Note{
		{ID: "a", Title: "visible"},
		{ID: "b", Title: "hidden", Archived: true},
	}}
	s := newTestService(repo)

	out, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 1 || out[0].ID != "a" {
		t.Errorf("unexpected list: %+v", out)
	}
}

func TestFilterByTitle(t *testing.T) {
	repo := &memRepo{all: []notes.Note{
		{ID: "a", Title: "Liste de courses"},
		{ID: "b", Title: "Idées cadeaux"},
		{ID: "c", Title: "courses du mois"},
	}}
	s := newTestService(repo)

	out, err := s.FilterByTitle(context.Background(), "COURSES")
	if err != nil {
		t.Fatalf("FilterByTitle: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("matches = %d, want 2", len(out))
	}
}

func TestUpdate(t *testing.T) {
	repo := &memRepo{all: []notes.Note{{ID: "a", Title: "old", Color: notes.ColorYellow}}}
	s := newTestService(repo)

	title := "new"
	pinned := true
	n, err := s.Update(context.Background(), "a", notes.UpdateInput{Title: &title, Pinned: &pinned})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if n.Title != "new" || !n.Pinned {
		t.Errorf("unexpected note after update: %+v", n)
	}
	if n.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not set")
	}
}

func TestUpdateNotFound(t *testing.T) {
	s := newTestService(&memRepo{})

	_, err := s.Update(context.Background(), "missing", notes.UpdateInput{})
	if !errors.Is(err, notes.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestArchiveAndDelete(t *testing.T) {
	repo := &memRepo{all: []notes.Note{{ID: "a"}, {ID: "b"}}}
	s := newTestService(repo)

	n, err := s.Archive(context.Background(), "a")
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if !n.Archived {
		t.Error("note not archived")
	}

	if err := s.Delete(context.Background(), "b"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(repo.all) != 1 || repo.all[0].ID != "a" {
		t.Errorf("unexpected notes after delete: %+v", repo.all)
	}

	if err := s.Delete(context.Background(), "b"); !errors.Is(err, notes.ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}
