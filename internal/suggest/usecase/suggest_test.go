package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dondeestakoko/easemyday/internal/model"
	"github.com/dondeestakoko/easemyday/internal/suggest"
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
	return &llmprovider.Response{Content: p.content, Usage: &llmprovider.Usage{}}, nil
}

func (p *stubProvider) Name() string  { return "stub" }
func (p *stubProvider) Model() string { return "stub-model" }

type memItems struct {
	items   []model.ExtractedItem
	loadErr error
}

func (r *memItems) Load(ctx context.Context) ([]model.ExtractedItem, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.items, nil
}

func (r *memItems) Append(ctx context.Context, items []model.ExtractedItem) error { return nil }

type memWriter struct {
	saved map[string]any
	err   error
}

func (w *memWriter) Save(ctx context.Context, payload map[string]any) error {
	if w.err != nil {
		return w.err
	}
	w.saved = payload
	return nil
}

func iso(s string) *string { return &s }

func newTestUseCase(content string, items []model.ExtractedItem) (*implUseCase, *stubProvider, *memWriter) {
	p := &stubProvider{content: content}
	w := &memWriter{}
	llm := llmprovider.NewManager([]llmprovider.Provider{p}, &llmprovider.Config{RetryAttempts: 1}, mockLogger{})
	uc := New(mockLogger{}, llm, &memItems{items: items}, w, 0.7)
	uc.requestID = func() string { return "req-123" }
	return uc, p, w
}

func batch() []model.ExtractedItem {
	return []model.ExtractedItem{
		{Category: model.CategoryToDo, Text: "Ranger le garage", Priority: 1},
		{Category: model.CategoryToDo, Text: "Payer l'assurance", Priority: 3},
		{Category: model.CategoryNote, Text: strings.Repeat("x", 150)},
		{Category: model.CategoryAgenda, Text: "Dentiste", DatetimeISO: iso("2025-03-05T10:00:00+01:00")},
	}
}

func TestSuggestNoData(t *testing.T) {
	uc, _, _ := newTestUseCase("{}", nil)

	_, err := uc.Suggest(context.Background(), model.Scope{})
	if !errors.Is(err, suggest.ErrNoData) {
		t.Fatalf("error = %v, want ErrNoData", err)
	}
}

func TestSuggestParsesAndPersists(t *testing.T) {
	uc, p, w := newTestUseCase("```json\n{\"plan\": [\"Payer l'assurance\"]}\n```", batch())

	out, err := uc.Suggest(context.Background(), model.Scope{UserID: "u1"})
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	if out.RequestID != "req-123" {
		t.Errorf("request id = %q", out.RequestID)
	}
	if _, ok := out.Suggestions["plan"]; !ok {
		t.Errorf("suggestions = %+v", out.Suggestions)
	}
	if w.saved == nil {
		t.Fatal("output not persisted")
	}

	user := p.lastReq.Messages[0].Content
	if !strings.Contains(user, "request_id: req-123") {
		t.Error("prompt missing request id")
	}
	if !strings.Contains(user, "Dentiste à 2025-03-05T10:00:00+01:00") {
		t.Errorf("prompt missing agenda comment:\n%s", user)
	}
}

func TestSuggestSummarySortsTasksByPriority(t *testing.T) {
	sv := summarize(batch())

	if len(sv.Tasks) != 2 || sv.Tasks[0].Text != "Payer l'assurance" {
		t.Errorf("tasks not sorted by priority desc: %+v", sv.Tasks)
	}
	if len(sv.Notes) != 1 || !strings.HasSuffix(sv.Notes[0].Preview, "...") {
		t.Errorf("long note not truncated: %+v", sv.Notes)
	}
	if len(sv.Notes[0].Preview) != 103 {
		t.Errorf("preview length = %d, want 100 chars + ellipsis", len(sv.Notes[0].Preview))
	}
}

func TestSuggestWrapsNonJSON(t *testing.T) {
	uc, _, w := newTestUseCase("Commencez par l'assurance.", batch())

	out, err := uc.Suggest(context.Background(), model.Scope{})
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if out.Suggestions["suggestions"] != "Commencez par l'assurance." {
		t.Errorf("suggestions = %+v", out.Suggestions)
	}
	if w.saved["suggestions"] != "Commencez par l'assurance." {
		t.Errorf("persisted = %+v", w.saved)
	}
}

func TestSuggestLLMFailure(t *testing.T) {
	uc, p, w := newTestUseCase("", batch())
	p.err = errors.New("quota exceeded")

	if _, err := uc.Suggest(context.Background(), model.Scope{}); err == nil {
		t.Fatal("expected error")
	}
	if w.saved != nil {
		t.Error("nothing must be persisted on failure")
	}
}

func TestSuggestWriterFailure(t *testing.T) {
	uc, _, w := newTestUseCase("{}", batch())
	w.err = errors.New("disk full")

	if _, err := uc.Suggest(context.Background(), model.Scope{}); err == nil {
		t.Fatal("expected error")
	}
}
