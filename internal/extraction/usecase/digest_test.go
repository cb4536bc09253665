package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dondeestakoko/easemyday/internal/extraction"
	"github.com/dondeestakoko/easemyday/internal/model"
	"github.com/dondeestakoko/easemyday/pkg/gcalendar"
)

func TestDigestStructuresEvents(t *testing.T) {
	f := newFixture(`{"resume": "Deux rendez-vous cette semaine.", "jours": []}`)
	f.calendar.events = []gcalendar.Event{
		{Summary: "Dentiste", StartTime: time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC), Location: "Cabinet"},
		{Summary: "Réunion", StartTime: time.Date(2025, 3, 5, 16, 0, 0, 0, time.UTC)},
	}

	out, err := f.uc.Digest(context.Background(), model.Scope{}, extraction.DigestInput{})
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}

	if out.EventCount != 2 {
		t.Errorf("event count = %d, want 2", out.EventCount)
	}
	if out.Digest["resume"] != "Deux rendez-vous cette semaine." {
		t.Errorf("digest = %+v", out.Digest)
	}

	// The prompt must carry the rendered events.
	user := f.provider.lastReq.Messages[0].Content
	if !strings.Contains(user, "Dentiste") || !strings.Contains(user, "@ Cabinet") {
		t.Errorf("rendered events missing from prompt: %q", user)
	}

	if f.calendar.lastListReq.MaxResults != defaultDigestEvents {
		t.Errorf("max results = %d, want default %d", f.calendar.lastListReq.MaxResults, defaultDigestEvents)
	}
}

func TestDigestEmptyCalendarSkipsLLM(t *testing.T) {
	f := newFixture("should not be called")

	out, err := f.uc.Digest(context.Background(), model.Scope{}, extraction.DigestInput{})
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if out.EventCount != 0 {
		t.Errorf("event count = %d", out.EventCount)
	}
	if f.provider.lastReq != nil {
		t.Error("LLM must not be called for an empty calendar")
	}
}

func TestDigestWrapsNonJSONOutput(t *testing.T) {
	f := newFixture("Votre semaine est chargée.")
	f.calendar.events = []gcalendar.Event{{Summary: "Réunion", StartTime: time.Now()}}

	out, err := f.uc.Digest(context.Background(), model.Scope{}, extraction.DigestInput{})
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if out.Digest["resume"] != "Votre semaine est chargée." {
		t.Errorf("digest = %+v", out.Digest)
	}
}

func TestDigestListFailure(t *testing.T) {
	f := newFixture("{}")
	f.calendar.listErr = errors.New("api down")

	if _, err := f.uc.Digest(context.Background(), model.Scope{}, extraction.DigestInput{}); err == nil {
		t.Fatal("expected error")
	}
}
