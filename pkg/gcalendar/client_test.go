package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dondeestakoko/easemyday/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func testClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestNewClientFromCredentialsJSON(t *testing.T) {
	installedCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("broken credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), "")
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("installed app with stored token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"access_token":"dummy","token_type":"Bearer","expiry":"2030-01-01T00:00:00Z"}`), 0o644)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(installedCreds), tokenPath)
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("installed app without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(installedCreds),
			filepath.Join(t.TempDir(), "missing.json"))
		if err == nil {
			t.Fatalf("expected error without stored token")
		}
	})

	t.Run("missing credentials file", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), "no-such-file.json", "")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
			w.Write([]byte(`{"id":"event-123","htmlLink":"https://calendar.google.com/event-uri","status":"confirmed"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	start := time.Date(2025, 3, 10, 16, 0, 0, 0, time.UTC)

	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "Réunion",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Timezone:  "Europe/Paris",
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.HtmlLink != "https://calendar.google.com/event-uri" {
		t.Errorf("unexpected link: %s", event.HtmlLink)
	}

	// start >= end is rejected before any network call.
	_, err = client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "Réunion",
		StartTime: start,
		EndTime:   start,
	})
	if err == nil {
		t.Errorf("expected error for empty interval")
	}
}

func TestListEvents(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/calendar/v3/calendars/primary/events":
			if r.URL.Query().Get("singleEvents") != "true" {
				t.Errorf("expected singleEvents=true, got %q", r.URL.Query().Get("singleEvents"))
			}
			w.Write([]byte(`{"items":[
				{"id":"e1","summary":"Cours","start":{"dateTime":"2025-03-10T16:00:00Z"},"end":{"dateTime":"2025-03-10T17:00:00Z"}},
				{"id":"e2","summary":"Férié","start":{"date":"2025-03-10"},"end":{"date":"2025-03-11"}}
			]}`))
		case "/calendar/v3/calendars/test-fail/events":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	window := gcalendar.ListEventsRequest{
		TimeMin: time.Date(2025, 3, 10, 16, 30, 0, 0, time.UTC),
		TimeMax: time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC),
	}

	events, err := client.ListEvents(context.Background(), window)
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Summary != "Cours" {
		t.Errorf("unexpected first event: %s", events[0].Summary)
	}
	if events[0].StartTime.IsZero() || events[1].StartTime.IsZero() {
		t.Errorf("event times not decoded: %+v", events)
	}

	window.CalendarID = "test-fail"
	if _, err := client.ListEvents(context.Background(), window); err == nil {
		t.Fatalf("expected api error on test-fail")
	}
}
