package gtasks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

// rewriteTransport redirects every request to the test server.
type rewriteTransport struct {
	target *url.URL
}

func (rt rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = rt.target.Scheme
	req.URL.Host = rt.target.Host
	return http.DefaultTransport.RoundTrip(req)
}

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)

	target, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parse server URL: %v", err)
	}
	httpClient := &http.Client{Transport: rewriteTransport{target: target}}

	c, err := NewClientFromHTTP(context.Background(), httpClient)
	if err != nil {
		t.Fatalf("NewClientFromHTTP: %v", err)
	}
	return c, srv
}

func TestCreateTask(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	c, srv := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "t1", "title": "Acheter du pain", "status": "needsAction", "due": "2025-03-10T00:00:00Z"}`))
	}))
	defer srv.Close()

	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	task, err := c.CreateTask(context.Background(), CreateTaskRequest{
		Title: "Acheter du pain",
		Notes: "priority 2",
		Due:   &due,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if !strings.Contains(gotPath, "/lists/@default/tasks") {
		t.Errorf("path = %q, want default tasklist", gotPath)
	}
	if gotBody["title"] != "Acheter du pain" {
		t.Errorf("title = %v", gotBody["title"])
	}
	if gotBody["due"] != "2025-03-10T00:00:00Z" {
		t.Errorf("due = %v", gotBody["due"])
	}
	if task.ID != "t1" {
		t.Errorf("id = %q", task.ID)
	}
	if task.Due == nil || !task.Due.Equal(due) {
		t.Errorf("parsed due = %v", task.Due)
	}
}

func TestCreateTaskRequiresTitle(t *testing.T) {
	c, srv := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))
	defer srv.Close()

	if _, err := c.CreateTask(context.Background(), CreateTaskRequest{}); err == nil {
		t.Fatal("expected error for empty title")
	}
}

func TestListTasks(t *testing.T) {
	c, srv := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/lists/inbox/tasks") {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items": [
			{"id": "t1", "title": "Acheter du pain", "status": "needsAction"},
			{"id": "t2", "title": "Appeler le dentiste", "status": "completed"}
		]}`))
	}))
	defer srv.Close()

	tasks, err := c.ListTasks(context.Background(), "inbox")
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("len = %d, want 2", len(tasks))
	}
	if tasks[1].Status != "completed" {
		t.Errorf("status = %q", tasks[1].Status)
	}
}

func TestListTasksAPIError(t *testing.T) {
	c, srv := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "backend error"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := c.ListTasks(context.Background(), ""); err == nil {
		t.Fatal("expected error")
	}
}
