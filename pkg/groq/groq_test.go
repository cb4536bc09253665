package groq_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dondeestakoko/easemyday/pkg/groq"
)

func TestNew(t *testing.T) {
	if _, err := groq.New(groq.Config{}); err == nil {
		t.Fatalf("expected error without API key")
	}

	client, err := groq.New(groq.Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != groq.DefaultModel {
		t.Errorf("model = %q, want default %q", client.Model(), groq.DefaultModel)
	}
}

func TestChatCompletion(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization header = %q", got)
		}

		var req map[string]any
		json.NewDecoder(r.Body).Decode(&req)
		if req["model"] != "llama-3.1-8b-instant" {
			t.Errorf("model = %v", req["model"])
		}

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "Voici.\n[]"}},
			},
			"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
		})
	}))
	defer ts.Close()

	client, _ := groq.New(groq.Config{
		APIKey:  "test-key",
		Model:   "llama-3.1-8b-instant",
		BaseURL: ts.URL,
	})

	resp, err := client.ChatCompletion(context.Background(), &groq.Request{
		Messages: []groq.Message{
			{Role: "system", Content: "classifie"},
			{Role: "user", Content: "Appeler le docteur lundi à 15h."},
		},
		Temperature: 0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "Voici.\n[]" {
		t.Errorf("content = %q", resp.Content)
	}
	if resp.Usage.TotalTokens != 15 {
		t.Errorf("usage = %+v", resp.Usage)
	}
}

func TestChatCompletionAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client, _ := groq.New(groq.Config{APIKey: "test-key", BaseURL: ts.URL})
	_, err := client.ChatCompletion(context.Background(), &groq.Request{
		Messages: []groq.Message{{Role: "user", Content: "x"}},
	})
	if err == nil {
		t.Fatalf("expected API error")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should carry status code: %v", err)
	}
}

func TestTranscribe(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/transcriptions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("not a multipart request: %v", err)
		}
		if got := r.FormValue("model"); got != groq.DefaultWhisperModel {
			t.Errorf("whisper model = %q", got)
		}
		json.NewEncoder(w).Encode(map[string]string{"text": "Appeler le docteur lundi à 15h."})
	}))
	defer ts.Close()

	client, _ := groq.New(groq.Config{APIKey: "test-key", BaseURL: ts.URL})

	text, err := client.Transcribe(context.Background(), "audio.wav", strings.NewReader("fake-wav-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Appeler le docteur lundi à 15h." {
		t.Errorf("text = %q", text)
	}
}
