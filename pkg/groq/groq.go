package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// groqImpl is the internal implementation of IGroq.
type groqImpl struct {
	apiKey       string
	model        string
	whisperModel string
	baseURL      string
	httpClient   *http.Client
}

func newGroqImpl(cfg Config) *groqImpl {
	return &groqImpl{
		apiKey:       cfg.APIKey,
		model:        cfg.Model,
		whisperModel: cfg.WhisperModel,
		baseURL:      cfg.BaseURL,
		httpClient:   cfg.HTTPClient,
	}
}

// ChatCompletion sends a chat request to the Groq API.
func (g *groqImpl) ChatCompletion(ctx context.Context, req *Request) (*Response, error) {
	wireReq := chatRequest{
		Model:       g.model,
		Messages:    make([]chatMessage, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	for i, m := range req.Messages {
		wireReq.Messages[i] = chatMessage{Role: m.Role, Content: m.Content}
	}

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("groq: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("groq: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("groq: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("groq: API error %d: %s", resp.StatusCode, string(raw))
	}

	var wireResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("groq: failed to decode response: %w", err)
	}
	if len(wireResp.Choices) == 0 {
		return nil, fmt.Errorf("groq: empty response")
	}

	return &Response{
		Content: wireResp.Choices[0].Message.Content,
		Usage: &Usage{
			InputTokens:  wireResp.Usage.PromptTokens,
			OutputTokens: wireResp.Usage.CompletionTokens,
			TotalTokens:  wireResp.Usage.TotalTokens,
		},
	}, nil
}

// Transcribe uploads audio to the Whisper endpoint.
func (g *groqImpl) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("groq: failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("groq: failed to read audio: %w", err)
	}
	if err := mw.WriteField("model", g.whisperModel); err != nil {
		return "", fmt.Errorf("groq: failed to build multipart body: %w", err)
	}
	if err := mw.WriteField("response_format", "json"); err != nil {
		return "", fmt.Errorf("groq: failed to build multipart body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("groq: failed to finalize multipart body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return "", fmt.Errorf("groq: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("groq: transcription call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("groq: transcription error %d: %s", resp.StatusCode, string(raw))
	}

	var wireResp transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return "", fmt.Errorf("groq: failed to decode transcription: %w", err)
	}
	return wireResp.Text, nil
}

// Model returns the chat model being used.
func (g *groqImpl) Model() string {
	return g.model
}
