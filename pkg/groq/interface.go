package groq

import (
	"context"
	"io"
)

// IGroq is the Groq API surface consumed by the service.
type IGroq interface {
	// ChatCompletion sends a chat request and returns the assistant text.
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)

	// Transcribe uploads audio to the Whisper endpoint and returns the text.
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)

	// Model returns the chat model in use.
	Model() string
}

// New creates a Groq client.
func New(cfg Config) (IGroq, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGroqImpl(cfg), nil
}
