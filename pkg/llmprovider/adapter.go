package llmprovider

import (
	"context"
	"fmt"

	"github.com/dondeestakoko/easemyday/pkg/groq"
	"github.com/dondeestakoko/easemyday/pkg/openai"
)

// GroqAdapter adapts the groq client to the Provider interface
type GroqAdapter struct {
	client groq.IGroq
}

// NewGroqAdapter creates a Provider backed by the groq client
func NewGroqAdapter(client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client}
}

func (a *GroqAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	groqReq := &groq.Request{
		Messages:    toGroqMessages(req),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	resp, err := a.client.ChatCompletion(ctx, groqReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Content:      resp.Content,
		ProviderName: a.Name(),
		ModelName:    a.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *GroqAdapter) Name() string {
	return "groq"
}

func (a *GroqAdapter) Model() string {
	return a.client.Model()
}

func toGroqMessages(req *Request) []groq.Message {
	msgs := make([]groq.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		msgs = append(msgs, groq.Message{Role: "system", Content: req.SystemInstruction.Content})
	}
	for _, m := range req.Messages {
		msgs = append(msgs, groq.Message{Role: m.Role, Content: m.Content})
	}
	return msgs
}

// OpenAIAdapter adapts the openai client to the Provider interface
type OpenAIAdapter struct {
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a Provider backed by the openai client
func NewOpenAIAdapter(client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	openaiReq := &openai.Request{
		Messages:    toOpenAIMessages(req),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	resp, err := a.client.ChatCompletion(ctx, openaiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Content:      resp.Content,
		ProviderName: a.Name(),
		ModelName:    a.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *OpenAIAdapter) Name() string {
	return "openai"
}

func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

func toOpenAIMessages(req *Request) []openai.Message {
	msgs := make([]openai.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		msgs = append(msgs, openai.Message{Role: "system", Content: req.SystemInstruction.Content})
	}
	for _, m := range req.Messages {
		msgs = append(msgs, openai.Message{Role: m.Role, Content: m.Content})
	}
	return msgs
}

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidRequest)
	}
	if len(req.Messages) == 0 {
		return fmt.Errorf("%w: no messages", ErrInvalidRequest)
	}
	return nil
}
