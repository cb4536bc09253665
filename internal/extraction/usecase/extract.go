package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/dondeestakoko/easemyday/internal/extraction"
	"github.com/dondeestakoko/easemyday/internal/extraction/parser"
	"github.com/dondeestakoko/easemyday/internal/model"
)

// Extract classifies raw text into items via the LLM and normalizes their
// dates. Nothing is persisted; the caller previews the result and commits
// separately.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input extraction.ExtractInput) (extraction.ExtractOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return extraction.ExtractOutput{}, extraction.ErrEmptyInput
	}

	uc.l.Infof(ctx, "Extract: user=%s input_length=%d", sc.UserID, len(input.Text))

	raw, err := uc.callLLM(ctx, classifySystemPrompt, buildClassifyPrompt(input.Text, uc.now().In(uc.dateMath.Location())), 0)
	if err != nil {
		return extraction.ExtractOutput{}, fmt.Errorf("%w: %v", extraction.ErrLLMUnavailable, err)
	}

	message, items, err := parser.Parse(raw)
	if err != nil {
		uc.l.Errorf(ctx, "Extract: unparseable LLM response: %v", err)
		return extraction.ExtractOutput{}, err
	}

	items = uc.normalizeDates(ctx, items)

	uc.l.Infof(ctx, "Extract: parsed %d items", len(items))
	return extraction.ExtractOutput{
		Message: message,
		Items:   items,
	}, nil
}
