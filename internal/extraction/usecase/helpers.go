package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/dondeestakoko/easemyday/internal/model"
	"github.com/dondeestakoko/easemyday/pkg/llmprovider"
)

// callLLM sends a system+user prompt pair through the provider chain.
func (uc *implUseCase) callLLM(ctx context.Context, system, user string, temperature float64) (string, error) {
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: "system", Content: system},
		Messages:          []llmprovider.Message{{Role: "user", Content: user}},
		Temperature:       temperature,
		MaxTokens:         1000,
	})
	if err != nil {
		return "", fmt.Errorf("LLM request failed: %w", err)
	}
	return resp.Content, nil
}

// normalizeDates canonicalizes each item's datetime_iso in place. An item
// with a parseable value ends up with canonical RFC3339 in the configured
// timezone; one without ends up with nil (or, without strict dates, keeps a
// stale unparseable value). Normalization never fails the batch.
func (uc *implUseCase) normalizeDates(ctx context.Context, items []model.ExtractedItem) []model.ExtractedItem {
	now := uc.now().In(uc.dateMath.Location())

	for i := range items {
		items[i].DatetimeISO = uc.normalizeOne(ctx, items[i], now)
	}
	return items
}

func (uc *implUseCase) normalizeOne(ctx context.Context, it model.ExtractedItem, now time.Time) *string {
	if it.DatetimeISO != nil && *it.DatetimeISO != "" {
		if t, err := uc.dateMath.ParseISO(*it.DatetimeISO); err == nil {
			return isoString(t)
		}
		if t, err := uc.dateMath.Parse(*it.DatetimeISO, now); err == nil {
			return isoString(t)
		}
		uc.l.Warnf(ctx, "extraction: unparseable datetime_iso %q for %q", *it.DatetimeISO, it.Text)
		if uc.settings.StrictDates {
			return nil
		}
		return it.DatetimeISO
	}

	if it.DatetimeRaw != "" {
		if t, err := uc.dateMath.Parse(it.DatetimeRaw, now); err == nil {
			return isoString(t)
		}
		uc.l.Warnf(ctx, "extraction: unresolved datetime_raw %q for %q", it.DatetimeRaw, it.Text)
	}
	return nil
}

func isoString(t time.Time) *string {
	s := t.Format(time.RFC3339)
	return &s
}

// startTime parses an item's normalized datetime_iso. Returns false when the
// item has no usable start time.
func (uc *implUseCase) startTime(it model.ExtractedItem) (time.Time, bool) {
	if it.DatetimeISO == nil || *it.DatetimeISO == "" {
		return time.Time{}, false
	}
	t, err := uc.dateMath.ParseISO(*it.DatetimeISO)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
