package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dondeestakoko/easemyday/internal/extraction"
	"github.com/dondeestakoko/easemyday/internal/model"
	"github.com/dondeestakoko/easemyday/pkg/gcalendar"
)

const digestSystemPrompt = `Tu es un assistant d'agenda. Tu reçois la liste brute des prochains événements du calendrier de l'utilisateur.
Structure-les en JSON : regroupe par jour, ordonne chronologiquement, et ajoute un champ "resume" d'une phrase.
Réponds UNIQUEMENT avec un JSON valide, sans texte autour.`

const defaultDigestEvents = 30

// Digest lists upcoming calendar events and asks the LLM to structure them.
func (uc *implUseCase) Digest(ctx context.Context, sc model.Scope, input extraction.DigestInput) (extraction.DigestOutput, error) {
	if uc.calendar == nil {
		return extraction.DigestOutput{}, fmt.Errorf("calendar unavailable")
	}

	maxEvents := input.MaxEvents
	if maxEvents <= 0 {
		maxEvents = defaultDigestEvents
	}

	now := uc.now().In(uc.dateMath.Location())
	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.settings.CalendarID,
		TimeMin:    now,
		TimeMax:    now.AddDate(0, 1, 0),
		MaxResults: maxEvents,
	})
	if err != nil {
		return extraction.DigestOutput{}, fmt.Errorf("failed to list upcoming events: %w", err)
	}

	if len(events) == 0 {
		return extraction.DigestOutput{
			Digest: map[string]any{"resume": "Aucun événement à venir.", "jours": []any{}},
		}, nil
	}

	raw, err := uc.callLLM(ctx, digestSystemPrompt, renderEvents(events), 0)
	if err != nil {
		return extraction.DigestOutput{}, fmt.Errorf("%w: %v", extraction.ErrLLMUnavailable, err)
	}

	uc.l.Infof(ctx, "Digest: user=%s structured %d events", sc.UserID, len(events))
	return extraction.DigestOutput{
		Digest:     parseOrWrap(raw),
		EventCount: len(events),
	}, nil
}

// renderEvents renders calendar events as raw text blocks for the prompt.
func renderEvents(events []gcalendar.Event) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(fmt.Sprintf("- %s : %s", e.StartTime.Format(time.RFC3339), e.Summary))
		if e.Location != "" {
			sb.WriteString(" @ " + e.Location)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// parseOrWrap parses the model output as JSON, or wraps raw text so the
// caller always receives an object.
func parseOrWrap(raw string) map[string]any {
	cleaned := stripFences(raw)

	var obj map[string]any
	if err := json.Unmarshal([]byte(cleaned), &obj); err == nil {
		return obj
	}
	var arr []any
	if err := json.Unmarshal([]byte(cleaned), &arr); err == nil {
		return map[string]any{"jours": arr}
	}
	return map[string]any{"resume": strings.TrimSpace(raw)}
}

func stripFences(text string) string {
	t := strings.TrimSpace(text)
	t = strings.TrimPrefix(t, "```json")
	t = strings.TrimPrefix(t, "```")
	t = strings.TrimSuffix(t, "```")
	return strings.TrimSpace(t)
}
