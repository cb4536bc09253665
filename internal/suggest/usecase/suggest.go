package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/dondeestakoko/easemyday/internal/model"
	"github.com/dondeestakoko/easemyday/internal/suggest"
	"github.com/dondeestakoko/easemyday/pkg/llmprovider"
)

const suggestSystemPrompt = `Tu es un assistant d'organisation personnelle.
Tu reçois les éléments extraits des notes de l'utilisateur (tâches, notes, agenda) avec un résumé condensé.
Propose une meilleure organisation : regroupements, ordre de traitement des tâches, créneaux suggérés.
Réponds avec un JSON structuré.`

const suggestUserTemplate = `<!-- request_id: %s -->
Données brutes :
%s

Résumé :
%s

Propose une organisation améliorée de ces éléments.`

// Suggest summarizes the persisted batch, asks the LLM for an improved
// organization, persists the result, and returns it.
func (uc *implUseCase) Suggest(ctx context.Context, sc model.Scope) (suggest.Output, error) {
	items, err := uc.items.Load(ctx)
	if err != nil {
		return suggest.Output{}, fmt.Errorf("failed to load item store: %w", err)
	}
	if len(items) == 0 {
		return suggest.Output{}, suggest.ErrNoData
	}

	rawJSON, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return suggest.Output{}, fmt.Errorf("failed to marshal items: %w", err)
	}
	summaryJSON, err := json.MarshalIndent(summarize(items), "", "  ")
	if err != nil {
		return suggest.Output{}, fmt.Errorf("failed to marshal summary: %w", err)
	}

	// The request id makes each prompt unique, reducing identical
	// completions across runs.
	requestID := uc.requestID()
	userPrompt := fmt.Sprintf(suggestUserTemplate, requestID, rawJSON, summaryJSON)

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: "system", Content: suggestSystemPrompt},
		Messages:          []llmprovider.Message{{Role: "user", Content: userPrompt}},
		Temperature:       uc.temperature,
	})
	if err != nil {
		return suggest.Output{}, fmt.Errorf("suggestion generation failed: %w", err)
	}

	parsed := parseOrWrap(resp.Content)

	if err := uc.writer.Save(ctx, parsed); err != nil {
		return suggest.Output{}, err
	}

	uc.l.Infof(ctx, "Suggest: user=%s request_id=%s items=%d", sc.UserID, requestID, len(items))
	return suggest.Output{RequestID: requestID, Suggestions: parsed}, nil
}

// notePreviewView is a note reduced to its title and a truncated body.
type notePreviewView struct {
	Title   string `json:"title"`
	Preview string `json:"preview"`
}

// summaryView is the condensed view of the batch injected into the prompt.
type summaryView struct {
	Tasks          []model.ExtractedItem `json:"tasks"`
	Notes          []notePreviewView     `json:"notes"`
	AgendaComments []string              `json:"agenda_comments"`
}

// summarize condenses the batch: to_do sorted by priority descending
// (stable), notes reduced to previews, agenda rendered as short comments.
func summarize(items []model.ExtractedItem) summaryView {
	var sv summaryView
	sv.Tasks = []model.ExtractedItem{}
	sv.Notes = []notePreviewView{}
	sv.AgendaComments = []string{}

	for _, it := range items {
		switch it.Category {
		case model.CategoryToDo:
			sv.Tasks = append(sv.Tasks, it)
		case model.CategoryNote:
			sv.Notes = append(sv.Notes, notePreviewView{
				Title:   noteTitle(it.Text),
				Preview: preview(it.Text),
			})
		case model.CategoryAgenda:
			iso := ""
			if it.DatetimeISO != nil {
				iso = *it.DatetimeISO
			}
			sv.AgendaComments = append(sv.AgendaComments, fmt.Sprintf("%s à %s", it.Text, iso))
		}
	}

	sort.SliceStable(sv.Tasks, func(i, j int) bool {
		return sv.Tasks[i].Priority > sv.Tasks[j].Priority
	})
	return sv
}

// preview truncates a note body to its first 100 characters.
func preview(text string) string {
	const max = 100
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

func noteTitle(text string) string {
	if text == "" {
		return "Sans titre"
	}
	if idx := strings.IndexAny(text, ".\n"); idx > 0 {
		return text[:idx]
	}
	return preview(text)
}

// parseOrWrap parses the model output as JSON after stripping markdown
// fences, falling back to wrapping the raw text under "suggestions".
func parseOrWrap(content string) map[string]any {
	cleaned := strings.TrimSpace(content)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var obj map[string]any
	if err := json.Unmarshal([]byte(cleaned), &obj); err == nil {
		return obj
	}
	return map[string]any{"suggestions": cleaned}
}
