package parser

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/dondeestakoko/easemyday/internal/model"
)

// Parse splits a raw model response into a human-readable message and the
// extracted item list. Two strategies run in sequence: the whole trimmed
// response as JSON first (some prompts make the model answer with bare
// JSON), then a bracket scan that treats everything before the first "[" as
// the message and the "[...]" substring as the payload. Markdown code
// fences are stripped before either runs.
//
// A missing payload is always a *ParseError; an explicit empty array is a
// valid zero-item result.
func Parse(raw string) (string, []model.ExtractedItem, error) {
	text := stripFences(strings.TrimSpace(raw))

	if items, ok := parseWhole(text); ok {
		return "", items, nil
	}

	return parseBracketed(raw, text)
}

var (
	wholeFenceRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.+?)\\s*```$")
	fenceLineRe  = regexp.MustCompile("(?m)^```(?:json)?[ \t]*$")
)

// stripFences removes markdown code fences. A response that is one fenced
// block is unwrapped; fences embedded in surrounding prose are erased in
// place so the text around them survives the bracket scan.
func stripFences(text string) string {
	if m := wholeFenceRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(fenceLineRe.ReplaceAllString(text, ""))
}

// parseWhole tries the entire text as a JSON array or single object.
func parseWhole(text string) ([]model.ExtractedItem, bool) {
	switch {
	case strings.HasPrefix(text, "["):
		var items []model.ExtractedItem
		if err := json.Unmarshal([]byte(text), &items); err != nil {
			return nil, false
		}
		return items, true
	case strings.HasPrefix(text, "{"):
		var item model.ExtractedItem
		if err := json.Unmarshal([]byte(text), &item); err != nil {
			return nil, false
		}
		return []model.ExtractedItem{item}, true
	}
	return nil, false
}

// parseBracketed scans for the first "[" and last "]". raw is kept for the
// no-payload error so the caller can show the model's full answer.
func parseBracketed(raw, text string) (string, []model.ExtractedItem, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")

	if start == -1 || end == -1 || end < start {
		return "", nil, &ParseError{
			Reason:  "no JSON payload found in response",
			Payload: raw,
		}
	}

	message := strings.TrimSpace(text[:start])
	payload := strings.TrimSpace(text[start : end+1])

	var items []model.ExtractedItem
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return "", nil, &ParseError{
			Reason:  "payload is not a valid JSON array",
			Payload: payload,
			Err:     err,
		}
	}

	return message, items, nil
}
