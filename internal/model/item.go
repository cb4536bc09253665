package model

// Category classifies an extracted fragment.
// The LLM may emit other values; they are kept verbatim but no writer
// consumes them.
type Category string

const (
	CategoryAgenda Category = "agenda"
	CategoryToDo   Category = "to_do"
	CategoryNote   Category = "note"
)

// ExtractedItem is a single fragment classified by the LLM.
// After normalization DatetimeISO holds a canonical RFC3339 timestamp when
// the date resolved, nil when it did not (strict mode), or the unparsed
// value the LLM produced (lenient mode).
type ExtractedItem struct {
	Category    Category `json:"category"`
	Text        string   `json:"text"`
	DatetimeRaw string   `json:"datetime_raw,omitempty"`
	DatetimeISO *string  `json:"datetime_iso"`
	Priority    int      `json:"priority,omitempty"`
}

// Usable reports whether the item carries enough content to be persisted.
func (it ExtractedItem) Usable() bool {
	return it.Category != "" && it.Text != ""
}
