package notes

import "time"

// Allowed note colors. Anything else falls back to ColorYellow.
const (
	ColorYellow = "YELLOW"
	ColorBlue   = "BLUE"
	ColorGreen  = "GREEN"
	ColorPink   = "PINK"
	ColorWhite  = "WHITE"
)

// Note is a free-form user note.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Color     string    `json:"color"`
	Pinned    bool      `json:"pinned"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateInput is the input for note creation.
type CreateInput struct {
	Title string
	Text  string
	Color string
}

// UpdateInput carries the fields to change. Nil pointers leave the
// current value untouched.
type UpdateInput struct {
	Title  *string
	Text   *string
	Color  *string
	Pinned *bool
}
