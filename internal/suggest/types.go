package suggest

// Output is the persisted and returned suggestion payload.
type Output struct {
	RequestID   string
	Suggestions map[string]any
}
