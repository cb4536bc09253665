package extraction

import "errors"

// Domain-specific errors for the extraction package.
var (
	ErrEmptyInput     = errors.New("input text is empty")
	ErrNotAccepted    = errors.New("commit requires explicit acceptance")
	ErrNoItems        = errors.New("no items to commit")
	ErrStoreLoad      = errors.New("failed to load item store")
	ErrLLMUnavailable = errors.New("LLM generation failed")
)
