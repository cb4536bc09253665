package suggest

import "errors"

// Domain-specific errors for the suggest package.
var (
	ErrNoData = errors.New("no extracted items to suggest from")
)
