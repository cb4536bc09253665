package parser

import "fmt"

// ParseError reports that no structured payload could be read from a model
// response. Payload holds the offending text for diagnostics: the full
// response when no brackets were found, or the bracketed substring when it
// was not valid JSON.
type ParseError struct {
	Reason  string
	Payload string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("response parse failed: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
