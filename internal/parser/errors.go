package parser

import "fmt"

// ParsingError reports input that is malformed relative to the adapter's
// expected schema. The parse is aborted and no partial report survives.
type ParsingError struct {
	SourceName string
	Reason     string
	Err        error
}

func (e *ParsingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing %s: %s: %v", e.SourceName, e.Reason, e.Err)
	}
	return fmt.Sprintf("parsing %s: %s", e.SourceName, e.Reason)
}

func (e *ParsingError) Unwrap() error {
	return e.Err
}

// NewParsingError creates a ParsingError for src with a human-readable
// reason and an optional underlying cause.
func NewParsingError(src Source, reason string, err error) *ParsingError {
	return &ParsingError{SourceName: src.Name(), Reason: reason, Err: err}
}

// ParsingCanceledError reports a cooperative cancellation observed during
// a parse. It wraps the context error, so errors.Is(err, context.Canceled)
// holds as well.
type ParsingCanceledError struct {
	SourceName string
	Err        error
}

func (e *ParsingCanceledError) Error() string {
	return fmt.Sprintf("parsing %s canceled: %v", e.SourceName, e.Err)
}

func (e *ParsingCanceledError) Unwrap() error {
	return e.Err
}

// NewParsingCanceledError wraps the context error for src.
func NewParsingCanceledError(src Source, err error) *ParsingCanceledError {
	return &ParsingCanceledError{SourceName: src.Name(), Err: err}
}
