package options

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColon marks a line with text but no colon.
	ErrMissingColon = errors.New("missing ':' separator")
	// ErrEmptyKey marks a line whose first colon is its first character.
	ErrEmptyKey = errors.New("empty key before ':'")
	// ErrNestedValue marks a structured source entry that is not a scalar.
	ErrNestedValue = errors.New("value is not a scalar")

	ErrSourceUnavailable = errors.New("config source unavailable")
)

// FormatError reports an option source entry that cannot be read as a
// key/value pair. Line is zero for structured sources.
type FormatError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v: %q", e.Path, e.Line, e.Err, e.Text)
	}
	if e.Text != "" {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Text, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// SourceError reports an option file that cannot be opened or read.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("config source %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() []error {
	return []error{ErrSourceUnavailable, e.Err}
}
