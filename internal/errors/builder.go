package errors

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrorBuilder chains hints and details onto an error. It is not an error
// itself; Mark ends the chain and returns one.
type ErrorBuilder struct {
	err error
}

// NewError starts a chain from a message. The message is what the envelope
// shows when the error is reported.
func NewError(msg string) *ErrorBuilder {
	return &ErrorBuilder{err: errors.New(msg)}
}

// NewErrorf is NewError with formatting
func NewErrorf(format string, args ...any) *ErrorBuilder {
	return &ErrorBuilder{err: errors.Newf(format, args...)}
}

// WithError starts a chain from a backend or library error, keeping its
// message untouched
func WithError(err error) *ErrorBuilder {
	return &ErrorBuilder{err: err}
}

// WithHint attaches a user facing hint. Hints never change Error().
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.err = errors.WithHint(b.err, hint)
	return b
}

func (b *ErrorBuilder) WithHintf(format string, args ...any) *ErrorBuilder {
	b.err = errors.WithHintf(b.err, format, args...)
	return b
}

// WithReportableDetails attaches structured details that survive into logs
// and Sentry reports
func (b *ErrorBuilder) WithReportableDetails(details map[string]any) *ErrorBuilder {
	marshaled, err := json.Marshal(details)
	if err != nil {
		return b
	}
	b.err = errors.WithSafeDetails(b.err, "__json__:%s", errors.Safe(string(marshaled)))
	return b
}

// Mark tags the error with a category and ends the chain
func (b *ErrorBuilder) Mark(reference error) error {
	return errors.Mark(b.err, reference)
}

// Hints returns the hints attached anywhere in the chain
func Hints(err error) []string {
	return errors.GetAllHints(err)
}

// Describe renders the message followed by its hints, for CLI and log output
func Describe(err error) string {
	hints := Hints(err)
	if len(hints) == 0 {
		return err.Error()
	}
	return fmt.Sprintf("%s (%s)", err.Error(), hints[0])
}
