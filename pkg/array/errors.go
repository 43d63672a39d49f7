// Package array provides error types for array value parsing.
package array

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-array/internal/parser"
)

// ParseError reports a value that could not be parsed as an array.
type ParseError struct {
	// Value is the raw setting value.
	Value string
	// Err is the underlying error.
	Err error
}

// Error returns the formatted error message.
func (e *ParseError) Error() string {
	return fmt.Sprintf("array: cannot parse %q: %v", e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Common parsing errors
var (
	// ErrNotArray indicates the value does not use array syntax at all.
	// Hosts usually fall back to treating such a value as a scalar.
	ErrNotArray = parser.ErrNotArray

	// ErrUnclosedArray indicates an opening brace without a closing brace.
	ErrUnclosedArray = parser.ErrUnclosedArray

	// ErrEmptyElement indicates an empty element, as in {1,,2} or {1,2,}.
	ErrEmptyElement = parser.ErrEmptyElement

	// ErrUnterminatedQuote indicates a quoted span that is never closed.
	ErrUnterminatedQuote = parser.ErrUnterminatedQuote

	// ErrUnrepresentable indicates an element that cannot be written as
	// array text and read back unchanged.
	ErrUnrepresentable = errors.New("element cannot be represented")
)

// wrap attaches the value to err.
func wrap(value string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Value: value, Err: err}
}
