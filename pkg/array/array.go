// Package array parses array-shaped configuration values.
//
// A setting value such as
//
//	{ 1, "a,b", {3,4} }
//
// holds the elements 1, a,b and {3,4}. Separators inside quoted spans or
// nested brace groups do not split elements, surrounding whitespace is
// trimmed and one layer of surrounding quotes is removed. Nested groups are
// returned as text; parse them again to descend into them.
//
// A value that does not start with '{' is not an array. The functions in this
// package report ErrNotArray for it so that callers can fall back to treating
// the value as a scalar. Malformed arrays report ErrUnclosedArray,
// ErrEmptyElement or ErrUnterminatedQuote wrapped in a *ParseError.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple
// goroutines. Enumerator, Scanner and List values are not; use one per
// goroutine.
//
// # Parsing APIs
//
//   - Split(string) - element texts as a []string
//   - Count(string) - number of elements, without computing their text
//   - Parse(string) - Shape AST with element positions
//   - NewScanner(string) - Scan/Text/Err iteration
//   - NewEnumerator(string, rune, bool) - the underlying one-pass enumerator
//
// # Example usage with Split:
//
//	elems, err := array.Split(`{ 1, "a,b", {3,4} }`)
//	if errors.Is(err, array.ErrNotArray) {
//	    // use the value as a scalar
//	}
//	// elems is []string{"1", "a,b", "{3,4}"}
package array

import (
	"errors"

	"github.com/shapestone/shape-array/internal/enumerator"
	"github.com/shapestone/shape-array/internal/parser"
	"github.com/shapestone/shape-core/pkg/ast"
)

// Parse parses an array value into an AST.
//
// Returns an *ast.ArrayDataNode whose elements are *ast.LiteralNode string
// values. Nested groups are literal text.
//
// Example:
//
//	node, err := array.Parse("{a, b}")
//	arr := node.(*ast.ArrayDataNode)
//	first := arr.Elements()[0].(*ast.LiteralNode).Value() // "a"
func Parse(value string) (ast.SchemaNode, error) {
	return ParseWithOptions(value, DefaultOptions())
}

// ParseWithOptions parses an array value into an AST with custom options.
func ParseWithOptions(value string, opts Options) (ast.SchemaNode, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	node, err := parser.NewParserWithOptions(value, opts.parserOptions()).Parse()
	if err != nil {
		return nil, wrap(value, err)
	}
	return node, nil
}

// Split returns the elements of an array value.
//
// Elements produced before a malformation is found are discarded: either the
// whole value parses or an error is returned.
//
// Example:
//
//	elems, _ := array.Split("{1, 2, 3}")
//	// elems: []string{"1", "2", "3"}
func Split(value string) ([]string, error) {
	return SplitWithOptions(value, DefaultOptions())
}

// SplitWithOptions returns the elements of an array value with custom options.
//
// Example:
//
//	opts := array.DefaultOptions()
//	opts.Separator = ';'
//	elems, _ := array.SplitWithOptions("{a;b}", opts)
func SplitWithOptions(value string, opts Options) ([]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	elems, err := parser.Split(value, opts.parserOptions())
	if err != nil {
		return nil, wrap(value, err)
	}
	return elems, nil
}

// Count returns the number of elements of an array value. Element text is
// never computed.
func Count(value string) (int, error) {
	return CountWithOptions(value, DefaultOptions())
}

// CountWithOptions counts the elements of an array value with custom options.
func CountWithOptions(value string, opts Options) (int, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}

	n, err := parser.Count(value, opts.parserOptions())
	if err != nil {
		return 0, wrap(value, err)
	}
	return n, nil
}

// IsArray reports whether value uses array syntax, that is whether its first
// non-whitespace character is '{'. It says nothing about well-formedness.
func IsArray(value string) bool {
	// The separator plays no part in recognising the opening brace.
	return enumerator.New(value, ',', false).IsArray()
}

// Validate checks if value is a well-formed array.
//
// Returns nil for a well-formed array, including the empty array {}.
// Returns an error wrapping ErrNotArray for values without array syntax.
//
//	if err := array.Validate(value); err != nil {
//	    fmt.Println("invalid array:", err)
//	}
func Validate(value string) error {
	return ValidateWithOptions(value, DefaultOptions())
}

// ValidateWithOptions checks if value is a well-formed array with custom
// options.
func ValidateWithOptions(value string, opts Options) error {
	_, err := CountWithOptions(value, opts)
	return err
}

// IsNotArray reports whether err means the value had no array syntax.
func IsNotArray(err error) bool {
	return errors.Is(err, ErrNotArray)
}

// Format returns the format identifier for this parser.
func Format() string {
	return "Array"
}
