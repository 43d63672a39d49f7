// Package array provides a fluent API for building and editing array values.
//
// # List Type
//
// List holds the elements of one array value:
//
//	l := array.NewList().
//		Add("debug", "info").
//		Add("warn, error")
//
//	s, _ := l.Text() // {debug, info, "warn, error"}
//
// # Round-trip Support
//
//	l, _ := array.ParseList(`{a, "b,c"}`)
//	l.Set(0, "z").Remove(1)
//	s, _ := l.Text() // {z}
package array

import (
	"github.com/shapestone/shape-core/pkg/ast"
)

// List represents the elements of an array value. All setter methods return
// *List to enable method chaining.
type List struct {
	values []string
	opts   Options
}

// NewList creates a new empty List with the default options.
func NewList() *List {
	return NewListWithOptions(DefaultOptions())
}

// NewListWithOptions creates a new empty List with custom options.
func NewListWithOptions(opts Options) *List {
	return &List{
		values: make([]string, 0),
		opts:   opts,
	}
}

// ParseList parses an array value into a List.
func ParseList(value string) (*List, error) {
	return ParseListWithOptions(value, DefaultOptions())
}

// ParseListWithOptions parses an array value into a List with custom options.
func ParseListWithOptions(value string, opts Options) (*List, error) {
	values, err := SplitWithOptions(value, opts)
	if err != nil {
		return nil, err
	}
	return &List{
		values: values,
		opts:   opts,
	}, nil
}

// Add appends elements.
func (l *List) Add(values ...string) *List {
	l.values = append(l.values, values...)
	return l
}

// Set replaces the element at index. Out-of-range indexes are ignored.
func (l *List) Set(index int, value string) *List {
	if index >= 0 && index < len(l.values) {
		l.values[index] = value
	}
	return l
}

// Remove deletes the element at index. Out-of-range indexes are ignored.
func (l *List) Remove(index int) *List {
	if index >= 0 && index < len(l.values) {
		l.values = append(l.values[:index], l.values[index+1:]...)
	}
	return l
}

// Get returns the element at index.
// Returns ("", false) if the index is out of range.
func (l *List) Get(index int) (string, bool) {
	if index < 0 || index >= len(l.values) {
		return "", false
	}
	return l.values[index], true
}

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.values)
}

// Values returns a copy of the elements.
func (l *List) Values() []string {
	values := make([]string, len(l.values))
	copy(values, l.values)
	return values
}

// Text renders the list as an array value.
func (l *List) Text() (string, error) {
	return Join(l.values, l.opts)
}

// Node converts the list to an AST array of string literals.
func (l *List) Node() *ast.ArrayDataNode {
	elements := make([]ast.SchemaNode, len(l.values))
	for i, v := range l.values {
		elements[i] = ast.NewLiteralNode(v, ast.ZeroPosition())
	}
	return ast.NewArrayDataNode(elements, ast.ZeroPosition())
}
