// Package parser turns an array value into Shape's unified AST.
// It drives the enumerator once and wraps each element in a literal node.
package parser

import (
	"errors"

	"github.com/shapestone/shape-array/internal/enumerator"
	"github.com/shapestone/shape-core/pkg/ast"
)

// Common parsing errors
var (
	// ErrNotArray indicates the value has no array syntax at all. Callers
	// usually fall back to treating the value as a scalar.
	ErrNotArray = errors.New("value is not an array")

	// ErrUnclosedArray indicates an opening brace without a closing brace.
	ErrUnclosedArray = errors.New("missing closing brace")

	// ErrEmptyElement indicates an empty or whitespace-only element.
	ErrEmptyElement = errors.New("empty element")

	// ErrUnterminatedQuote indicates a quoted span that is never closed.
	ErrUnterminatedQuote = errors.New("unterminated quote")
)

// FaultErr returns the error for an enumerator fault, or nil for FaultNone.
func FaultErr(f enumerator.Fault) error {
	switch f {
	case enumerator.FaultNone:
		return nil
	case enumerator.FaultUnclosedArray:
		return ErrUnclosedArray
	case enumerator.FaultEmptyElement:
		return ErrEmptyElement
	case enumerator.FaultUnterminatedQuote:
		return ErrUnterminatedQuote
	default:
		return errors.New(f.String())
	}
}

// Options configures the parser behavior.
type Options struct {
	// Separator is the element separator. Default: ','
	Separator rune
}

// DefaultOptions returns default parser options.
func DefaultOptions() Options {
	return Options{
		Separator: ',',
	}
}

// Parser builds an AST from a single array value.
type Parser struct {
	input string
	opts  Options
}

// NewParser creates a new parser for the given value.
func NewParser(input string) *Parser {
	return NewParserWithOptions(input, DefaultOptions())
}

// NewParserWithOptions creates a new parser with custom options.
func NewParserWithOptions(input string, opts Options) *Parser {
	return &Parser{
		input: input,
		opts:  opts,
	}
}

// Parse parses the value and returns an AST representing the array.
//
// Returns *ast.ArrayDataNode whose elements are *ast.LiteralNode string
// values positioned at the start of each element's raw span. Nested groups
// are literal text and are not parsed further.
//
// Elements produced before a malformation is found are discarded.
func (p *Parser) Parse() (ast.SchemaNode, error) {
	e := enumerator.New(p.input, p.opts.Separator, true)
	if !e.IsArray() {
		return nil, ErrNotArray
	}

	elements := make([]ast.SchemaNode, 0, 8)
	for e.Next() {
		start, _ := e.Span()
		elements = append(elements, ast.NewLiteralNode(e.Current(), p.position(start)))
	}

	if err := FaultErr(e.Fault()); err != nil {
		return nil, err
	}
	return ast.NewArrayDataNode(elements, p.position(p.arrayStart())), nil
}

// arrayStart returns the offset of the opening brace.
func (p *Parser) arrayStart() int {
	for i, r := range p.input {
		if r == '{' {
			return i
		}
	}
	return 0
}

// position returns the AST position of a byte offset in the input.
// Lines and columns are 1-indexed; columns count runes.
func (p *Parser) position(offset int) ast.Position {
	line, column := 1, 1
	for _, r := range p.input[:offset] {
		if r == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return ast.NewPosition(offset, line, column)
}

// Split returns the element texts of value without building an AST.
func Split(input string, opts Options) ([]string, error) {
	e := enumerator.New(input, opts.Separator, true)
	if !e.IsArray() {
		return nil, ErrNotArray
	}

	elements := make([]string, 0, 8)
	for e.Next() {
		elements = append(elements, e.Current())
	}

	if err := FaultErr(e.Fault()); err != nil {
		return nil, err
	}
	return elements, nil
}

// Count returns the number of elements in value without computing their
// text.
func Count(input string, opts Options) (int, error) {
	e := enumerator.New(input, opts.Separator, false)
	if !e.IsArray() {
		return 0, ErrNotArray
	}

	n := 0
	for e.Next() {
		n++
	}

	if err := FaultErr(e.Fault()); err != nil {
		return 0, err
	}
	return n, nil
}
