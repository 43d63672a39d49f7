package array

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/shapestone/shape-array/internal/parser"
	"github.com/shapestone/shape-array/internal/tokenizer"
	"github.com/shapestone/shape-core/pkg/ast"
)

// bufferPool holds render buffers. Buffers that grew past maxPooledBuffer are
// dropped instead of returned.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 64))
	},
}

const maxPooledBuffer = 4096

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	bufferPool.Put(buf)
}

// Join renders elements as an array value.
//
// Elements are written bare when the lexer finds nothing but text in them
// or when they are a nested {...} group, and quoted otherwise (separators,
// stray braces, quotes, surrounding whitespace, the empty string). Every
// element is checked to read back unchanged;
// elements that cannot be written return an error wrapping
// ErrUnrepresentable.
//
// Example:
//
//	s, _ := array.Join([]string{"1", "a,b", ""}, array.DefaultOptions())
//	// s: {1, "a,b", ""}
func Join(elems []string, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteByte('{')
	for i, elem := range elems {
		if i > 0 {
			writeSeparator(buf, opts)
		}
		if err := writeElement(buf, elem, opts); err != nil {
			return "", err
		}
	}
	buf.WriteByte('}')

	return buf.String(), nil
}

// Render converts an AST node to array value bytes with the default options.
//
// The node should be an *ast.ArrayDataNode as returned by Parse. Literal
// elements are rendered like Join does; nested *ast.ArrayDataNode elements
// are rendered as nested groups.
func Render(node ast.SchemaNode) ([]byte, error) {
	return RenderWithOptions(node, DefaultOptions())
}

// RenderWithOptions converts an AST node to array value bytes with custom
// options.
func RenderWithOptions(node ast.SchemaNode, opts Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("unsupported node type for array rendering: %T", node)
	}

	buf := getBuffer()
	defer putBuffer(buf)

	if err := renderArrayData(arr, buf, opts); err != nil {
		return nil, err
	}
	return bytes.Clone(buf.Bytes()), nil
}

// renderArrayData renders an ArrayDataNode as a brace group.
func renderArrayData(node *ast.ArrayDataNode, buf *bytes.Buffer, opts Options) error {
	buf.WriteByte('{')
	for i, elem := range node.Elements() {
		if i > 0 {
			writeSeparator(buf, opts)
		}

		switch n := elem.(type) {
		case *ast.ArrayDataNode:
			if err := renderArrayData(n, buf, opts); err != nil {
				return err
			}
		case *ast.LiteralNode:
			if err := writeElement(buf, literalString(n), opts); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unexpected element type in array: %T", elem)
		}
	}
	buf.WriteByte('}')
	return nil
}

// literalString returns the text of a literal node.
func literalString(node *ast.LiteralNode) string {
	value := node.Value()
	if s, ok := value.(string); ok {
		return s
	}
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%v", value)
}

func writeSeparator(buf *bytes.Buffer, opts Options) {
	buf.WriteRune(opts.Separator)
	if opts.SpaceAfterSeparator {
		buf.WriteByte(' ')
	}
}

// writeElement writes one element. Plain text and nested groups are written
// bare, everything else is quoted.
func writeElement(buf *bytes.Buffer, elem string, opts Options) error {
	if tokenizer.IsPlain(elem, opts.tokenizerOptions()) || isGroup(elem) {
		if readsBack(elem, elem, opts) {
			buf.WriteString(elem)
			return nil
		}
	}

	text := `"` + elem + `"`
	if !readsBack(text, elem, opts) {
		return fmt.Errorf("%w: %q", ErrUnrepresentable, elem)
	}

	buf.WriteString(text)
	return nil
}

// isGroup reports whether elem has the shape of a nested {...} group.
func isGroup(elem string) bool {
	return len(elem) >= 2 && elem[0] == '{' && elem[len(elem)-1] == '}'
}

// readsBack reports whether text, as the only element of an array, splits
// back to exactly elem.
func readsBack(text, elem string, opts Options) bool {
	got, err := parser.Split("{"+text+"}", opts.parserOptions())
	return err == nil && len(got) == 1 && got[0] == elem
}
