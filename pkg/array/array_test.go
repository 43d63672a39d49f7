package array_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shapestone/shape-array/pkg/array"
	"github.com/shapestone/shape-core/pkg/ast"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"integers", "{1, 2, 3}", []string{"1", "2", "3"}},
		{"empty", "{}", []string{}},
		{"blank", "{   }", []string{}},
		{"quoted separator", `{"a,b", c}`, []string{"a,b", "c"}},
		{"nested", "{ {1,2}, {3,4} }", []string{"{1,2}", "{3,4}"}},
		{"spaced", "{ 1 , 2 }", []string{"1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := array.Split(tt.input)
			if err != nil {
				t.Fatalf("Split() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplit_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"not an array", "plain text, no braces", array.ErrNotArray},
		{"unmatched", "{unmatched", array.ErrUnclosedArray},
		{"empty middle", "{1,,3}", array.ErrEmptyElement},
		{"empty trailing", "{1,2,}", array.ErrEmptyElement},
		{"unterminated quote", `{"abc}`, array.ErrUnterminatedQuote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := array.Split(tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Split() error = %v, want %v", err, tt.want)
			}
			if got != nil {
				t.Errorf("Split() = %q, want nil", got)
			}

			var perr *array.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Split() error %T is not *array.ParseError", err)
			}
			if perr.Value != tt.input {
				t.Errorf("ParseError.Value = %q, want %q", perr.Value, tt.input)
			}
		})
	}
}

func TestSplitWithOptions(t *testing.T) {
	opts := array.DefaultOptions()
	opts.Separator = ';'

	got, err := array.SplitWithOptions("{a;b, c}", opts)
	if err != nil {
		t.Fatalf("SplitWithOptions() error = %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b, c"}, got); diff != "" {
		t.Errorf("SplitWithOptions() mismatch (-want +got):\n%s", diff)
	}

	opts.Separator = '{'
	if _, err := array.SplitWithOptions("{a}", opts); err == nil {
		t.Error("SplitWithOptions() with invalid separator should fail")
	}
}

func TestCount(t *testing.T) {
	n, err := array.Count(`{1, "a,b", {3,4}}`)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Count() = %d, want 3", n)
	}

	if _, err := array.Count("{1,,2}"); !errors.Is(err, array.ErrEmptyElement) {
		t.Errorf("Count() error = %v, want %v", err, array.ErrEmptyElement)
	}
}

func TestIsArray(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"{}", true},
		{"  {1}", true},
		{"{unmatched", true},
		{"", false},
		{"text", false},
		{"1, 2", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := array.IsArray(tt.input); got != tt.want {
				t.Errorf("IsArray(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := []string{"{}", "{ }", "{1}", `{"a,b", {c, d}}`}
	for _, input := range valid {
		if err := array.Validate(input); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", input, err)
		}
	}

	invalid := []string{"", "scalar", "{", "{1,}", `{"x}`}
	for _, input := range invalid {
		if err := array.Validate(input); err == nil {
			t.Errorf("Validate(%q) = nil, want error", input)
		}
	}

	if err := array.Validate("scalar"); !array.IsNotArray(err) {
		t.Errorf("IsNotArray(Validate(scalar)) = false, err %v", err)
	}
}

func TestParse(t *testing.T) {
	node, err := array.Parse(`{a, "b,c"}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		t.Fatalf("Parse() returned %T, want *ast.ArrayDataNode", node)
	}
	if arr.Len() != 2 {
		t.Fatalf("Parse() returned %d elements, want 2", arr.Len())
	}

	lit, ok := arr.Elements()[1].(*ast.LiteralNode)
	if !ok {
		t.Fatalf("element 1 is %T, want *ast.LiteralNode", arr.Elements()[1])
	}
	if lit.Value() != "b,c" {
		t.Errorf("element 1 = %v, want b,c", lit.Value())
	}

	if _, err := array.Parse("{a,,b}"); !errors.Is(err, array.ErrEmptyElement) {
		t.Errorf("Parse() error = %v, want %v", err, array.ErrEmptyElement)
	}
}

func TestFormat(t *testing.T) {
	if got := array.Format(); got != "Array" {
		t.Errorf("Format() = %q, want Array", got)
	}
}
