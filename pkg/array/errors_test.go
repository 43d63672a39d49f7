package array_test

import (
	"errors"
	"testing"

	"github.com/shapestone/shape-array/pkg/array"
)

func TestParseError(t *testing.T) {
	err := &array.ParseError{
		Value: "{1,,2}",
		Err:   array.ErrEmptyElement,
	}

	got := err.Error()
	want := `array: cannot parse "{1,,2}": empty element`
	if got != want {
		t.Errorf("ParseError.Error() = %q, want %q", got, want)
	}

	if !errors.Is(err, array.ErrEmptyElement) {
		t.Error("errors.Is(ParseError, ErrEmptyElement) = false")
	}
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		array.ErrNotArray,
		array.ErrUnclosedArray,
		array.ErrEmptyElement,
		array.ErrUnterminatedQuote,
		array.ErrUnrepresentable,
	}

	for i, a := range sentinels {
		if a.Error() == "" {
			t.Errorf("sentinel %d has empty message", i)
		}
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %d matches sentinel %d", i, j)
			}
		}
	}
}
