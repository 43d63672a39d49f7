package array

import (
	"fmt"

	"github.com/shapestone/shape-array/internal/enumerator"
	"github.com/shapestone/shape-array/internal/parser"
)

// WarningHandler is a callback function for diagnostics. It receives the raw
// value and a message.
type WarningHandler func(value, message string)

// Scanner provides an iterator over the elements of an array value.
//
// Example usage:
//
//	scanner := array.NewScanner(`{a, "b,c"}`)
//	for scanner.Scan() {
//	    fmt.Println(scanner.Text())
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error; discard what was scanned
//	}
type Scanner struct {
	value   string
	opts    Options
	warn    WarningHandler
	e       *enumerator.Enumerator
	scanned int
	err     error
}

// NewScanner creates a Scanner over value with the default options.
func NewScanner(value string) *Scanner {
	return &Scanner{
		value: value,
		opts:  DefaultOptions(),
	}
}

// SetSeparator sets the element separator. It must be called before the
// first Scan. Returns the Scanner for method chaining.
func (s *Scanner) SetSeparator(sep rune) *Scanner {
	s.opts.Separator = sep
	return s
}

// SetWarningCallback sets a callback invoked when a malformation is found
// after elements were already returned by Scan. Returns the Scanner for
// method chaining.
func (s *Scanner) SetWarningCallback(fn WarningHandler) *Scanner {
	s.warn = fn
	return s
}

// Scan advances the scanner to the next element. It returns false when there
// are no more elements or an error occurs. After Scan returns false, the Err
// method will return any error that occurred.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	if s.e == nil {
		if err := s.opts.Validate(); err != nil {
			s.err = err
			return false
		}
		s.e = enumerator.New(s.value, s.opts.Separator, true)
		if !s.e.IsArray() {
			s.err = wrap(s.value, ErrNotArray)
			return false
		}
	}

	if s.e.Next() {
		s.scanned++
		return true
	}

	if err := parser.FaultErr(s.e.Fault()); err != nil {
		s.err = wrap(s.value, err)
		if s.warn != nil && s.scanned > 0 {
			s.warn(s.value, fmt.Sprintf("%v after %d element(s); discard them", err, s.scanned))
		}
	}
	return false
}

// Text returns the current element. It should only be called after Scan
// returns true.
func (s *Scanner) Text() string {
	if s.e == nil {
		return ""
	}
	return s.e.Current()
}

// Err returns the error, if any, that was encountered during scanning.
// It returns nil if the value was fully scanned.
func (s *Scanner) Err() error {
	return s.err
}
