package array

import (
	"github.com/shapestone/shape-array/internal/enumerator"
	"github.com/shapestone/shape-array/internal/parser"
)

// Enumerator produces the elements of one array value lazily, scanning the
// value exactly once.
//
// Next returns false once there are no more elements and also as soon as the
// value turns out to be malformed; check Valid (or Err) afterwards and discard
// anything already produced when it reports a problem.
//
//	e := array.NewEnumerator(value, ',', true)
//	for e.Next() {
//	    fmt.Println(e.Current())
//	}
//	if !e.Valid() {
//	    // not a well-formed array
//	}
//
// A value that is not array syntax at all is valid and done from the start.
type Enumerator struct {
	value string
	e     *enumerator.Enumerator
}

// NewEnumerator creates an enumerator over value. sep is the element
// separator. When wantText is false, Current always returns "" and the
// enumerator only validates and counts.
func NewEnumerator(value string, sep rune, wantText bool) *Enumerator {
	return &Enumerator{
		value: value,
		e:     enumerator.New(value, sep, wantText),
	}
}

// Next advances to the next element and reports whether one is available.
func (e *Enumerator) Next() bool {
	return e.e.Next()
}

// Current returns the most recent element.
func (e *Enumerator) Current() string {
	return e.e.Current()
}

// Valid reports whether no malformation has been found. Once false it stays
// false.
func (e *Enumerator) Valid() bool {
	return e.e.Valid()
}

// Done reports whether all elements have been produced.
func (e *Enumerator) Done() bool {
	return e.e.Done()
}

// IsArray reports whether the value uses array syntax.
func (e *Enumerator) IsArray() bool {
	return e.e.IsArray()
}

// Err returns a *ParseError describing the malformation, or nil while the
// enumerator is valid.
func (e *Enumerator) Err() error {
	return wrap(e.value, parser.FaultErr(e.e.Fault()))
}
