// Package enumerator implements the single-pass scanner that extracts the
// elements of an array-shaped setting value such as `{ 1, "a,b", {3,4} }`.
//
// The scanner never builds intermediate structures. Each call to Next walks
// forward from the cursor until it reaches a top-level separator or the final
// closing brace, and then exposes the trimmed element text. Nested brace
// groups are returned as opaque text and quoted spans are skipped over, so a
// separator inside either never splits an element.
//
// Malformed input never panics. It only clears the validity flag:
//
//	e := enumerator.New(value, ',', true)
//	for e.Next() {
//	    fmt.Println(e.Current())
//	}
//	if !e.Valid() {
//	    // value is not a well-formed array
//	}
package enumerator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fault classifies why an enumerator became invalid.
type Fault uint8

const (
	// FaultNone means the value is (so far) well formed.
	FaultNone Fault = iota
	// FaultUnclosedArray means an opening brace has no matching closing brace.
	FaultUnclosedArray
	// FaultEmptyElement means an element span was empty or whitespace only.
	FaultEmptyElement
	// FaultUnterminatedQuote means a quoted span ran to the end of the value.
	FaultUnterminatedQuote
)

// String returns the string representation of the fault.
func (f Fault) String() string {
	switch f {
	case FaultNone:
		return "none"
	case FaultUnclosedArray:
		return "unclosed array"
	case FaultEmptyElement:
		return "empty element"
	case FaultUnterminatedQuote:
		return "unterminated quote"
	default:
		return "unknown fault"
	}
}

// state is the scanning state of an enumerator.
type state uint8

const (
	stateBeforeArray state = iota // no opening brace seen
	stateElement                  // scanning an element outside quotes
	stateQuote                    // inside an unterminated quoted span
	stateDone                     // terminal
)

const quote = '"'

// Enumerator walks the elements of one array value. It is not safe for
// concurrent use; distinct enumerators are fully independent.
type Enumerator struct {
	value    string
	sep      rune
	wantText bool

	state     state
	fault     Fault
	cursor    int // byte index of the next character to examine
	lastBrace int // byte index of the final '}'
	elemStart int // byte index where the current element span begins
	balance   int // brace nesting depth, 1 at the top level

	current   string
	spanStart int
	spanEnd   int
}

// New creates an enumerator over value using sep as the element separator.
// When wantText is false the element text is never computed, which is enough
// for validating or counting elements.
//
// New never fails. A value whose first non-whitespace character is not '{'
// is not an array: the enumerator is valid and done with no elements. A value
// that opens with '{' but does not end with '}' is invalid and done.
func New(value string, sep rune, wantText bool) *Enumerator {
	e := &Enumerator{
		value:     value,
		sep:       sep,
		wantText:  wantText,
		state:     stateBeforeArray,
		lastBrace: -1,
	}

	for i := 0; i < len(value); {
		r, w := utf8.DecodeRuneInString(value[i:])
		if r == '{' {
			e.cursor = i + w
			e.elemStart = i + w
			e.balance = 1
			e.state = stateElement
			break
		}
		if !unicode.IsSpace(r) {
			break
		}
		i += w
	}

	if e.state == stateBeforeArray {
		e.state = stateDone
		return e
	}

	for i := len(value); i > 0; {
		r, w := utf8.DecodeLastRuneInString(value[:i])
		i -= w
		if r == '}' {
			e.lastBrace = i
			break
		}
		if !unicode.IsSpace(r) {
			break
		}
	}

	if e.lastBrace < 0 {
		e.fail(FaultUnclosedArray)
		e.state = stateDone
		return e
	}

	// "{}", "{ }" and friends.
	if e.cursor == e.lastBrace || isBlank(value[e.cursor:e.lastBrace]) {
		e.state = stateDone
	}
	return e
}

// Next advances to the next element. It returns false once the enumerator is
// done, and whenever the value has been found to be malformed; callers check
// Valid after the loop to tell the two apart.
func (e *Enumerator) Next() bool {
	if e.state == stateDone {
		return false
	}

	for e.cursor <= e.lastBrace {
		r, w := utf8.DecodeRuneInString(e.value[e.cursor:])

		switch {
		case r == '{' && e.state != stateQuote:
			e.balance++
		case r == '}' && e.state != stateQuote:
			e.balance--
			if e.cursor == e.lastBrace {
				e.finishElement(e.cursor)
				e.state = stateDone
				return e.Valid()
			}
		case r == quote:
			if end := e.closingQuote(e.cursor + 1); end >= 0 {
				e.cursor = end
				e.state = stateElement
			} else {
				e.state = stateQuote
			}
		case r == e.sep && e.balance == 1 && e.state != stateQuote:
			e.finishElement(e.cursor)
			e.cursor += w
			e.elemStart = e.cursor
			return e.Valid()
		}

		e.cursor += w
	}

	// Only an unterminated quote can swallow the final brace.
	if e.state == stateQuote {
		e.fail(FaultUnterminatedQuote)
	}
	e.state = stateDone
	return e.Valid()
}

// Current returns the text of the most recent element. It is empty unless the
// enumerator was created with wantText.
func (e *Enumerator) Current() string {
	return e.current
}

// Span returns the byte offsets of the raw, untrimmed span of the most recent
// element within the value.
func (e *Enumerator) Span() (start, end int) {
	return e.spanStart, e.spanEnd
}

// Valid reports whether no malformation has been detected. Once false it
// stays false.
func (e *Enumerator) Valid() bool {
	return e.fault == FaultNone
}

// Done reports whether the enumerator has no more elements to produce.
func (e *Enumerator) Done() bool {
	return e.state == stateDone
}

// Fault returns the first malformation found, or FaultNone.
func (e *Enumerator) Fault() Fault {
	return e.fault
}

// IsArray reports whether the value opened with '{', that is whether the
// enumerator treats it as array syntax at all.
func (e *Enumerator) IsArray() bool {
	return e.lastBrace >= 0 || e.fault == FaultUnclosedArray
}

func (e *Enumerator) fail(f Fault) {
	if e.fault == FaultNone {
		e.fault = f
	}
}

// finishElement closes the element span ending at end.
func (e *Enumerator) finishElement(end int) {
	span := e.value[e.elemStart:end]
	if isBlank(span) {
		e.fail(FaultEmptyElement)
		return
	}

	e.spanStart, e.spanEnd = e.elemStart, end
	if e.wantText {
		e.current = Unquote(strings.TrimSpace(span))
	}
}

// closingQuote returns the index of the first quote at or after from that is
// not preceded by a backslash, or -1.
func (e *Enumerator) closingQuote(from int) int {
	for from < len(e.value) {
		i := strings.IndexByte(e.value[from:], quote)
		if i < 0 {
			return -1
		}
		i += from
		if e.value[i-1] != '\\' {
			return i
		}
		from = i + 1
	}
	return -1
}

// Unquote strips one layer of surrounding quotes from already trimmed
// element text. When only one side carries a quote, that lone quote is
// stripped on its own.
//
// TODO: the one-sided stripping turns `"abc` into `abc`; decide whether
// callers relying on it still exist before making it symmetric-only.
func Unquote(s string) string {
	if len(s) >= 2 && s[0] == quote && s[len(s)-1] == quote {
		return s[1 : len(s)-1]
	}
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return s
}

func isBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
