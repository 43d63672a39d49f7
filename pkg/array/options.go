package array

import (
	"unicode"
	"unicode/utf8"

	"github.com/shapestone/shape-array/internal/parser"
	"github.com/shapestone/shape-array/internal/tokenizer"
)

// Options configures array parsing and rendering.
type Options struct {
	// Separator is the element separator.
	// It must be a valid rune and not {, }, ", \, \r, \n, whitespace other
	// than \t, or the Unicode replacement character (0xFFFD).
	// Default: ','
	Separator rune

	// SpaceAfterSeparator controls whether rendering writes a space after
	// each separator, as in {a, b} rather than {a,b}. Parsing ignores it.
	// Default: true
	SpaceAfterSeparator bool
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Separator:           ',',
		SpaceAfterSeparator: true,
	}
}

// validSeparator reports whether r is a valid element separator.
func validSeparator(r rune) bool {
	switch r {
	case 0, '{', '}', '"', '\\', '\r', '\n', utf8.RuneError:
		return false
	case '\t':
		return true
	}
	// Element text is trimmed of whitespace, and rendering may follow the
	// separator with a space.
	return utf8.ValidRune(r) && !unicode.IsSpace(r)
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if !validSeparator(o.Separator) {
		return &OptionsError{Field: "Separator", Message: "invalid separator"}
	}
	return nil
}

func (o Options) parserOptions() parser.Options {
	return parser.Options{Separator: o.Separator}
}

func (o Options) tokenizerOptions() tokenizer.Options {
	return tokenizer.Options{Separator: o.Separator}
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "array: invalid " + e.Field + ": " + e.Message
}
