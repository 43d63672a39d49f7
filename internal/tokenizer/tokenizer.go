package tokenizer

import (
	"unicode"
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// Options configures the tokenizer behavior.
type Options struct {
	// Separator is the element separator. Default: ','
	Separator rune
}

// DefaultOptions returns default tokenizer options.
func DefaultOptions() Options {
	return Options{
		Separator: ',',
	}
}

// NewTokenizer creates a tokenizer for array values with the default
// separator.
//
// Matchers are tried in order of specificity:
// 1. Escaped quote (before the plain quote and text)
// 2. Braces
// 3. Separator
// 4. Double quote
// 5. Whitespace runs
// 6. Text (everything else)
func NewTokenizer() tokenizer.Tokenizer {
	return NewTokenizerWithOptions(DefaultOptions())
}

// NewTokenizerWithOptions creates a tokenizer with custom options.
func NewTokenizerWithOptions(opts Options) tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenEscaped, `\"`),

		tokenizer.StringMatcherFunc(TokenLBrace, "{"),
		tokenizer.StringMatcherFunc(TokenRBrace, "}"),
		tokenizer.StringMatcherFunc(TokenSeparator, string(opts.Separator)),
		tokenizer.StringMatcherFunc(TokenDQuote, `"`),

		SpaceMatcher(),
		TextMatcherWithSeparator(opts.Separator),
	)
}

// Tokenize returns every token of input.
func Tokenize(input string, opts Options) []*tokenizer.Token {
	tok := NewTokenizerWithOptions(opts)
	tok.Initialize(input)

	var tokens []*tokenizer.Token
	for {
		token, ok := tok.NextToken()
		if !ok {
			break
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// IsPlain reports whether s can be written as an array element without
// quotes: it lexes as text, possibly with inner whitespace, and neither
// starts nor ends with whitespace. The empty string is not plain.
func IsPlain(s string, opts Options) bool {
	tokens := Tokenize(s, opts)
	if len(tokens) == 0 {
		return false
	}
	if tokens[0].Kind() != TokenText || tokens[len(tokens)-1].Kind() != TokenText {
		return false
	}
	for _, token := range tokens {
		if kind := token.Kind(); kind != TokenText && kind != TokenSpace {
			return false
		}
	}
	return true
}

// SpaceMatcher matches a run of Unicode whitespace.
func SpaceMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || !unicode.IsSpace(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenSpace, value)
	}
}

// TextMatcher creates a text matcher with the default separator.
func TextMatcher() tokenizer.Matcher {
	return TextMatcherWithSeparator(',')
}

// TextMatcherWithSeparator creates a matcher for element text.
// Matches runs of characters that are not the separator, a brace, a quote,
// a backslash or whitespace. A backslash is accepted as the first character
// so that one not followed by a quote still lexes as text.
//
// Grammar:
//
//	Text = [ "\\" ] { Character } ;
//	Character = <any character except separator, "{", "}", '"', "\\", whitespace> ;
//
// Performance: Uses ByteStream for fast ASCII scanning when available.
func TextMatcherWithSeparator(sep rune) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if sep < utf8.RuneSelf {
			if byteStream, ok := stream.(tokenizer.ByteStream); ok {
				if token := textMatcherByte(byteStream, byte(sep)); token != nil {
					return token
				}
			}
		}

		// Non-ASCII text or separator, or no ByteStream available.
		return textMatcherRune(stream, sep)
	}
}

func isStructuralByte(b, sep byte) bool {
	switch b {
	case sep, '{', '}', '"', '\\', ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// textMatcherByte scans ASCII text. It stops at the first non-ASCII byte so
// that Unicode whitespace is left to the rune matcher.
func textMatcherByte(stream tokenizer.ByteStream, sep byte) *tokenizer.Token {
	startPos := stream.BytePosition()

	first := true
	for {
		b, ok := stream.PeekByte()
		if !ok || b >= utf8.RuneSelf {
			break
		}
		if isStructuralByte(b, sep) && !(first && b == '\\') {
			break
		}

		stream.NextByte()
		first = false
	}

	if stream.BytePosition() == startPos {
		return nil
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(TokenText, []rune(string(value)))
}

func textMatcherRune(stream tokenizer.Stream, sep rune) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok {
			break
		}
		if r == sep || r == '{' || r == '}' || r == '"' || unicode.IsSpace(r) {
			break
		}
		if r == '\\' && len(value) > 0 {
			break
		}

		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}
	return tokenizer.NewToken(TokenText, value)
}
