// Package tokenizer provides lexical tokenization of array values using
// Shape's tokenizer framework.
package tokenizer

// Token type constants for array values.
//
// Note: The tokenizer emits flat, character-level tokens. It does not track
// brace depth or quote state; element boundaries are decided by the
// enumerator.
const (
	// Structural tokens
	TokenLBrace    = "LBrace"    // {
	TokenRBrace    = "RBrace"    // }
	TokenSeparator = "Separator" // , (or the configured separator)
	TokenDQuote    = "DQuote"    // "
	TokenEscaped   = "Escaped"   // \" (backslash-escaped quote)

	// Content tokens
	TokenSpace = "Space" // run of whitespace
	TokenText  = "Text"  // run of anything else
)
