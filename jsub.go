package jsub

import "fmt"

// --- Tokens ----------------------------------------------------------------

// Token represents an input token. Tokens are produced by the scanner and
// reflect terminals of the grammar.
//
// An example would be a token for a relational operator:
//
//    TokType = LessEq      // terminal kind of this token
//    Lexeme  = "<="        // lexeme as it appeared in the input
//    Span    = 67…69       // occured from byte position 67 in the input
//
// Tokens are values and are never mutated after the scanner produced them.
type Token struct {
	kind   TokType
	lexeme string
	span   Span
}

// MakeToken creates a token from its parts.
func MakeToken(kind TokType, lexeme string, span Span) Token {
	return Token{
		kind:   kind,
		lexeme: lexeme,
		span:   span,
	}
}

// TokType returns the terminal kind of a token.
func (t Token) TokType() TokType {
	return t.kind
}

// Lexeme returns the literal text of a token. For placeholder tokens which
// have not been matched against input yet, the lexeme is empty.
func (t Token) Lexeme() string {
	return t.lexeme
}

// Span returns the input positions a token covers.
func (t Token) Span() Span {
	return t.span
}

func (t Token) String() string {
	if t.lexeme == "" {
		return t.kind.String()
	}
	return fmt.Sprintf("%s(%q)", t.kind, t.lexeme)
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. A span denotes a
// start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// Extend returns the smallest span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
