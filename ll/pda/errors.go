package pda

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/jsub"
	"github.com/npillmayer/jsub/ll"
)

// ErrorKind classifies syntax errors.
type ErrorKind int

const (
	// TerminalMismatch: the expected terminal differs from the current token.
	TerminalMismatch ErrorKind = iota + 1
	// NoProduction: the table has no entry for (variable, current token).
	NoProduction
	// PrematureEnd: input is exhausted while derivations are still pending.
	PrematureEnd
	// TrailingInput: the derivation is complete but tokens are left.
	TrailingInput
)

func (k ErrorKind) String() string {
	switch k {
	case TerminalMismatch:
		return "terminal mismatch"
	case NoProduction:
		return "no production"
	case PrematureEnd:
		return "premature end of input"
	case TrailingInput:
		return "trailing input"
	}
	return "unknown syntax error"
}

// Sentinel errors, one per error kind, for use with errors.Is.
var (
	ErrTerminalMismatch = errors.New("terminal mismatch")
	ErrNoProduction     = errors.New("no production")
	ErrPrematureEnd     = errors.New("premature end of input")
	ErrTrailingInput    = errors.New("trailing input")
)

var sentinels = map[ErrorKind]error{
	TerminalMismatch: ErrTerminalMismatch,
	NoProduction:     ErrNoProduction,
	PrematureEnd:     ErrPrematureEnd,
	TrailingInput:    ErrTrailingInput,
}

// SyntaxError is returned by the parser for token sequences not derivable
// from the grammar. Not every field is set for every kind of error.
type SyntaxError struct {
	Kind     ErrorKind
	Expected []jsub.TokType // terminals which would have been accepted
	Actual   jsub.TokType   // kind of the current token, NoToken at end of input
	Var      string         // variable to expand, for NoProduction and PrematureEnd
	Index    int            // position of the current token
	Count    int            // total number of tokens
	Token    jsub.Token     // current token, if any
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	b.WriteString("syntax error: ")
	b.WriteString(e.Kind.String())
	switch e.Kind {
	case TerminalMismatch:
		fmt.Fprintf(&b, " at token #%d: expected %s, have %v", e.Index, kinds(e.Expected), e.Token)
	case NoProduction:
		fmt.Fprintf(&b, " for %s at token #%d %v, expected one of %s", e.Var, e.Index, e.Token, kinds(e.Expected))
	case PrematureEnd:
		fmt.Fprintf(&b, " after %d tokens", e.Count)
		if e.Var != "" {
			fmt.Fprintf(&b, ", %s pending", e.Var)
		}
		if len(e.Expected) > 0 {
			fmt.Fprintf(&b, ", expected %s", kinds(e.Expected))
		}
	case TrailingInput:
		fmt.Fprintf(&b, " at token #%d of %d: %v", e.Index, e.Count, e.Token)
	}
	return b.String()
}

// Is makes errors.Is(err, ErrPrematureEnd) etc. work.
func (e *SyntaxError) Is(target error) bool {
	return sentinels[e.Kind] == target
}

func kinds(tts []jsub.TokType) string {
	s := make([]string, len(tts))
	for i, tt := range tts {
		s[i] = tt.String()
	}
	if len(s) == 1 {
		return s[0]
	}
	return "{" + strings.Join(s, ",") + "}"
}

func expectedFor(table *ll.Table, sym ll.Symbol) []jsub.TokType {
	if sym.IsTerminal() {
		return []jsub.TokType{sym.Term}
	}
	return table.Expected(sym.Var)
}
