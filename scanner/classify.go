package scanner

import (
	"sort"
	"strings"
	"unicode"

	"github.com/npillmayer/jsub"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Patterns for runs outside of literals. lexmachine prefers the longest
// match and, for matches of equal length, the pattern added first.
// A malformed word is matched with token type jsub.NoToken.
const (
	numPattern       = `[0-9]+`
	identPattern     = `[a-zA-Z][a-zA-Z0-9_]*`
	malformedPattern = `([a-zA-Z0-9_]|\.|\[|\])+`
)

// newClassifier compiles the DFA classifying runs of word runes and
// operator runes.
func newClassifier() (*lexmachine.Lexer, error) {
	lexer := lexmachine.NewLexer()
	lexemes := make([]string, 0, len(jsub.Keywords))
	for lexeme := range jsub.Keywords {
		lexemes = append(lexemes, lexeme)
	}
	sort.Strings(lexemes)
	for _, lexeme := range lexemes {
		lexer.Add([]byte(literalPattern(lexeme)), makeToken(jsub.Keywords[lexeme]))
	}
	lexer.Add([]byte(numPattern), makeToken(jsub.Num))
	lexer.Add([]byte(identPattern), makeToken(jsub.Ident))
	lexer.Add([]byte(malformedPattern), makeToken(jsub.NoToken))
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return lexer, nil
}

// literalPattern escapes every rune of a fixed lexeme which is not a letter
// or digit.
func literalPattern(lexeme string) string {
	var b strings.Builder
	for _, r := range lexeme {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func makeToken(tt jsub.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(tt), string(m.Bytes), m), nil
	}
}

// classify splits a run into tokens by maximal munch. If single is set, the
// run has to be covered by exactly one token.
func (sc *Scanner) classify(run string, at jsub.Span, single bool) ([]jsub.Token, error) {
	s, err := sc.lexer.Scanner([]byte(run))
	if err != nil {
		return nil, err
	}
	var toks []jsub.Token
	for t, err, eof := s.Next(); !eof; t, err, eof = s.Next() {
		if err != nil {
			tracer().Debugf("no token matches %q: %v", run, err)
			return nil, &LexicalError{Text: run, Span: at, Reason: "no terminal matches"}
		}
		lmtok := t.(*lexmachine.Token)
		tt := jsub.TokType(lmtok.Type)
		if tt == jsub.NoToken {
			return nil, &LexicalError{Text: run, Span: at, Reason: "malformed word"}
		}
		from := at.From() + uint64(lmtok.TC)
		toks = append(toks, jsub.MakeToken(tt, string(lmtok.Lexeme),
			jsub.Span{from, from + uint64(len(lmtok.Lexeme))}))
	}
	if single && len(toks) != 1 {
		return nil, &LexicalError{Text: run, Span: at, Reason: "malformed word"}
	}
	return toks, nil
}
