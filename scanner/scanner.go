/*
Package scanner implements the tokenizer for the Java subset.

The scanner makes a single pass over the input, grouping runes into runs
of equal category. The only state carried from run to run is the literal
context: outside of quotes, runs of word runes and runs of operator runes
are classified by a DFA (longest match wins, keywords win ties against
identifiers); inside quotes, everything up to the matching quote is taken
verbatim as literal text.

    sc, err := scanner.New()
    tokens, err := sc.Tokenize(`public class C { … }`)

Whitespace is discarded. Delimiters and quotes form tokens of their own.
A run which no terminal matches, and a literal which is still open at the
end of input, are lexical errors.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/npillmayer/jsub"
	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
)

// tracer traces with key 'jsub.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("jsub.scanner")
}

// ErrLexical is matched by every LexicalError.
var ErrLexical = errors.New("lexical error")

// LexicalError is returned for input which cannot be tokenized.
type LexicalError struct {
	Text   string    // offending text
	Span   jsub.Span // position of Text in the input
	Reason string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error at %s: %s: %q", e.Span, e.Reason, e.Text)
}

// Unwrap makes errors.Is(err, ErrLexical) work.
func (e *LexicalError) Unwrap() error {
	return ErrLexical
}

type literalContext int

const (
	noLiteral literalContext = iota
	inString
	inChar
)

var categorizers = [...]runeCategorizer{
	noLiteral: plainCats{},
	inString:  literalCats{quote: '"', cat: catDQuote},
	inChar:    literalCats{quote: '\'', cat: catSQuote},
}

// Scanner is a tokenizer for the Java subset. A Scanner is immutable after
// creation and may be used by concurrent goroutines.
type Scanner struct {
	lexer *lexmachine.Lexer
}

// New creates a scanner. It returns an error if the classifying DFA cannot
// be compiled.
func New() (*Scanner, error) {
	lexer, err := newClassifier()
	if err != nil {
		return nil, err
	}
	return &Scanner{lexer: lexer}, nil
}

var defaultScanner *Scanner
var defaultErr error
var initOnce sync.Once

// Tokenize tokenizes src with a package-wide scanner, which is created on
// first use.
func Tokenize(src string) ([]jsub.Token, error) {
	initOnce.Do(func() {
		defaultScanner, defaultErr = New()
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	return defaultScanner.Tokenize(src)
}

// Tokenize splits src into tokens. It either returns all tokens of src or
// fails with a *LexicalError for the first offending run.
func (sc *Scanner) Tokenize(src string) ([]jsub.Token, error) {
	rs := newCatSeqReader(src)
	tokens := make([]jsub.Token, 0, len(src)/3+1)
	ctx := noLiteral
	var open jsub.Span // opening quote of a literal
	literalSeen := false
	for {
		rs.ResetOutput()
		csq, err := rs.Next(categorizers[ctx])
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		text, span := rs.OutputString(), rs.Span()
		tracer().Debugf("run %q of category %d at %s", text, csq.Cat, span)
		switch csq.Cat {
		case catSpace:
			continue
		case catDelimiter:
			tokens = append(tokens, jsub.MakeToken(jsub.Keywords[text], text, span))
		case catDQuote, catSQuote:
			quote, lit := jsub.DQuote, jsub.StringLit
			if csq.Cat == catSQuote {
				quote, lit = jsub.SQuote, jsub.CharLit
			}
			if ctx == noLiteral {
				ctx, open, literalSeen = inString, span, false
				if quote == jsub.SQuote {
					ctx = inChar
				}
			} else {
				if !literalSeen { // empty literal
					at := jsub.Span{span.From(), span.From()}
					tokens = append(tokens, jsub.MakeToken(lit, "", at))
				}
				ctx = noLiteral
			}
			tokens = append(tokens, jsub.MakeToken(quote, text, span))
		case catLiteral:
			kind := jsub.StringLit
			if ctx == inChar {
				kind = jsub.CharLit
			}
			tokens = append(tokens, jsub.MakeToken(kind, text, span))
			literalSeen = true
		case catWord, catOperator:
			toks, err := sc.classify(text, span, csq.Cat == catWord)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, toks...)
		default:
			return nil, &LexicalError{Text: text, Span: span, Reason: "illegal character"}
		}
	}
	if ctx != noLiteral {
		reason := "unterminated string literal"
		if ctx == inChar {
			reason = "unterminated char literal"
		}
		return nil, &LexicalError{
			Text:   src[open.From():],
			Span:   open.Extend(jsub.Span{open.To(), uint64(len(src))}),
			Reason: reason,
		}
	}
	tracer().Debugf("%d tokens", len(tokens))
	return tokens, nil
}
