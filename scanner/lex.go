package scanner

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/jsub"
)

// --- Category codes --------------------------------------------------------

// catCode is a category for runes. Consecutive runes of the same category
// form a run, unless the category is a loner.
type catCode int8

const (
	catIllegal catCode = iota
	catSpace
	catWord     // letters, digits, '_', '.', '[', ']'
	catOperator // = + - * / % < > ! & |
	catDelimiter
	catDQuote
	catSQuote
	catLiteral // anything within a quoted literal
)

type runeCategorizer interface {
	Cat(r rune) (cat catCode, isLoner bool)
}

// plainCats categorizes runes outside of quoted literals.
type plainCats struct{}

func (plainCats) Cat(r rune) (catCode, bool) {
	switch r {
	case ' ', '\t', '\r', '\n':
		return catSpace, false
	case '{', '}', '(', ')', ';':
		return catDelimiter, true
	case '"':
		return catDQuote, true
	case '\'':
		return catSQuote, true
	case '_', '.', '[', ']':
		return catWord, false
	case '=', '+', '-', '*', '/', '%', '<', '>', '!', '&', '|':
		return catOperator, false
	}
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
		return catWord, false
	}
	return catIllegal, false
}

// literalCats categorizes runes within a quoted literal. Only the closing
// quote is special.
type literalCats struct {
	quote rune
	cat   catCode
}

func (lc literalCats) Cat(r rune) (catCode, bool) {
	if r == lc.quote {
		return lc.cat, true
	}
	return catLiteral, false
}

type catSeq struct {
	Cat    catCode // catcode of all runes in this sequence
	Length int     // length of sequence in terms of runes
}

// --- Category sequence reader ----------------------------------------------

// catSeqReader reads runs of runes with equal category. Categories are
// determined by a categorizer, which may change from run to run.
// Output strings are slices of the input, never re-encoded runes, thus
// invalid UTF-8 bytes survive unchanged.
type catSeqReader struct {
	src        string
	reader     io.RuneReader
	next       rune
	nextSize   int
	hasNext    bool
	isEOF      bool
	start, end uint64 // as bytes index
}

func newCatSeqReader(src string) *catSeqReader {
	return &catSeqReader{src: src, reader: strings.NewReader(src)}
}

// Next reads the next run. It returns io.EOF if input is exhausted.
func (rs *catSeqReader) Next(rc runeCategorizer) (csq catSeq, err error) {
	var r rune
	if r, err = rs.lookahead(); err != nil {
		return
	}
	var isLoner bool
	csq.Cat, isLoner = rc.Cat(r)
	rs.match()
	csq.Length = 1
	if isLoner { // rune category is not allowed to form sequences
		return
	}
	for {
		if r, err = rs.lookahead(); err == io.EOF {
			return csq, nil
		} else if err != nil {
			return
		}
		if cc, _ := rc.Cat(r); cc != csq.Cat {
			return
		}
		rs.match()
		csq.Length++
	}
}

// OutputString returns the text of the runs read since the last call to
// ResetOutput.
func (rs *catSeqReader) OutputString() string {
	return rs.src[rs.start:rs.end]
}

func (rs *catSeqReader) ResetOutput() {
	rs.start = rs.end
}

// Span returns the input position of the output string.
func (rs *catSeqReader) Span() jsub.Span {
	return jsub.Span{rs.start, rs.end}
}

func (rs *catSeqReader) lookahead() (rune, error) {
	if rs.isEOF {
		return utf8.RuneError, io.EOF
	}
	if rs.hasNext {
		return rs.next, nil
	}
	r, sz, err := rs.reader.ReadRune()
	if err == io.EOF {
		rs.isEOF = true
		return utf8.RuneError, io.EOF
	} else if err != nil {
		return 0, fmt.Errorf("scanner cannot read input: %w", err)
	}
	rs.next, rs.nextSize, rs.hasNext = r, sz, true
	return r, nil
}

func (rs *catSeqReader) match() {
	rs.end += uint64(rs.nextSize)
	rs.hasNext = false
}
