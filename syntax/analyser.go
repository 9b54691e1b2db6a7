package syntax

import (
	"fmt"

	"github.com/npillmayer/jsub"
	"github.com/npillmayer/jsub/ll"
	"github.com/npillmayer/jsub/ll/pda"
	"github.com/npillmayer/jsub/scanner"
	"github.com/npillmayer/jsub/tree"
)

// Analyser bundles the two stages of the front end: a scanner and a
// predictive parser for the Java subset. An Analyser is immutable and may
// be shared between goroutines.
type Analyser struct {
	scanner *scanner.Scanner
	table   *ll.Table
	parser  *pda.Parser
}

// NewAnalyser builds the scanner and the predict table once.
func NewAnalyser() (*Analyser, error) {
	sc, err := scanner.New()
	if err != nil {
		return nil, fmt.Errorf("cannot create scanner: %w", err)
	}
	table, err := NewTable()
	if err != nil {
		return nil, err
	}
	tracer().Infof("predict table for Java subset has %d entries", table.EntryCount())
	return &Analyser{
		scanner: sc,
		table:   table,
		parser:  pda.NewParser(table),
	}, nil
}

// Table returns the predict table of the analyser.
func (a *Analyser) Table() *ll.Table {
	return a.table
}

// Tokenize runs the first stage only.
func (a *Analyser) Tokenize(src string) ([]jsub.Token, error) {
	return a.scanner.Tokenize(src)
}

// Parse runs the second stage only.
func (a *Analyser) Parse(tokens []jsub.Token) (*tree.Tree, error) {
	return a.parser.Parse(tokens)
}

// Analyse tokenizes and parses a program. The first lexical or syntax
// error aborts the analysis and is returned unwrapped, thus clients may
// inspect it with errors.As.
func (a *Analyser) Analyse(src string) (*tree.Tree, error) {
	tokens, err := a.Tokenize(src)
	if err != nil {
		tracer().Infof("%v", err)
		return nil, err
	}
	tracer().Debugf("%d tokens", len(tokens))
	t, err := a.Parse(tokens)
	if err != nil {
		tracer().Infof("%v", err)
		return nil, err
	}
	return t, nil
}

// Statements flattens a statement list. It takes a node labeled Los and
// returns its Stat nodes in order of appearance, without descending into
// nested blocks.
func Statements(los *tree.Node) []*tree.Node {
	var stats []*tree.Node
	for los != nil && los.Label() == Los {
		stat := los.Child(0)
		if stat == nil || stat.Label() != Stat {
			break
		}
		stats = append(stats, stat)
		los = los.Child(1)
	}
	return stats
}

// Body returns the statement list of the main method of a program tree.
func Body(t *tree.Tree) *tree.Node {
	if t == nil || t.Root() == nil || t.Root().Label() != Prog {
		return nil
	}
	for _, ch := range t.Root().Children() {
		if ch.Label() == Los {
			return ch
		}
	}
	return nil
}

// StatementKind returns the variable a statement derives, e.g. Assign or
// WhileStat. For an empty statement it returns ll.TerminalLabel.
func StatementKind(stat *tree.Node) ll.Variable {
	if stat == nil || stat.Child(0) == nil {
		return ll.Epsilon
	}
	return stat.Child(0).Label()
}
