/*
Package pda implements a table-driven predictive parser.

The parser is a pushdown automaton using a single explicit stack and one
token of lookahead. It never backtracks: for every variable on top of the
stack, the predict table determines the one rule to expand, given the
current token.

    parser := pda.NewParser(table)
    tree, err := parser.Parse(tokens)

Parsing either yields a complete derivation tree for the whole token
sequence or fails with a *SyntaxError for the first problem encountered.
There is no error recovery.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pda

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/jsub"
	"github.com/npillmayer/jsub/ll"
	"github.com/npillmayer/jsub/tree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'jsub.pda'.
func tracer() tracing.Trace {
	return tracing.Select("jsub.pda")
}

// Parser is a predictive parser for the grammar of a predict table.
// A parser holds no per-parse state and may be used concurrently.
type Parser struct {
	table *ll.Table
}

// NewParser creates a parser, given a predict table.
func NewParser(table *ll.Table) *Parser {
	return &Parser{table: table}
}

// Table returns the predict table the parser works with.
func (p *Parser) Table() *ll.Table {
	return p.table
}

// stack entries link a grammar symbol to the tree node it will derive
type entry struct {
	sym  ll.Symbol
	node *tree.Node
}

// Parse derives a token sequence from the start variable of the grammar.
//
// The stack holds pending symbols together with their (still incomplete)
// tree nodes. Expanding a variable appends child nodes for every symbol of
// the rule to the variable's node and pushes them in reverse order, thus
// they are popped left to right. Matching a terminal binds the current
// token to the terminal's node.
//
// At the end of input, pending variables are derived by their ε-rule, if
// they have one.
func (p *Parser) Parse(tokens []jsub.Token) (*tree.Tree, error) {
	g := p.table.Grammar()
	root := tree.NewNode(g.Start())
	stack := arraystack.New()
	stack.Push(entry{sym: ll.N(g.Start()), node: root})
	pos := 0
	for !stack.Empty() {
		x, _ := stack.Pop()
		e := x.(entry)
		if e.sym.IsEpsilon() {
			continue
		}
		if pos >= len(tokens) {
			r := epsilonRule(g, e.sym)
			if r == nil {
				tracer().Debugf("input exhausted, %s pending", g.SymbolName(e.sym))
				var pending string
				if !e.sym.IsTerminal() {
					pending = g.VarName(e.sym.Var)
				}
				return nil, &SyntaxError{
					Kind:     PrematureEnd,
					Expected: expectedFor(p.table, e.sym),
					Var:      pending,
					Index:    pos,
					Count:    len(tokens),
				}
			}
			expand(stack, e, r)
			continue
		}
		tok := tokens[pos]
		if e.sym.IsTerminal() {
			if tok.TokType() != e.sym.Term {
				return nil, &SyntaxError{
					Kind:     TerminalMismatch,
					Expected: []jsub.TokType{e.sym.Term},
					Actual:   tok.TokType(),
					Index:    pos,
					Count:    len(tokens),
					Token:    tok,
				}
			}
			tracer().Debugf("match %v", tok)
			e.node.Bind(tok)
			pos++
			continue
		}
		r, ok := p.table.Rule(e.sym.Var, tok.TokType())
		if !ok {
			return nil, &SyntaxError{
				Kind:     NoProduction,
				Expected: p.table.Expected(e.sym.Var),
				Actual:   tok.TokType(),
				Var:      g.VarName(e.sym.Var),
				Index:    pos,
				Count:    len(tokens),
				Token:    tok,
			}
		}
		tracer().Debugf("expand %s", g.RuleString(r))
		expand(stack, e, r)
	}
	if pos < len(tokens) {
		return nil, &SyntaxError{
			Kind:   TrailingInput,
			Actual: tokens[pos].TokType(),
			Index:  pos,
			Count:  len(tokens),
			Token:  tokens[pos],
		}
	}
	return tree.NewTree(root, g), nil
}

// expand creates child nodes for the RHS of r, left to right, and pushes
// them as stack entries in reverse order.
func expand(stack *arraystack.Stack, e entry, r *ll.Rule) {
	rhs := r.RHS()
	children := make([]entry, len(rhs))
	for i, sym := range rhs {
		var child *tree.Node
		if sym.IsTerminal() {
			child = tree.NewTerminal(jsub.MakeToken(sym.Term, "", jsub.Span{}))
		} else {
			child = tree.NewNode(sym.Var)
		}
		children[i] = entry{sym: sym, node: e.node.AddChild(child)}
	}
	for i := len(children) - 1; i >= 0; i-- {
		stack.Push(children[i])
	}
}

func epsilonRule(g *ll.Grammar, sym ll.Symbol) *ll.Rule {
	if sym.IsTerminal() {
		return nil
	}
	for _, r := range g.RulesFor(sym.Var) {
		if r.IsEpsilon() {
			return r
		}
	}
	return nil
}
