package ll

import (
	"github.com/npillmayer/jsub"
	"golang.org/x/tools/container/intsets"
)

// LLAnalysis is an object for grammar analysis (compute FIRST and FOLLOW
// sets and determine nullable variables). Create one with Analysis(g).
type LLAnalysis struct {
	g        *Grammar
	nullable []bool
	first    []*intsets.Sparse
	follow   []*intsets.Sparse
}

// Analysis creates an analyser for a grammar and runs the analysis.
// The analysis is read-only after this call.
func Analysis(g *Grammar) *LLAnalysis {
	n := int(g.MaxVariable()) + 1
	ga := &LLAnalysis{
		g:        g,
		nullable: make([]bool, n),
		first:    make([]*intsets.Sparse, n),
		follow:   make([]*intsets.Sparse, n),
	}
	for i := 0; i < n; i++ {
		ga.first[i] = &intsets.Sparse{}
		ga.follow[i] = &intsets.Sparse{}
	}
	ga.nullable[Epsilon] = true
	ga.computeFirstSets()
	ga.computeFollowSets()
	return ga
}

// Grammar returns the grammar this analysis is for.
func (ga *LLAnalysis) Grammar() *Grammar {
	return ga.g
}

// Nullable is true if v derives the empty string.
func (ga *LLAnalysis) Nullable(v Variable) bool {
	if v < 0 || int(v) >= len(ga.nullable) {
		return false
	}
	return ga.nullable[v]
}

// First returns FIRST(v), ordered by token kind.
func (ga *LLAnalysis) First(v Variable) []jsub.TokType {
	if v < 0 || int(v) >= len(ga.first) {
		return nil
	}
	return tokTypes(ga.first[v])
}

// Follow returns FOLLOW(v), ordered by token kind. The start variable is
// not followed by an end-of-input marker, as the token sequence carries none.
func (ga *LLAnalysis) Follow(v Variable) []jsub.TokType {
	if v < 0 || int(v) >= len(ga.follow) {
		return nil
	}
	return tokTypes(ga.follow[v])
}

// firstOfSequence computes FIRST(X1 … Xn) and whether X1 … Xn is nullable.
func (ga *LLAnalysis) firstOfSequence(syms []Symbol) (*intsets.Sparse, bool) {
	F := &intsets.Sparse{}
	for _, sym := range syms {
		if sym.IsTerminal() {
			F.Insert(int(sym.Term))
			return F, false
		}
		F.UnionWith(ga.first[sym.Var])
		if !ga.nullable[sym.Var] {
			return F, false
		}
	}
	return F, true
}

// Iterate over all rules until no FIRST set and no nullable flag changes.
func (ga *LLAnalysis) computeFirstSets() {
	changed := true
	for changed {
		changed = false
		for _, r := range ga.g.rules {
			F, nullable := ga.firstOfSequence(r.rhs)
			if grow(ga.first[r.LHS], F) {
				changed = true
			}
			if nullable && !ga.nullable[r.LHS] {
				ga.nullable[r.LHS] = true
				changed = true
			}
		}
	}
	ga.g.EachVariable(func(v Variable) {
		tracer().Debugf("FIRST(%s) = %v, nullable = %v", ga.g.VarName(v), ga.First(v), ga.nullable[v])
	})
}

// For every rule A → α B β, FOLLOW(B) includes FIRST(β); if β is nullable,
// FOLLOW(B) includes FOLLOW(A) as well.
func (ga *LLAnalysis) computeFollowSets() {
	changed := true
	for changed {
		changed = false
		for _, r := range ga.g.rules {
			for i, sym := range r.rhs {
				if sym.IsTerminal() || sym.IsEpsilon() {
					continue
				}
				F, nullable := ga.firstOfSequence(r.rhs[i+1:])
				if grow(ga.follow[sym.Var], F) {
					changed = true
				}
				if nullable && grow(ga.follow[sym.Var], ga.follow[r.LHS]) {
					changed = true
				}
			}
		}
	}
	ga.g.EachVariable(func(v Variable) {
		tracer().Debugf("FOLLOW(%s) = %v", ga.g.VarName(v), ga.Follow(v))
	})
}

// grow adds x to s and reports whether s gained elements. The return value
// of UnionWith cannot be used for this: it reports a change whenever the
// bit blocks of s and x differ, even if x is a subset of s.
func grow(s, x *intsets.Sparse) bool {
	n := s.Len()
	s.UnionWith(x)
	return s.Len() != n
}

func tokTypes(s *intsets.Sparse) []jsub.TokType {
	ints := s.AppendTo(nil)
	tts := make([]jsub.TokType, len(ints))
	for i, n := range ints {
		tts[i] = jsub.TokType(n)
	}
	return tts
}
