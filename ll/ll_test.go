package ll

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/jsub"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/tools/container/intsets"
)

// We use the classic LL(1) expression grammar for testing:
//
//     E  → T E'
//     E' → + T E' | ε
//     T  → F T'
//     T' → * F T' | ε
//     F  → ( E ) | NUM
//
const (
	E Variable = iota + 1
	Ep
	T_
	Tp
	F
)

var exprNames = map[Variable]string{E: "E", Ep: "E'", T_: "T", Tp: "T'", F: "F"}

func makeExprGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("Expressions", func(v Variable) string { return exprNames[v] })
	b.LHS(E).N(T_).N(Ep).End()
	b.LHS(Ep).T(jsub.Plus).N(T_).N(Ep).End()
	b.LHS(Ep).Epsilon()
	b.LHS(T_).N(F).N(Tp).End()
	b.LHS(Tp).T(jsub.Times).N(F).N(Tp).End()
	b.LHS(Tp).Epsilon()
	b.LHS(F).T(jsub.LParen).N(E).T(jsub.RParen).End()
	b.LHS(F).T(jsub.Num).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestGrammarBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jsub.ll")
	defer teardown()
	//
	g := makeExprGrammar(t)
	g.Dump()
	if g.Size() != 8 {
		t.Errorf("expected grammar to have 8 rules, has %d", g.Size())
	}
	if g.Start() != E {
		t.Errorf("expected start variable to be E, is %s", g.VarName(g.Start()))
	}
	if n := len(g.RulesFor(Tp)); n != 2 {
		t.Errorf("expected 2 rules for T', have %d", n)
	}
	if !g.Rule(2).IsEpsilon() {
		t.Errorf("expected rule 2 to be an epsilon rule: %s", g.RuleString(g.Rule(2)))
	}
	if s := g.RuleString(g.Rule(6)); s != "[F] ::= [LPAREN E RPAREN]" {
		t.Errorf("unexpected rule string %q", s)
	}
	if g.Rule(8) != nil {
		t.Errorf("expected rule 8 to be nil")
	}
}

func TestGrammarBuilderErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jsub.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Undefined", nil)
	b.LHS(1).N(2).End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected error for undefined variable")
	}
	b = NewGrammarBuilder("Empty", nil)
	b.LHS(1).End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected error for empty right hand side")
	}
	b = NewGrammarBuilder("Epsilon as LHS", nil)
	b.LHS(Epsilon).T(jsub.Num).End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected error for epsilon on left hand side")
	}
	if _, err := NewGrammarBuilder("No rules", nil).Grammar(); err == nil {
		t.Errorf("expected error for grammar without rules")
	}
}

func TestFirstFollow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jsub.ll")
	defer teardown()
	//
	ga := Analysis(makeExprGrammar(t))
	first := []jsub.TokType{jsub.LParen, jsub.Num}
	for _, v := range []Variable{E, T_, F} {
		if f := ga.First(v); !reflect.DeepEqual(f, first) {
			t.Errorf("FIRST(%s) = %v, expected %v", exprNames[v], f, first)
		}
	}
	if f := ga.First(Ep); !reflect.DeepEqual(f, []jsub.TokType{jsub.Plus}) {
		t.Errorf("FIRST(E') = %v", f)
	}
	if !ga.Nullable(Ep) || !ga.Nullable(Tp) || ga.Nullable(E) {
		t.Errorf("nullable set wrong")
	}
	follows := map[Variable][]jsub.TokType{
		E:  {jsub.RParen},
		Ep: {jsub.RParen},
		T_: {jsub.RParen, jsub.Plus},
		Tp: {jsub.RParen, jsub.Plus},
		F:  {jsub.RParen, jsub.Plus, jsub.Times},
	}
	for v, expected := range follows {
		if f := ga.Follow(v); !reflect.DeepEqual(f, expected) {
			t.Errorf("FOLLOW(%s) = %v, expected %v", exprNames[v], f, expected)
		}
	}
}

func TestPredictTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jsub.ll")
	defer teardown()
	//
	lgen := NewTableGenerator(Analysis(makeExprGrammar(t)))
	lgen.CreateTables()
	if lgen.HasConflicts {
		t.Fatalf("expected expression grammar to be LL(1), conflicts: %v", lgen.Conflicts())
	}
	table := lgen.Table()
	if table.EntryCount() != 11 {
		t.Errorf("expected 11 table entries, have %d", table.EntryCount())
	}
	r, ok := table.Rule(Tp, jsub.Plus)
	if !ok || !r.IsEpsilon() {
		t.Errorf("expected M[T',+] to be an epsilon rule, is %v", r)
	}
	rhs, ok := table.Production(F, jsub.LParen)
	if !ok || len(rhs) != 3 || rhs[1] != N(E) {
		t.Errorf("expected M[F,(] = ( E ), is %v", rhs)
	}
	if _, ok = table.Production(F, jsub.Plus); ok {
		t.Errorf("expected M[F,+] to be empty")
	}
	if _, ok = table.Production(Epsilon, jsub.Plus); ok {
		t.Errorf("expected no production for epsilon")
	}
	expected := []jsub.TokType{jsub.RParen, jsub.Plus, jsub.Times}
	if x := table.Expected(Tp); !reflect.DeepEqual(x, expected) {
		t.Errorf("expected lookaheads for T' to be %v, are %v", expected, x)
	}
	var html bytes.Buffer
	TableAsHTML(table, &html)
	if !strings.Contains(html.String(), "<td>T'</td>") {
		t.Errorf("expected HTML table to contain a row for T'")
	}
}

func TestConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jsub.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Ambiguous", nil)
	b.LHS(1).T(jsub.Ident).End()
	b.LHS(1).T(jsub.Ident).T(jsub.Num).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	lgen := NewTableGenerator(Analysis(g))
	lgen.CreateTables()
	if !lgen.HasConflicts {
		t.Fatalf("expected grammar to have a conflict")
	}
	cs := lgen.Conflicts()
	if len(cs) != 1 || cs[0].Var != 1 || cs[0].Lookahead != jsub.Ident || cs[0].Rules != [2]int{0, 1} {
		t.Errorf("unexpected conflicts %v", cs)
	}
}

func TestEBNF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jsub.ll")
	defer teardown()
	//
	g := makeExprGrammar(t)
	var b bytes.Buffer
	if err := g.EBNF(&b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	t.Logf("\n%s", out)
	for _, prod := range []string{
		`EPrime = [ "+" T EPrime ] .`,
		`F = "(" E ")" | number .`,
		`digit = "0" … "9" .`,
	} {
		if !strings.Contains(out, prod) {
			t.Errorf("expected EBNF to contain %q", prod)
		}
	}
	if strings.Contains(out, "identifier") {
		t.Errorf("expected unused lexical productions to be left out")
	}
	if err := VerifyEBNF(g); err != nil {
		t.Error(err)
	}
}

func TestGrowSubset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jsub.ll")
	defer teardown()
	//
	var s, x intsets.Sparse
	s.Insert(1)
	s.Insert(2)
	x.Insert(1)
	if grow(&s, &x) {
		t.Errorf("union with a subset must not count as growth")
	}
	x.Insert(7)
	if !grow(&s, &x) || s.Len() != 3 {
		t.Errorf("expected s to grow to {1 2 7}, is %s", s.String())
	}
	if grow(&s, &x) {
		t.Errorf("second union must not count as growth")
	}
}
