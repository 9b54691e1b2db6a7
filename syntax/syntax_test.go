package syntax

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/npillmayer/jsub"
	"github.com/npillmayer/jsub/ll"
	"github.com/npillmayer/jsub/ll/pda"
	"github.com/npillmayer/jsub/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const minimal = `public class C{public static void main(String[] args){int x;x=1;}}`

const program = `
public class Test {
    public static void main(String[] args) {
        int i = 0;
        char c = 'a';
        boolean b = true;
        while (i < 10 && b != false) { i = i + 1; }
        for (int j = 0; j <= 5; j + 1) { System.out.println(j * 2); }
        if (i == 10) {
            System.out.println("done");
        } else if (i > 10) {
            ;
        } else {
            i = (i - 1) % 3;
        }
        System.out.println("a string with ; and { }");
    }
}`

func wrap(body string) string {
	return "public class C { public static void main(String[] args) { " + body + " } }"
}

func makeAnalyser(t *testing.T) *Analyser {
	a, err := NewAnalyser()
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestGrammarIsLL1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jsub.syntax")
	defer teardown()
	//
	g, err := Grammar()
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if g.Start() != Prog {
		t.Errorf("expected start variable to be prog, is %s", g.VarName(g.Start()))
	}
	if _, err = NewTable(); err != nil {
		t.Error(err)
	}
	if err = ll.VerifyEBNF(g); err != nil {
		t.Error(err)
	}
	if LabelName(RelExprPrime) != "relexpr'" || LabelName(ll.Epsilon) != "" {
		t.Errorf("unexpected variable names")
	}
}

func TestTableTerminates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jsub.syntax")
	defer teardown()
	//
	done := make(chan error, 1)
	go func() {
		_, err := NewTable()
		done <- err
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Error(err)
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("predict table not built within 10s")
	}
}

func TestMinimalProgram(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jsub.syntax")
	defer teardown()
	//
	a := makeAnalyser(t)
	tokens, err := a.Tokenize(minimal)
	if err != nil {
		t.Fatal(err)
	}
	tree, err := a.Parse(tokens)
	if err != nil {
		t.Fatal(err)
	}
	stats := Statements(Body(tree))
	if len(stats) != 2 {
		t.Fatalf("expected 2 statements, have %d", len(stats))
	}
	if StatementKind(stats[0]) != Decl || StatementKind(stats[1]) != Assign {
		t.Errorf("expected a declaration and an assignment, have %s and %s",
			LabelName(StatementKind(stats[0])), LabelName(StatementKind(stats[1])))
	}
	leaves := tree.Leaves()
	if len(leaves) != len(tokens) {
		t.Fatalf("expected %d leaves, have %d", len(tokens), len(leaves))
	}
	for i := range tokens {
		if leaves[i] != tokens[i] {
			t.Errorf("leaf #%d is %v, expected %v", i, leaves[i], tokens[i])
		}
	}
}

func TestMissingBrace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jsub.syntax")
	defer teardown()
	//
	_, err := makeAnalyser(t).Analyse(strings.TrimSuffix(minimal, "}"))
	if !errors.Is(err, pda.ErrPrematureEnd) {
		t.Errorf("expected premature end, got %v", err)
	}
}

func TestEmptyStatement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jsub.syntax")
	defer teardown()
	//
	tree, err := makeAnalyser(t).Analyse(wrap("x=1;;"))
	if err != nil {
		t.Fatal(err)
	}
	stats := Statements(Body(tree))
	if len(stats) != 2 {
		t.Fatalf("expected 2 statements, have %d", len(stats))
	}
	if StatementKind(stats[0]) != Assign {
		t.Errorf("expected first statement to be an assignment")
	}
	if StatementKind(stats[1]) != ll.TerminalLabel || stats[1].Child(0).Token().TokType() != jsub.Semicolon {
		t.Errorf("expected second statement to be empty")
	}
}

func TestFullProgram(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jsub.syntax")
	defer teardown()
	//
	tree, err := makeAnalyser(t).Analyse(program)
	if err != nil {
		t.Fatal(err)
	}
	kinds := []ll.Variable{Decl, Decl, Decl, WhileStat, ForStat, IfStat, PrintStat}
	stats := Statements(Body(tree))
	if len(stats) != len(kinds) {
		t.Fatalf("expected %d statements, have %d", len(kinds), len(stats))
	}
	for i, stat := range stats {
		if StatementKind(stat) != kinds[i] {
			t.Errorf("statement #%d: expected %s, have %s", i, LabelName(kinds[i]),
				LabelName(StatementKind(stat)))
		}
	}
	if n := len(tree.Find(ElseOrElseIf)); n != 2 {
		t.Errorf("expected 2 else branches, have %d", n)
	}
	var literals []string
	for _, tok := range tree.Leaves() {
		if tok.TokType() == jsub.StringLit {
			literals = append(literals, tok.Lexeme())
		}
	}
	if len(literals) != 2 || literals[1] != "a string with ; and { }" {
		t.Errorf("string literals not preserved: %q", literals)
	}
}

func TestSyntaxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jsub.syntax")
	defer teardown()
	//
	a := makeAnalyser(t)
	for input, sentinel := range map[string]error{
		wrap("int x = ;"):                pda.ErrNoProduction,
		wrap("x 1;"):                     pda.ErrTerminalMismatch,
		wrap("while (x) { }") + "}":      pda.ErrTrailingInput,
		wrap(`System.out.println("x`):    scanner.ErrLexical,
		wrap("if (x) { } else else {}"): pda.ErrNoProduction,
		"public class {":                 pda.ErrTerminalMismatch,
	} {
		_, err := a.Analyse(input)
		if !errors.Is(err, sentinel) {
			t.Errorf("%q: expected %v, got %v", input, sentinel, err)
		}
	}
}

func TestConcurrentAnalysis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jsub.syntax")
	defer teardown()
	//
	a := makeAnalyser(t)
	reference, err := a.Analyse(program)
	if err != nil {
		t.Fatal(err)
	}
	expected, _ := reference.Fingerprint()
	var wg sync.WaitGroup
	fps := make([]string, 8)
	for i := range fps {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if tree, err := a.Analyse(program); err == nil {
				fps[i], _ = tree.Fingerprint()
			}
		}(i)
	}
	wg.Wait()
	for i, fp := range fps {
		if fp != expected {
			t.Errorf("parse #%d has a different fingerprint", i)
		}
	}
}
