package ll

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/jsub"
	"golang.org/x/exp/ebnf"
)

// Lexical productions for terminal kinds without a fixed lexeme. Names
// starting with a lower-case letter denote lexical productions in EBNF.
var lexicalClasses = map[jsub.TokType]string{
	jsub.Ident:     "identifier",
	jsub.Num:       "number",
	jsub.StringLit: "stringChars",
	jsub.CharLit:   "charChars",
	jsub.Type:      "primitiveType",
}

var lexicalProductions = []struct {
	name, expr string
	uses       []string
}{
	{"identifier", `letter { letter | digit | "_" }`, []string{"letter", "digit"}},
	{"number", `digit { digit }`, []string{"digit"}},
	{"stringChars", `{ printable }`, []string{"printable"}},
	{"charChars", `{ printable }`, []string{"printable"}},
	{"primitiveType", `"int" | "char" | "boolean"`, nil},
	{"letter", `"a" … "z" | "A" … "Z"`, nil},
	{"digit", `"0" … "9"`, nil},
	{"printable", `" " … "~"`, nil},
}

// EBNF writes the grammar in extended Backus-Naur form, in the notation of
// package golang.org/x/exp/ebnf. Alternatives of a variable are merged into
// one production; an epsilon alternative makes the production optional.
// Lexical productions are appended for every terminal class in use.
func (g *Grammar) EBNF(w io.Writer) error {
	var b bytes.Buffer
	used := make(map[string]bool)
	vars := append([]Variable{g.Start()}, g.variables...)
	done := make(map[Variable]bool, len(vars))
	for _, v := range vars {
		if done[v] {
			continue
		}
		done[v] = true
		var alts []string
		optional := false
		for _, r := range g.RulesFor(v) {
			if r.IsEpsilon() {
				optional = true
				continue
			}
			alts = append(alts, g.ebnfSequence(r.rhs, used))
		}
		if len(alts) == 0 {
			return fmt.Errorf("grammar %q: variable %s derives nothing but ε", g.Name, g.VarName(v))
		}
		expr := strings.Join(alts, " | ")
		if optional {
			expr = "[ " + expr + " ]"
		}
		fmt.Fprintf(&b, "%s = %s .\n", ebnfName(g.VarName(v)), expr)
	}
	for i := len(lexicalProductions) - 1; i >= 0; i-- { // propagate usage to helpers
		if p := lexicalProductions[i]; used[p.name] {
			for _, u := range p.uses {
				used[u] = true
			}
		}
	}
	for _, p := range lexicalProductions {
		if used[p.name] {
			fmt.Fprintf(&b, "%s = %s .\n", p.name, p.expr)
		}
	}
	_, err := w.Write(b.Bytes())
	return err
}

func (g *Grammar) ebnfSequence(rhs []Symbol, used map[string]bool) string {
	parts := make([]string, len(rhs))
	for i, sym := range rhs {
		if !sym.IsTerminal() {
			parts[i] = ebnfName(g.VarName(sym.Var))
			continue
		}
		if class, ok := lexicalClasses[sym.Term]; ok {
			used[class] = true
			parts[i] = class
			continue
		}
		parts[i] = strconv.Quote(sym.Term.Lexeme())
	}
	return strings.Join(parts, " ")
}

// ebnfName turns a variable name into a non-lexical production name,
// e.g. "relexpr'" into "RelexprPrime".
func ebnfName(name string) string {
	name = strings.ReplaceAll(name, "'", "Prime")
	var b strings.Builder
	for i, r := range name {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// VerifyEBNF renders a grammar as EBNF and checks the result with
// ebnf.Verify: every production referenced is defined and every production
// is reachable from the start variable.
func VerifyEBNF(g *Grammar) error {
	var b bytes.Buffer
	if err := g.EBNF(&b); err != nil {
		return err
	}
	eg, err := ebnf.Parse(g.Name, &b)
	if err != nil {
		return fmt.Errorf("grammar %q: EBNF does not parse: %w", g.Name, err)
	}
	if err = ebnf.Verify(eg, ebnfName(g.VarName(g.Start()))); err != nil {
		return fmt.Errorf("grammar %q: EBNF does not verify: %w", g.Name, err)
	}
	return nil
}
