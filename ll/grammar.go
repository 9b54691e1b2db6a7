package ll

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/jsub"
)

// --- Symbols ---------------------------------------------------------------

// Variable is a grammar variable (non-terminal). Values are defined by
// clients and have to be positive; two values are reserved.
type Variable int

const (
	// TerminalLabel tags derivation tree leaves. It is never a rule's LHS.
	TerminalLabel Variable = -1
	// Epsilon is the distinguished variable which produces nothing.
	Epsilon Variable = 0
)

// Symbol is a grammar symbol, either a terminal (a token kind) or a
// grammar variable. Symbols carry no runtime data.
type Symbol struct {
	Var  Variable     // grammar variable, if Term is jsub.NoToken
	Term jsub.TokType // terminal kind
}

// T creates a terminal symbol.
func T(tt jsub.TokType) Symbol {
	return Symbol{Term: tt}
}

// N creates a variable symbol.
func N(v Variable) Symbol {
	return Symbol{Var: v}
}

// IsTerminal is true for terminal symbols.
func (sym Symbol) IsTerminal() bool {
	return sym.Term != jsub.NoToken
}

// IsEpsilon is true for the epsilon symbol.
func (sym Symbol) IsEpsilon() bool {
	return !sym.IsTerminal() && sym.Var == Epsilon
}

// --- Rules -----------------------------------------------------------------

// Rule is a type for rules of a grammar. Rules cannot be shared between grammars.
type Rule struct {
	Serial int      // order number of this rule within a grammar
	LHS    Variable // symbol of left hand side
	rhs    []Symbol // right hand side symbols
}

// RHS gets the right hand side of a rule. Clients must not modify it.
// An epsilon rule has a RHS consisting of the epsilon symbol only.
func (r *Rule) RHS() []Symbol {
	return r.rhs
}

// IsEpsilon is true for rules of the form A → ε.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 1 && r.rhs[0].IsEpsilon()
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a type for a context-free grammar. Create one with a
// GrammarBuilder. Grammars are read-only after construction.
type Grammar struct {
	Name      string
	rules     []*Rule
	variables []Variable // variables in order of first occurence as LHS
	maxVar    Variable
	names     func(Variable) string
}

// Start returns the start variable, i.e. the LHS of rule 0.
func (g *Grammar) Start() Variable {
	return g.rules[0].LHS
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule gets a grammar rule by serial number.
func (g *Grammar) Rule(no int) *Rule {
	if no < 0 || no >= len(g.rules) {
		return nil
	}
	return g.rules[no]
}

// RulesFor returns all rules with LHS v, in order of definition.
func (g *Grammar) RulesFor(v Variable) []*Rule {
	var rules []*Rule
	for _, r := range g.rules {
		if r.LHS == v {
			rules = append(rules, r)
		}
	}
	return rules
}

// MaxVariable returns the largest variable value in use.
func (g *Grammar) MaxVariable() Variable {
	return g.maxVar
}

// EachVariable iterates over the grammar variables, in order of definition.
// Epsilon is not included.
func (g *Grammar) EachVariable(f func(v Variable)) {
	for _, v := range g.variables {
		f(v)
	}
}

// VarName returns the display name of a grammar variable.
func (g *Grammar) VarName(v Variable) string {
	switch v {
	case Epsilon:
		return "ε"
	case TerminalLabel:
		return "terminal"
	}
	if g.names != nil {
		if name := g.names(v); name != "" {
			return name
		}
	}
	return fmt.Sprintf("V%d", int(v))
}

// SymbolName returns the display name of a symbol.
func (g *Grammar) SymbolName(sym Symbol) string {
	if sym.IsTerminal() {
		return sym.Term.String()
	}
	return g.VarName(sym.Var)
}

// RuleString returns a readable representation of a rule.
func (g *Grammar) RuleString(r *Rule) string {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("[%s] ::= [", g.VarName(r.LHS)))
	for i, sym := range r.rhs {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(g.SymbolName(sym))
	}
	b.WriteString("]")
	return b.String()
}

// Dump is a debugging helper, tracing all rules of the grammar.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, g.RuleString(r))
	}
	tracer().Debugf("-------------------------------------------------------")
}

// --- Grammar Builder -------------------------------------------------------

// GrammarBuilder is a builder type for grammars. Clients add rules one at a time:
//
//    b.LHS(A).N(B).T(jsub.Semicolon).End()   // A -> B ;
//
// Errors are collected and reported by Grammar().
type GrammarBuilder struct {
	g   *Grammar
	err error
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar
// to build and a function for naming grammar variables (which may be nil).
func NewGrammarBuilder(gname string, names func(Variable) string) *GrammarBuilder {
	return &GrammarBuilder{
		g: &Grammar{
			Name:  gname,
			names: names,
		},
	}
}

// RuleBuilder is a builder type for a single rule. Create one with
// GrammarBuilder.LHS().
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs Variable
	rhs []Symbol
}

// LHS starts a rule given the left hand side variable.
func (gb *GrammarBuilder) LHS(v Variable) *RuleBuilder {
	if v <= Epsilon {
		gb.fail(fmt.Errorf("illegal variable %d as left hand side of a rule", v))
	}
	return &RuleBuilder{gb: gb, lhs: v}
}

// N appends a grammar variable to the RHS of a rule.
func (rb *RuleBuilder) N(v Variable) *RuleBuilder {
	if v <= Epsilon {
		rb.gb.fail(fmt.Errorf("illegal variable %d on right hand side of a rule", v))
	}
	rb.rhs = append(rb.rhs, N(v))
	return rb
}

// T appends a terminal to the RHS of a rule.
func (rb *RuleBuilder) T(tt jsub.TokType) *RuleBuilder {
	if tt == jsub.NoToken {
		rb.gb.fail(fmt.Errorf("illegal terminal %v on right hand side of a rule", tt))
	}
	rb.rhs = append(rb.rhs, T(tt))
	return rb
}

// End closes a rule and adds it to the grammar.
func (rb *RuleBuilder) End() *Rule {
	if len(rb.rhs) == 0 {
		rb.gb.fail(fmt.Errorf("rule for %s has empty right hand side; use Epsilon()",
			rb.gb.g.VarName(rb.lhs)))
	}
	return rb.gb.appendRule(rb.lhs, rb.rhs)
}

// Epsilon closes a rule as an epsilon-production and adds it to the grammar.
func (rb *RuleBuilder) Epsilon() *Rule {
	if len(rb.rhs) > 0 {
		rb.gb.fail(fmt.Errorf("epsilon rule for %s must not have symbols",
			rb.gb.g.VarName(rb.lhs)))
	}
	return rb.gb.appendRule(rb.lhs, []Symbol{N(Epsilon)})
}

func (gb *GrammarBuilder) appendRule(lhs Variable, rhs []Symbol) *Rule {
	g := gb.g
	r := &Rule{
		Serial: len(g.rules),
		LHS:    lhs,
		rhs:    rhs,
	}
	g.rules = append(g.rules, r)
	known := false
	for _, v := range g.variables {
		if v == lhs {
			known = true
			break
		}
	}
	if !known {
		g.variables = append(g.variables, lhs)
	}
	if lhs > g.maxVar {
		g.maxVar = lhs
	}
	return r
}

func (gb *GrammarBuilder) fail(err error) {
	if gb.err == nil {
		gb.err = err
	}
}

// Grammar returns the grammar built so far. It checks that there is at
// least one rule and that every variable used on a right hand side has at
// least one rule.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, fmt.Errorf("grammar %q: %w", gb.g.Name, gb.err)
	}
	g := gb.g
	if len(g.rules) == 0 {
		return nil, fmt.Errorf("grammar %q has no rules", g.Name)
	}
	defined := make(map[Variable]bool, len(g.variables))
	for _, v := range g.variables {
		defined[v] = true
	}
	for _, r := range g.rules {
		for _, sym := range r.rhs {
			if !sym.IsTerminal() && !sym.IsEpsilon() && !defined[sym.Var] {
				return nil, fmt.Errorf("grammar %q: variable %s used in rule %d has no rules",
					g.Name, g.VarName(sym.Var), r.Serial)
			}
		}
	}
	return g, nil
}
