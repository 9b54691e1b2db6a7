package syntax

import (
	"fmt"

	"github.com/npillmayer/jsub"
	"github.com/npillmayer/jsub/ll"
)

// Grammar variables of the Java subset.
const (
	Prog ll.Variable = iota + 1
	Los
	Stat
	WhileStat
	ForStat
	ForStart
	ForArith
	IfStat
	ElseIfStat
	ElseOrElseIf
	PossIf
	Assign
	Decl
	PossAssign
	PrintStat
	TypeDecl
	Expr
	CharExpr
	BoolExpr
	BoolOp
	BoolEq
	BoolLog
	RelExpr
	RelExprPrime
	RelOp
	ArithExpr
	ArithExprPrime
	Term
	TermPrime
	Factor
	PrintExpr
	maxVariable
)

var varNames = [...]string{
	Prog:           "prog",
	Los:            "los",
	Stat:           "stat",
	WhileStat:      "whilestat",
	ForStat:        "forstat",
	ForStart:       "forstart",
	ForArith:       "forarith",
	IfStat:         "ifstat",
	ElseIfStat:     "elseifstat",
	ElseOrElseIf:   "elseorelseif",
	PossIf:         "possif",
	Assign:         "assign",
	Decl:           "decl",
	PossAssign:     "possassign",
	PrintStat:      "print",
	TypeDecl:       "type",
	Expr:           "expr",
	CharExpr:       "charexpr",
	BoolExpr:       "boolexpr",
	BoolOp:         "boolop",
	BoolEq:         "booleq",
	BoolLog:        "boollog",
	RelExpr:        "relexpr",
	RelExprPrime:   "relexpr'",
	RelOp:          "relop",
	ArithExpr:      "arithexpr",
	ArithExprPrime: "arithexpr'",
	Term:           "term",
	TermPrime:      "term'",
	Factor:         "factor",
	PrintExpr:      "printexpr",
}

// LabelName returns the name of a grammar variable, e.g. "relexpr'".
func LabelName(v ll.Variable) string {
	if v <= ll.Epsilon || v >= maxVariable {
		return ""
	}
	return varNames[v]
}

// Grammar creates the grammar of the Java subset. Rule 0 derives the
// complete program from the start variable Prog.
func Grammar() (*ll.Grammar, error) {
	b := ll.NewGrammarBuilder("Java subset", LabelName)
	b.LHS(Prog).T(jsub.Public).T(jsub.Class).T(jsub.Ident).T(jsub.LBrace).
		T(jsub.Public).T(jsub.Static).T(jsub.Void).T(jsub.Main).
		T(jsub.LParen).T(jsub.StringArr).T(jsub.Args).T(jsub.RParen).
		T(jsub.LBrace).N(Los).T(jsub.RBrace).T(jsub.RBrace).End()
	b.LHS(Los).N(Stat).N(Los).End()
	b.LHS(Los).Epsilon()
	// statements
	b.LHS(Stat).N(WhileStat).End()
	b.LHS(Stat).N(ForStat).End()
	b.LHS(Stat).N(IfStat).End()
	b.LHS(Stat).N(Assign).T(jsub.Semicolon).End()
	b.LHS(Stat).N(Decl).T(jsub.Semicolon).End()
	b.LHS(Stat).N(PrintStat).T(jsub.Semicolon).End()
	b.LHS(Stat).T(jsub.Semicolon).End()
	b.LHS(WhileStat).T(jsub.While).T(jsub.LParen).N(RelExpr).N(BoolExpr).T(jsub.RParen).
		T(jsub.LBrace).N(Los).T(jsub.RBrace).End()
	b.LHS(ForStat).T(jsub.For).T(jsub.LParen).N(ForStart).T(jsub.Semicolon).
		N(RelExpr).N(BoolExpr).T(jsub.Semicolon).N(ForArith).T(jsub.RParen).
		T(jsub.LBrace).N(Los).T(jsub.RBrace).End()
	b.LHS(ForStart).N(Decl).End()
	b.LHS(ForStart).N(Assign).End()
	b.LHS(ForStart).Epsilon()
	b.LHS(ForArith).N(ArithExpr).End()
	b.LHS(ForArith).Epsilon()
	b.LHS(IfStat).T(jsub.If).T(jsub.LParen).N(RelExpr).N(BoolExpr).T(jsub.RParen).
		T(jsub.LBrace).N(Los).T(jsub.RBrace).N(ElseIfStat).End()
	b.LHS(ElseIfStat).N(ElseOrElseIf).T(jsub.LBrace).N(Los).T(jsub.RBrace).N(ElseIfStat).End()
	b.LHS(ElseIfStat).Epsilon()
	b.LHS(ElseOrElseIf).T(jsub.Else).N(PossIf).End()
	b.LHS(PossIf).T(jsub.If).T(jsub.LParen).N(RelExpr).N(BoolExpr).T(jsub.RParen).End()
	b.LHS(PossIf).Epsilon()
	b.LHS(Assign).T(jsub.Ident).T(jsub.Assign).N(Expr).End()
	b.LHS(Decl).N(TypeDecl).T(jsub.Ident).N(PossAssign).End()
	b.LHS(PossAssign).T(jsub.Assign).N(Expr).End()
	b.LHS(PossAssign).Epsilon()
	b.LHS(PrintStat).T(jsub.Print).T(jsub.LParen).N(PrintExpr).T(jsub.RParen).End()
	b.LHS(TypeDecl).T(jsub.Type).End()
	// expressions
	b.LHS(Expr).N(RelExpr).N(BoolExpr).End()
	b.LHS(Expr).N(CharExpr).End()
	b.LHS(CharExpr).T(jsub.SQuote).T(jsub.CharLit).T(jsub.SQuote).End()
	b.LHS(BoolExpr).N(BoolOp).N(RelExpr).N(BoolExpr).End()
	b.LHS(BoolExpr).Epsilon()
	b.LHS(BoolOp).N(BoolEq).End()
	b.LHS(BoolOp).N(BoolLog).End()
	b.LHS(BoolEq).T(jsub.Equal).End()
	b.LHS(BoolEq).T(jsub.NotEqual).End()
	b.LHS(BoolLog).T(jsub.And).End()
	b.LHS(BoolLog).T(jsub.Or).End()
	b.LHS(RelExpr).N(ArithExpr).N(RelExprPrime).End()
	b.LHS(RelExpr).T(jsub.True).End()
	b.LHS(RelExpr).T(jsub.False).End()
	b.LHS(RelExprPrime).N(RelOp).N(ArithExpr).End()
	b.LHS(RelExprPrime).Epsilon()
	b.LHS(RelOp).T(jsub.Less).End()
	b.LHS(RelOp).T(jsub.LessEq).End()
	b.LHS(RelOp).T(jsub.Greater).End()
	b.LHS(RelOp).T(jsub.GreaterEq).End()
	b.LHS(ArithExpr).N(Term).N(ArithExprPrime).End()
	b.LHS(ArithExprPrime).T(jsub.Plus).N(Term).N(ArithExprPrime).End()
	b.LHS(ArithExprPrime).T(jsub.Minus).N(Term).N(ArithExprPrime).End()
	b.LHS(ArithExprPrime).Epsilon()
	b.LHS(Term).N(Factor).N(TermPrime).End()
	b.LHS(TermPrime).T(jsub.Times).N(Factor).N(TermPrime).End()
	b.LHS(TermPrime).T(jsub.Divide).N(Factor).N(TermPrime).End()
	b.LHS(TermPrime).T(jsub.Mod).N(Factor).N(TermPrime).End()
	b.LHS(TermPrime).Epsilon()
	b.LHS(Factor).T(jsub.LParen).N(ArithExpr).T(jsub.RParen).End()
	b.LHS(Factor).T(jsub.Ident).End()
	b.LHS(Factor).T(jsub.Num).End()
	b.LHS(PrintExpr).N(RelExpr).N(BoolExpr).End()
	b.LHS(PrintExpr).T(jsub.DQuote).T(jsub.StringLit).T(jsub.DQuote).End()
	return b.Grammar()
}

// NewTable builds the predict table for the Java subset. It is an error if
// the grammar turns out not to be LL(1).
func NewTable() (*ll.Table, error) {
	g, err := Grammar()
	if err != nil {
		return nil, err
	}
	lgen := ll.NewTableGenerator(ll.Analysis(g))
	lgen.CreateTables()
	if lgen.HasConflicts {
		c := lgen.Conflicts()[0]
		return nil, fmt.Errorf("grammar %q is not LL(1): %d conflicts, first at (%s,%s)",
			g.Name, len(lgen.Conflicts()), g.VarName(c.Var), c.Lookahead)
	}
	return lgen.Table(), nil
}
