/*
Package ll implements prerequisites for LL(1) parsing: a grammar model,
grammar analysis and the construction of predict tables.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of grammar variables and terminals. Terminals are
token kinds of package jsub. Grammar variables are small positive integers,
defined by clients. Grammars may contain epsilon-productions.

Example:

    const (
        S ll.Variable = iota + 1
        A
        B
    )
    b := ll.NewGrammarBuilder("G", names)
    b.LHS(S).N(A).T(jsub.Semicolon).End()  // S  ->  A ;
    b.LHS(A).T(jsub.Ident).N(B).End()      // A  ->  id B
    b.LHS(B).T(jsub.Plus).N(A).End()       // B  ->  + A
    b.LHS(B).Epsilon()                     // B  ->
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   0: [S] ::= [A SEMICOLON]
   1: [A] ::= [ID B]
   2: [B] ::= [PLUS A]
   3: [B] ::= [ε]

Rule 0 is the start rule, its left hand side is the start variable.

Static Grammar Analysis

After the grammar is complete, it has to be analysed. For this end, the
grammar is subjected to an analysis object, which computes FIRST and
FOLLOW sets for the grammar and determines all epsilon-derivable variables.

    ga := ll.Analysis(g)
    ga.First(A)     // [ID]
    ga.Follow(A)    // [SEMICOLON]
    ga.Nullable(B)  // true

Predict Table Construction

Using grammar analysis as input, a predict table for a top-down parser
is constructed. For every rule A → α, the table maps (A, a) to the rule
for every terminal a in FIRST(α) and, if α derives the empty string, for
every terminal in FOLLOW(A).

    lgen := ll.NewTableGenerator(ga)
    lgen.CreateTables()
    if lgen.HasConflicts { ... }  // grammar is not LL(1)
    table := lgen.Table()

A table is immutable after construction and may be shared between any
number of concurrent parsers. Tables are not checked for completeness:
a missing entry is detected by the parser when it is actually needed.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'jsub.ll'.
func tracer() tracing.Trace {
	return tracing.Select("jsub.ll")
}
