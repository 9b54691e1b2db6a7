/*
Package jsub is a front end for a small subset of Java: a single class with
a mandatory main method, declarations, assignments, if/else-if/else chains,
while- and for-loops, console output and arithmetic, relational and boolean
expressions.

Processing is split into two stages. A scanner turns source text into a
sequence of tokens, and a table-driven LL(1) parser validates the token
sequence and builds a concrete derivation tree. Package structure is as
follows:

■ scanner: Package scanner tokenizes source text.

■ ll: Package ll holds the grammar model, grammar analysis (FIRST and FOLLOW
sets) and the construction of LL(1) predict tables.

■ ll/pda: Package pda implements a pushdown parser driven by an LL(1) table.

■ tree: Package tree implements the derivation tree produced by the parser.

■ syntax: Package syntax defines the grammar of the Java subset and bundles
scanner and parser.

■ cmd/jsub: Command jsub tokenizes and parses programs from the command line,
prints the grammar and exports the predict table.

The base package contains the token vocabulary shared by all of the other
packages. Scanner and parser have to agree on terminal kinds exactly, which
is why token kinds live here and nowhere else.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package jsub
