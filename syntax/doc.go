/*
Package syntax defines the grammar of the Java subset and bundles scanner,
predict table and parser into an Analyser.

The language consists of a single class with a main method. The body of
main is a list of statements: declarations, assignments, if/else-if/else,
while and for loops, print statements and empty statements.

    analyser, err := syntax.NewAnalyser()
    tree, err := analyser.Analyse(`public class C { … }`)
    for _, stat := range syntax.Statements(syntax.Body(tree)) { … }

The predict table is derived from the grammar when the analyser is created.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'jsub.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("jsub.syntax")
}
