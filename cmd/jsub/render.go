package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/jsub"
	"github.com/npillmayer/jsub/tree"
	"github.com/pterm/pterm"
)

func tokenTable(tokens []jsub.Token) pterm.TableData {
	data := pterm.TableData{{"#", "Kind", "Lexeme", "Span"}}
	for i, tok := range tokens {
		lexeme := tok.Lexeme()
		if tok.TokType().IsLiteral() {
			lexeme = fmt.Sprintf("%q", lexeme)
		}
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			tok.TokType().String(),
			lexeme,
			tok.Span().String(),
		})
	}
	return data
}

func renderTokens(tokens []jsub.Token) {
	pterm.DefaultTable.WithHasHeader().WithData(tokenTable(tokens)).Render()
}

// leveledList flattens a derivation tree for pterm's tree printer.
func leveledList(t *tree.Tree) pterm.LeveledList {
	var ll pterm.LeveledList
	t.Walk(tree.ListenerFuncs{
		OnEnter: func(n *tree.Node, level int) {
			ll = append(ll, pterm.LeveledListItem{Level: level, Text: t.LabelName(n)})
		},
		OnTerminal: func(n *tree.Node, level int) {
			ll = append(ll, pterm.LeveledListItem{Level: level, Text: n.Token().String()})
		},
	})
	return ll
}

// renderTree writes a derivation tree in one of the formats "tree",
// "sexpr" or "fingerprint".
func renderTree(w io.Writer, t *tree.Tree, format string) error {
	switch format {
	case "tree":
		ll := leveledList(t)
		tracer().Debugf("|ll| = %d", len(ll))
		pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
	case "sexpr":
		fmt.Fprintln(w, t.String())
	case "fingerprint":
		fp, err := t.Fingerprint()
		if err != nil {
			return fmt.Errorf("fingerprint: %w", err)
		}
		fmt.Fprintln(w, fp)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	return nil
}
