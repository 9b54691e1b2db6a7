package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/jsub"
	"github.com/npillmayer/jsub/ll"
	"github.com/npillmayer/jsub/syntax"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	var ebnf bool
	var htmlFile string
	var firstFollow bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the grammar of the Java subset and its predict table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := syntax.Grammar()
			if err != nil {
				return err
			}
			switch {
			case ebnf:
				if err := ll.VerifyEBNF(g); err != nil {
					return err
				}
				return g.EBNF(os.Stdout)
			case firstFollow:
				renderFirstFollow(ll.Analysis(g))
			default:
				for i := 0; i < g.Size(); i++ {
					fmt.Printf("%3d: %s\n", i, g.RuleString(g.Rule(i)))
				}
			}
			if htmlFile != "" {
				return writeTableHTML(htmlFile)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&ebnf, "ebnf", false, "print the grammar as EBNF")
	cmd.Flags().StringVar(&htmlFile, "html", "", "export the predict table as HTML to a file")
	cmd.Flags().BoolVar(&firstFollow, "first-follow", false, "print FIRST and FOLLOW sets")
	return cmd
}

func renderFirstFollow(ga *ll.LLAnalysis) {
	data := pterm.TableData{{"Variable", "Nullable", "FIRST", "FOLLOW"}}
	ga.Grammar().EachVariable(func(v ll.Variable) {
		data = append(data, []string{
			ga.Grammar().VarName(v),
			fmt.Sprintf("%v", ga.Nullable(v)),
			kindList(ga.First(v)),
			kindList(ga.Follow(v)),
		})
	})
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func kindList(tts []jsub.TokType) string {
	s := make([]string, len(tts))
	for i, tt := range tts {
		s[i] = tt.String()
	}
	return strings.Join(s, " ")
}

func writeTableHTML(path string) error {
	table, err := syntax.NewTable()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export table: %w", err)
	}
	defer f.Close()
	ll.TableAsHTML(table, f)
	pterm.Info.Printf("predict table written to %s\n", path)
	return nil
}
