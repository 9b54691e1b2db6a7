package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/jsub/syntax"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newParseCmd(conf *Config) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a program and print its derivation tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				conf.Format = outputFormat
			}
			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			a, err := syntax.NewAnalyser()
			if err != nil {
				return err
			}
			t, err := a.Analyse(src)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			pterm.Info.Printf("%d statements in main\n", len(syntax.Statements(syntax.Body(t))))
			return renderTree(os.Stdout, t, conf.Format)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, sexpr, fingerprint)")
	return cmd
}
