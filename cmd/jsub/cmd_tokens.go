package main

import (
	"github.com/npillmayer/jsub/scanner"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file|->",
		Short: "Tokenize a program and print its tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			tokens, err := scanner.Tokenize(src)
			if err != nil {
				return err
			}
			renderTokens(tokens)
			return nil
		},
	}
}
