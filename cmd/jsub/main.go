package main

import (
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// traceKeys are the tracers of the packages of this module.
var traceKeys = []string{"jsub.scanner", "jsub.ll", "jsub.pda", "jsub.tree", "jsub.syntax", "jsub.cli"}

func tracer() tracing.Trace {
	return tracing.Select("jsub.cli")
}

// main() starts the jsub command line tool. It tokenizes and parses
// programs of the Java subset, displays derivation trees and exports the
// grammar and its predict table.
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	if err := newRootCmd().Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string
	var tlevel string
	conf := defaultConfig()
	rootCmd := &cobra.Command{
		Use:           "jsub",
		Short:         "An LL(1) front end for a small subset of Java",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				c, err := loadConfig(configFile)
				if err != nil {
					return err
				}
				*conf = *c
			}
			if cmd.Flags().Changed("trace") {
				conf.Trace = tlevel
			}
			setTraceLevel(conf.Trace)
			tracer().Debugf("configuration: %+v", conf)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "configuration file (TOML)")
	rootCmd.PersistentFlags().StringVar(&tlevel, "trace", "Error", "trace level [Debug|Info|Error]")

	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newParseCmd(conf))
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newReplCmd(conf))
	return rootCmd
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(l string) {
	level := tracing.TraceLevelFromString(l)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}
