package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/jsub/syntax"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newReplCmd(conf *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse programs or statements interactively",
		Long: `Start an interactive session. Every line is either a complete program or
a sequence of statements, which is wrapped into the main method of a class.
Lines starting with ":tokens " are tokenized only. Quit with <ctrl>D.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := syntax.NewAnalyser()
			if err != nil {
				return err
			}
			repl, err := readline.New(conf.Prompt)
			if err != nil {
				return fmt.Errorf("start REPL: %w", err)
			}
			defer repl.Close()
			pterm.Info.Println("Welcome to the jsub REPL")
			intp := &Intp{analyser: a, repl: repl, conf: conf}
			intp.REPL()
			return nil
		},
	}
}

// Intp is our interpreter object.
type Intp struct {
	analyser *syntax.Analyser
	repl     *readline.Instance
	conf     *Config
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if err := intp.Eval(line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	fmt.Println("Good bye!")
}

// Eval tokenizes or parses a line of input and prints the result.
func (intp *Intp) Eval(line string) error {
	if strings.HasPrefix(line, ":tokens ") {
		tokens, err := intp.analyser.Tokenize(strings.TrimPrefix(line, ":tokens "))
		if err != nil {
			return err
		}
		renderTokens(tokens)
		return nil
	}
	src := wrapStatements(line, intp.conf.Class)
	tracer().Debugf("input: %s", src)
	t, err := intp.analyser.Analyse(src)
	if err != nil {
		return err
	}
	return renderTree(os.Stdout, t, intp.conf.Format)
}

// wrapStatements embeds a sequence of statements into the main method of
// a class. Complete programs are returned unchanged.
func wrapStatements(line, class string) string {
	if strings.HasPrefix(line, "public class") {
		return line
	}
	return fmt.Sprintf("public class %s { public static void main(String[] args) { %s } }", class, line)
}
