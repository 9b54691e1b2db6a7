package main

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the settings of the command line tool. Flags override
// values read from a configuration file.
//
//     trace  = "Info"
//     format = "sexpr"
//     prompt = "jsub> "
//     class  = "Main"
//
type Config struct {
	Trace  string `toml:"trace"`  // trace level
	Format string `toml:"format"` // output format for derivation trees
	Prompt string `toml:"prompt"` // REPL prompt
	Class  string `toml:"class"`  // class name used to wrap REPL statements
}

var formats = map[string]bool{"tree": true, "sexpr": true, "fingerprint": true}

func defaultConfig() *Config {
	return &Config{
		Trace:  "Error",
		Format: "tree",
		Prompt: "jsub> ",
		Class:  "Main",
	}
}

// loadConfig reads a TOML configuration file. Settings missing from the
// file keep their default values.
func loadConfig(path string) (*Config, error) {
	conf := defaultConfig()
	md, err := toml.DecodeFile(path, conf)
	if err != nil {
		return nil, fmt.Errorf("cannot read configuration %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		tracer().Infof("configuration %s: ignoring keys %v", path, undecoded)
	}
	if !formats[conf.Format] {
		return nil, fmt.Errorf("configuration %s: unknown format %q", path, conf.Format)
	}
	return conf, nil
}

// readSource reads a program from a file, or from stdin for "-".
func readSource(arg string) (string, error) {
	var data []byte
	var err error
	if arg == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(arg)
	}
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(data), nil
}
