// Released under an MIT license. See LICENSE.

// Package options parses mal's command line and configuration file.
package options

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// Version is reported by mal -v.
const Version = "mal 0.3.0"

// Settings holds the values that can be set in a configuration file.
type Settings struct {
	History   string `yaml:"history"`   // Path to the history file. Empty disables history.
	Multiline bool   `yaml:"multiline"` // Let long lines wrap while editing.
	Prompt    string `yaml:"prompt"`    // Interactive prompt.
}

//nolint:gochecknoglobals
var (
	expression  string
	interactive bool
	script      string
	settings    = Defaults()
	usage       = `mal

Usage:
  mal [-i] [-c FILE] [SCRIPT]
  mal [-c FILE] -e EXPR
  mal -h
  mal -v

Arguments:
  SCRIPT  Path to a mal script. Every form in the script is evaluated.

Options:
  -c, --config=FILE  Read settings from the YAML file FILE.
  -e, --eval=EXPR    Evaluate EXPR, print each result, and exit.
  -i, --interactive  Invert interactive mode.
  -h, --help         Display this help.
  -v, --version      Print mal version.

If mal's stdin is a TTY, and mal was invoked without a SCRIPT, interactive
features (line editing, history) are enabled. Otherwise, lines are read
from stdin and evaluated without a prompt.

Settings are read from FILE or, if it exists, from $HOME/.mal.yaml:

  prompt: "user> "
  history: ~/.mal_history
  multiline: false
`
)

// Defaults returns the settings used when no configuration file says otherwise.
func Defaults() *Settings {
	history := ""
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, ".mal_history")
	}

	return &Settings{
		History: history,
		Prompt:  "user> ",
	}
}

// Expression returns the text passed with -e, if any.
func Expression() string {
	return expression
}

// Interactive returns true if mal should run its line-editing REPL.
func Interactive() bool {
	return interactive
}

// Load reads settings from the YAML file at path. Unset fields keep their
// default values. A leading "~/" in the history path is expanded.
func Load(path string) (*Settings, error) {
	s := Defaults()

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(b, s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if len(s.History) > 1 && s.History[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		s.History = filepath.Join(home, s.History[2:])
	}

	return s, nil
}

// Parse parses the command line. Help and version requests exit.
func Parse() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	err = apply(opts, isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Script returns the path to the script to run, if any.
func Script() string {
	return script
}

// Current returns the settings in effect.
func Current() *Settings {
	return settings
}

func apply(opts docopt.Opts, terminal bool) error {
	expression, _ = opts.String("--eval")
	script, _ = opts.String("SCRIPT")

	interactive = terminal && script == "" && expression == ""

	invert, _ := opts.Bool("--interactive")
	interactive = interactive != invert

	path, _ := opts.String("--config")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}

		path = filepath.Join(home, ".mal.yaml")

		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil
		}
	}

	s, err := Load(path)
	if err != nil {
		return err
	}

	settings = s

	return nil
}
