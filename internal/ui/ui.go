// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the mal language.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/interface/literal"
	"github.com/michaelmacinnis/mal/internal/reader"
	"github.com/michaelmacinnis/mal/internal/system/history"
	"github.com/michaelmacinnis/mal/internal/system/options"
	"github.com/peterh/liner"
)

// Evaluator is the interface for things that want to process parsed forms.
type Evaluator interface {
	Each(r *reader.T, f func(cell.I, error) bool)
	Names() []string
}

// Batch evaluates each line read from in, writing results to out.
// Errors in mal code are reported and do not stop evaluation.
func Batch(e Evaluator, in io.Reader, out io.Writer) error {
	r := reader.New("stdin")
	p := Printer(out)

	b := bufio.NewReader(in)

	for {
		line, err := b.ReadString('\n')
		if line != "" {
			r.Scan(strings.TrimSuffix(line, "\n") + "\n")
			e.Each(r, p)
		}

		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
	}
}

// Printer returns a function that writes the printed form of each
// result, or the error, to out. It never asks to stop.
func Printer(out io.Writer) func(cell.I, error) bool {
	return func(c cell.I, err error) bool {
		if err != nil {
			fmt.Fprintln(out, "[ERROR] "+err.Error())
		} else {
			fmt.Fprintln(out, literal.String(c))
		}

		return true
	}
}

// Run launches the UI which sends forms to the Evaluator.
func Run(e Evaluator, s *options.Settings) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetMultiLineMode(s.Multiline)
	cli.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return complete(e.Names(), line, pos)
	})

	return session(e, s, cli, os.Stdout)
}

// prompter is the part of *liner.State used by a session.
type prompter interface {
	AppendHistory(item string)
	Prompt(p string) (string, error)
	ReadHistory(r io.Reader) (int, error)
	WriteHistory(w io.Writer) (int, error)
}

// session prompts for lines until end of input or a prompt failure.
// History is saved however the session ends.
func session(e Evaluator, s *options.Settings, cli prompter, out io.Writer) (err error) {
	if lerr := history.Load(s.History, cli.ReadHistory); lerr != nil {
		fmt.Fprintln(os.Stderr, "history:", lerr)
	}

	defer func() {
		serr := history.Save(s.History, cli.WriteHistory)
		if err == nil {
			err = serr
		} else if serr != nil {
			fmt.Fprintln(os.Stderr, "history:", serr)
		}
	}()

	r := reader.New("user")
	p := Printer(out)

	for {
		line, perr := cli.Prompt(s.Prompt)
		if errors.Is(perr, liner.ErrPromptAborted) {
			continue
		} else if errors.Is(perr, io.EOF) {
			fmt.Fprintln(out)

			return nil
		} else if perr != nil {
			return perr
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		cli.AppendHistory(line)

		r.Scan(line + "\n")
		e.Each(r, p)
	}
}

// complete returns the completions from names for the word ending at pos.
// Like liner, pos counts runes, not bytes.
func complete(names []string, line string, pos int) (head string, cs []string, tail string) {
	runes := []rune(line)

	head = string(runes[:pos])
	tail = string(runes[pos:])

	start := strings.LastIndexAny(head, " \t\n,()[]{}'`~^@\";") + 1

	word := head[start:]
	if word == "" {
		return head, nil, tail
	}

	for _, n := range names {
		if strings.HasPrefix(n, word) {
			cs = append(cs, n)
		}
	}

	return head[:start], cs, tail
}
