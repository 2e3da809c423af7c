package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/congo-tactic/congo/antiunify"
	"github.com/congo-tactic/congo/parser"
	"github.com/congo-tactic/congo/term"
)

var ReplCmd = &cobra.Command{
	Use:          "repl",
	Short:        "Interactive term playground",
	RunE:         runRepl,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

const (
	historyFile = ".congo_history"
	prompt      = "congo> "
	replHelp    = `commands:
  gen <a> <b>    common shape of two terms, differing positions abstracted
  eq <a> <b>     whether two terms are equal up to binder names
  print <t>      parse a term and echo its canonical rendering
  help           show this help
  quit           leave the repl
`
)

func runRepl(cmd *cobra.Command, args []string) error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(prompt)
		if err == io.EOF {
			fmt.Println()
			break
		}
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if done := dispatch(line); done {
			break
		}
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return nil
}

func dispatch(line string) (exit bool) {
	command, rest, _ := strings.Cut(line, " ")
	switch command {
	case "help":
		fmt.Print(replHelp)

	case "quit", "exit":
		return true

	case "gen":
		ts, ok := wantTerms(rest, 2, "gen <a> <b>")
		if !ok {
			return false
		}
		body := antiunify.Generalize(0, ts[0], ts[1])
		fmt.Println(body)
		fmt.Printf("λ ϕ → %s\n", body)

	case "eq":
		ts, ok := wantTerms(rest, 2, "eq <a> <b>")
		if !ok {
			return false
		}
		fmt.Println(term.Equal(ts[0], ts[1]))

	case "print":
		ts, ok := wantTerms(rest, 1, "print <t>")
		if !ok {
			return false
		}
		fmt.Println(ts[0])

	default:
		fmt.Println("unknown command, type help for help")
	}
	return false
}

func wantTerms(src string, n int, usage string) ([]term.Term, bool) {
	ts, err := parser.ParseAll(src)
	if err != nil {
		fmt.Println(err)
		return nil, false
	}
	if len(ts) != n {
		fmt.Printf("usage: %s\n", usage)
		return nil, false
	}
	return ts, true
}
