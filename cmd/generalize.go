package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/congo-tactic/congo/antiunify"
	"github.com/congo-tactic/congo/internal/log"
	"github.com/congo-tactic/congo/parser"
	"github.com/congo-tactic/congo/term"
)

var GeneralizeCmd = &cobra.Command{
	Use:          "generalize a.term b.term",
	Short:        "Compute the common shape of two terms, differing positions abstracted",
	RunE:         runGeneralize,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
}

var (
	generalizeInline *bool
	generalizeLevel  *int
)

func init() {
	generalizeInline = GeneralizeCmd.Flags().BoolP("expr", "e", false, "treat arguments as inline terms rather than files")
	generalizeLevel = GeneralizeCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runGeneralize(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*generalizeLevel))

	lhs, err := readTerm(args[0], *generalizeInline)
	if err != nil {
		return err
	}
	rhs, err := readTerm(args[1], *generalizeInline)
	if err != nil {
		return err
	}

	body := antiunify.Generalize(0, lhs, rhs)
	fmt.Fprintln(cmd.OutOrStdout(), body)
	fmt.Fprintf(cmd.OutOrStdout(), "λ ϕ → %s\n", body)
	return nil
}

// readTerm reads a term from a file path, or parses arg directly when
// inline is set.
func readTerm(arg string, inline bool) (term.Term, error) {
	src := arg
	if !inline {
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read term file %s", arg)
		}
		src = string(data)
	}
	return parser.Parse(src)
}
