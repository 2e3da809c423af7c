package cmd

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/congo-tactic/congo/congoerr"
	"github.com/congo-tactic/congo/elab"
	"github.com/congo-tactic/congo/internal/log"
	"github.com/congo-tactic/congo/term"
)

var ProveCmd = &cobra.Command{
	Use:          "prove --goal goal.term --proof proof.term",
	Short:        "Discharge an equality goal by congruence",
	RunE:         runProve,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

var (
	proveGoal     *string
	proveProof    *string
	proveInline   *bool
	proveEquality *string
	proveCongName *string
	proveLevel    *int
)

func init() {
	proveGoal = ProveCmd.Flags().StringP("goal", "g", "", "the equality goal to discharge")
	proveProof = ProveCmd.Flags().StringP("proof", "p", "", "proof that the differing positions are equal")
	proveInline = ProveCmd.Flags().BoolP("expr", "e", false, "treat --goal and --proof as inline terms rather than files")
	proveEquality = ProveCmd.Flags().String("equality", "_≡_", "name of the equality definition in the goal")
	proveCongName = ProveCmd.Flags().String("cong", "cong", "name of the congruence definition in the solution")
	proveLevel = ProveCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
	_ = ProveCmd.MarkFlagRequired("goal")
	_ = ProveCmd.MarkFlagRequired("proof")
}

func runProve(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*proveLevel))

	goal, err := readTerm(*proveGoal, *proveInline)
	if err != nil {
		return err
	}
	proof, err := readTerm(*proveProof, *proveInline)
	if err != nil {
		return err
	}

	eng := elab.NewNamed(term.Name(*proveEquality), term.Name(*proveCongName))
	pending := eng.ProveCong(goal, proof)
	if !pending.Done() {
		ids := eng.BlockedOn().Slice()
		slices.Sort(ids)
		names := make([]string, len(ids))
		for i, id := range ids {
			names[i] = fmt.Sprintf("_%d", id)
		}
		return fmt.Errorf("goal cannot be inspected yet, blocked on %s", strings.Join(names, " "))
	}

	solution, err := pending.Result()
	if err != nil {
		var cerr congoerr.CongoError
		if errors.As(err, &cerr) {
			return fmt.Errorf("proof failed: %s", congoerr.FormatWithCode(cerr))
		}
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), solution)
	return nil
}
