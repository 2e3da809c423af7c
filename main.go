//go:build !( js || wasm)

package main

import (
	"os"

	"github.com/congo-tactic/congo/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "congo [subcommand]",
	Short:        "congo 🝊\n congruence proof steps for dependent type theory terms",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.GeneralizeCmd)
	rootCmd.AddCommand(cmd.ProveCmd)
	rootCmd.AddCommand(cmd.ReplCmd)
}
