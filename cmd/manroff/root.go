package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the manroff command tree: a bare root plus one
// subcommand per operation, the same flat tree shape as the teacher's
// demo cobra command (root + AddCommand(run, list, ...)).
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "manroff",
		Short:         "Parse, validate, index, and search mdoc/man pages",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newParseCmd(),
		newLintCmd(),
		newTreeCmd(),
		newIndexCmd(),
		newAproposCmd(),
		newWhatisCmd(),
	)
	return root
}
