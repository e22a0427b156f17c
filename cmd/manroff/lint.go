package main

import (
	"flag"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oxhq/manroff/internal/diag"
)

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "lint [flags] file...",
		Short:              "Parse one or more documents and print a per-file diagnostic summary",
		DisableFlagParsing: true,
		RunE:               runLint,
	}
}

func runLint(cmd *cobra.Command, rawArgs []string) error {
	cfg, files, err := parseArgs(rawArgs)
	if err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return &severityError{Severity: diag.BadArg}
	}
	if err := requireFiles(files); err != nil {
		return err
	}

	var cols []*diag.Collector
	for _, path := range files {
		_, col, err := parseFile(cfg, path)
		if err != nil {
			return err
		}
		cols = append(cols, col)

		diags := col.Diagnostics()
		if len(diags) == 0 {
			fmt.Printf("%s: OK\n", path)
			continue
		}
		printDiagnostics(diags)
		fmt.Printf("%s: %d diagnostic(s), worst %s\n", path, len(diags), col.Worst())
	}

	worst := worstOf(cols)
	if worst >= cfg.FatalLevel {
		return &severityError{Severity: worst}
	}
	return nil
}
