package main

import (
	"flag"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxhq/manroff/internal/diag"
	"github.com/oxhq/manroff/internal/render"
)

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "tree [flags] file...",
		Short:              "Parse a document and print its indented node tree",
		DisableFlagParsing: true,
		RunE:               runTree,
	}
}

func runTree(cmd *cobra.Command, rawArgs []string) error {
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
		root, col, err := parseFile(cfg, path)
		if err != nil {
			return err
		}
		cols = append(cols, col)
		printDiagnostics(col.Diagnostics())
		if err := render.Tree(os.Stdout, root); err != nil {
			return err
		}
	}

	worst := worstOf(cols)
	if worst >= cfg.FatalLevel {
		return &severityError{Severity: worst}
	}
	return nil
}
