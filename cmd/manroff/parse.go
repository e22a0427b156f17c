package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/oxhq/manroff/internal/diag"
	"github.com/oxhq/manroff/internal/store"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "parse [flags] file...",
		Short:              "Parse one or more documents and report diagnostics",
		DisableFlagParsing: true,
		RunE:               runParse,
	}
}

func runParse(cmd *cobra.Command, rawArgs []string) error {
	historyDSN := extractFlag(&rawArgs, "history", "")

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

	var db *gorm.DB
	if historyDSN != "" {
		db, err = store.Open(historyDSN, false)
		if err != nil {
			return err
		}
	}

	var cols []*diag.Collector
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		root, col, err := parseFile(cfg, path)
		if err != nil {
			return err
		}
		cols = append(cols, col)
		printDiagnostics(col.Diagnostics())

		if db != nil {
			if err := store.RecordParseRun(db, path, info.Size(), info.ModTime(), resolvedDialect(cfg, root), col); err != nil {
				fmt.Fprintln(os.Stderr, "manroff: recording parse run:", err)
			}
		}
	}

	worst := worstOf(cols)
	if worst >= cfg.FatalLevel {
		return &severityError{Severity: worst}
	}
	return nil
}
