package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/oxhq/manroff/internal/diag"
	"github.com/oxhq/manroff/internal/index"
	"github.com/oxhq/manroff/internal/store"
)

func newIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "index [flags] file...",
		Short:              "Build the keyword/record database over one or more documents, or a whole tree with --tree",
		DisableFlagParsing: true,
		RunE:               runIndex,
	}
}

func runIndex(cmd *cobra.Command, rawArgs []string) error {
	dir := extractFlag(&rawArgs, "dir", ".")
	historyDSN := extractFlag(&rawArgs, "history", "")
	walkRoot := extractFlag(&rawArgs, "tree", "")
	walkGlob := extractFlag(&rawArgs, "glob", "**/*.[0-9]*")

	cfg, files, err := parseArgs(rawArgs)
	if err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return &severityError{Severity: diag.BadArg}
	}

	if walkRoot != "" {
		walked, err := index.Walk(walkRoot, walkGlob)
		if err != nil {
			return err
		}
		files = append(files, walked...)
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

	w := index.NewWriter()
	var cols []*diag.Collector
	indexed := 0
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}

		if db != nil {
			needs, err := store.NeedsReindex(db, path, info.Size(), info.ModTime())
			if err != nil {
				return err
			}
			if !needs {
				fmt.Fprintf(os.Stderr, "manroff: %s: unchanged since last index, skipping\n", path)
				continue
			}
		}

		root, col, err := parseFile(cfg, path)
		if err != nil {
			return err
		}
		cols = append(cols, col)
		printDiagnostics(col.Diagnostics())

		w.Add(path, root)
		indexed++

		if db != nil {
			if err := store.RecordParseRun(db, path, info.Size(), info.ModTime(), resolvedDialect(cfg, root), col); err != nil {
				fmt.Fprintln(os.Stderr, "manroff: recording parse run:", err)
			}
		}
	}

	if indexed > 0 {
		if err := w.Flush(dir); err != nil {
			return err
		}
	}
	fmt.Fprintf(os.Stderr, "manroff: indexed %d document(s) into %s\n", indexed, dir)

	worst := worstOf(cols)
	if worst >= cfg.FatalLevel {
		return &severityError{Severity: worst}
	}
	return nil
}
