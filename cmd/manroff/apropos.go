package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oxhq/manroff/internal/diag"
	"github.com/oxhq/manroff/internal/search"
	"github.com/oxhq/manroff/internal/store"
)

func newAproposCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "apropos [flags] expression...",
		Short:              "Search the keyword database for a free-text expression",
		DisableFlagParsing: true,
		RunE:               runApropos,
	}
}

func runApropos(cmd *cobra.Command, rawArgs []string) error {
	dir := extractFlag(&rawArgs, "dir", ".")
	arch := extractFlag(&rawArgs, "arch", "")
	section := extractFlag(&rawArgs, "sec", "")
	historyDSN := extractFlag(&rawArgs, "history", "")

	if len(rawArgs) == 0 {
		return &severityError{Severity: diag.BadArg}
	}

	q, err := search.Compile(rawArgs)
	if err != nil {
		return fmt.Errorf("manroff: %w", err)
	}
	q.Arch = arch
	q.Section = section

	n := 0
	err = search.Execute(dir, q, func(r search.Result) error {
		n++
		printResult(r)
		return nil
	})
	if err != nil {
		return err
	}

	if historyDSN != "" {
		db, err := store.Open(historyDSN, false)
		if err != nil {
			return err
		}
		if err := store.RecordQuery(db, strings.Join(rawArgs, " "), arch, section, n); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "manroff: recording query:", err)
		}
	}
	return nil
}

func printResult(r search.Result) {
	fmt.Printf("%s(%s) - %s\n", r.Record.Title, r.Record.Section, r.Record.Description)
}
