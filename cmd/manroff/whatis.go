package main

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/oxhq/manroff/internal/diag"
	"github.com/oxhq/manroff/internal/search"
)

func newWhatisCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "whatis [flags] name...",
		Short:              "Look up the exact name of one or more utilities/functions",
		DisableFlagParsing: true,
		RunE:               runWhatis,
	}
}

func runWhatis(cmd *cobra.Command, rawArgs []string) error {
	dir := extractFlag(&rawArgs, "dir", ".")
	section := extractFlag(&rawArgs, "sec", "")

	if len(rawArgs) == 0 {
		return &severityError{Severity: diag.BadArg}
	}

	terms := make([]string, 0, len(rawArgs))
	for _, name := range rawArgs {
		terms = append(terms, "Name~^"+regexp.QuoteMeta(name)+"$")
		terms = append(terms, "or")
	}
	terms = terms[:len(terms)-1] // drop trailing "or"

	q, err := search.Compile(terms)
	if err != nil {
		return fmt.Errorf("manroff: %w", err)
	}
	q.Section = section

	found := false
	err = search.Execute(dir, q, func(r search.Result) error {
		found = true
		printResult(r)
		return nil
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("manroff: nothing appropriate")
	}
	return nil
}
