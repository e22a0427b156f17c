// Command manroff parses, validates, indexes, and searches mdoc/man
// pages. Subcommand structure follows the teacher's demo/cmd cobra
// tree (one root command, flat subcommands); flag semantics and
// MANROFF_* env fallback are internal/config's, the same split
// cmd/morfx's own pflag-based main uses.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/oxhq/manroff/internal/diag"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "manroff:", err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps a command failure to the process exit code
// convention diag.Severity defines (OK=0 ... SysErr=5); errors not
// wrapping a diag severity exit as a generic failure (1).
func exitCodeFor(err error) int {
	var se *severityError
	if errors.As(err, &se) {
		return se.Severity.ExitLevel()
	}
	return 1
}

// severityError lets a subcommand report the worst diag.Severity it
// saw as the process's exit status, without every RunE needing to
// duplicate the exit-code mapping.
type severityError struct {
	Severity diag.Severity
}

func (e *severityError) Error() string {
	return fmt.Sprintf("halted at severity %s", e.Severity)
}
