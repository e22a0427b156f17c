package main

import (
	"fmt"
	"os"

	"github.com/oxhq/manroff/internal/config"
	"github.com/oxhq/manroff/internal/diag"
	"github.com/oxhq/manroff/internal/macro"
	"github.com/oxhq/manroff/internal/parser"
	"github.com/oxhq/manroff/internal/tree"
)

// parseArgs runs config.BuildFromFlags over a subcommand's raw argv.
// Subcommands disable cobra's own flag parsing (DisableFlagParsing:
// true) so the already-written MANROFF_*-env-aware flag builder in
// internal/config/cli.go is the single place flag-to-config wiring
// happens, rather than duplicating it per subcommand.
func parseArgs(args []string) (config.ParserConfig, []string, error) {
	cfg, files, err := config.BuildFromFlags(args)
	if err != nil {
		return config.ParserConfig{}, nil, err
	}
	return *cfg, files, nil
}

// parseFile opens path and runs it through internal/parser with cfg.
func parseFile(cfg config.ParserConfig, path string) (*tree.Root, *diag.Collector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	p := parser.New(cfg)
	root, col := p.Parse(path, f)
	return root, col, nil
}

// printDiagnostics writes one line per diagnostic to stderr in
// file:line:col: severity: message form (diag.Diagnostic.String()).
func printDiagnostics(diags []diag.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d.String())
	}
}

// worstOf returns the highest severity reached across every
// collector, for a multi-file invocation's single exit code.
func worstOf(cols []*diag.Collector) diag.Severity {
	worst := diag.OK
	for _, c := range cols {
		if c.Worst() > worst {
			worst = c.Worst()
		}
	}
	return worst
}

// resolvedDialect names the dialect a parse actually resolved to
// (DialectAuto only records this at the first macro line), falling
// back to the configured mode string for an empty document.
func resolvedDialect(cfg config.ParserConfig, root *tree.Root) string {
	if root != nil && root.Child != nil {
		switch root.Child.Dialect {
		case macro.DialectMdoc:
			return "mdoc"
		case macro.DialectMan:
			return "man"
		}
	}
	return cfg.Dialect.String()
}

// extractFlag pulls a leading "--name=value"/"--name value" pair for
// name out of args, returning def if absent. Subcommands that need one
// or two flags config.BuildFromFlags doesn't know about (the index
// output directory, the history ledger DSN) strip them first so the
// remainder is an ordinary BuildFromFlags argv.
func extractFlag(args *[]string, name, def string) string {
	long := "--" + name
	eq := long + "="
	in := *args
	out := in[:0:0]
	val := def
	for i := 0; i < len(in); i++ {
		a := in[i]
		switch {
		case a == long && i+1 < len(in):
			val = in[i+1]
			i++
		case len(a) > len(eq) && a[:len(eq)] == eq:
			val = a[len(eq):]
		default:
			out = append(out, a)
		}
	}
	*args = out
	return val
}

// requireFiles rejects an empty file list with a BadArg-level error,
// the caller-level severity reserved for malformed invocations.
func requireFiles(files []string) error {
	if len(files) == 0 {
		return &severityError{Severity: diag.BadArg}
	}
	return nil
}
