package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// BuildFromFlags parses command-line flags over a base configuration
// already loaded from the environment (LoadFromEnv), so a flag only
// overrides its MANROFF_* counterpart when the caller actually passed it.
// Remaining non-flag arguments (document paths) are returned separately.
func BuildFromFlags(args []string) (*ParserConfig, []string, error) {
	fs := pflag.NewFlagSet("manroff", pflag.ContinueOnError)
	fs.Usage = func() {
		PrintUsage(fs)
	}

	base := LoadFromEnv()

	fs.BoolP("help", "h", false, "Show this help message and exit.")
	dialect := fs.String(
		"dialect",
		base.Dialect.String(),
		"Macro dialect: auto, structured, presentation.",
	)
	fatalLevel := fs.String(
		"fatal-level",
		"", // unused unless passed: the fs.Changed check below keeps the env/default value otherwise
		"Severity that halts parsing: warn, error, fatal.",
	)
	maxLineLength := fs.Int(
		"max-line-length",
		base.MaxLineLength,
		"Maximum accepted source line length in bytes.",
	)
	ignoreUnknownEscapes := fs.Bool(
		"ignore-unknown-escapes",
		base.IgnoreUnknownEscapes,
		"Treat unrecognized escape sequences as literal text instead of reporting an error.",
	)
	ignoreUnknownMacros := fs.Bool(
		"ignore-unknown-macros",
		base.IgnoreUnknownMacros,
		"Discard unknown macro lines without raising CodeUnknownMacro.",
	)
	ignoreScopeErrors := fs.Bool(
		"ignore-scope-errors",
		base.IgnoreScopeErrors,
		"Downgrade scope-crossing violations from errors to warnings.",
	)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg := base
	if fs.Changed("dialect") {
		d, err := ParseDialectMode(*dialect)
		if err != nil {
			return nil, nil, err
		}
		cfg.Dialect = d
	}
	if fs.Changed("fatal-level") {
		lvl, err := ParseFatalLevel(*fatalLevel)
		if err != nil {
			return nil, nil, err
		}
		cfg.FatalLevel = lvl
	}
	if fs.Changed("max-line-length") {
		cfg.MaxLineLength = *maxLineLength
	}
	if fs.Changed("ignore-unknown-escapes") {
		cfg.IgnoreUnknownEscapes = *ignoreUnknownEscapes
	}
	if fs.Changed("ignore-unknown-macros") {
		cfg.IgnoreUnknownMacros = *ignoreUnknownMacros
	}
	if fs.Changed("ignore-scope-errors") {
		cfg.IgnoreScopeErrors = *ignoreScopeErrors
	}

	return validateFlags(fs, &cfg)
}

func validateFlags(fs *pflag.FlagSet, cfg *ParserConfig) (*ParserConfig, []string, error) {
	if fs.Changed("help") {
		fs.Usage()
		return nil, nil, flag.ErrHelp
	}
	if cfg.MaxLineLength <= 0 {
		return nil, nil, fmt.Errorf("config: max-line-length must be positive, got %d", cfg.MaxLineLength)
	}
	return cfg, fs.Args(), nil
}

// PrintUsage writes fs's flag defaults to stderr, the way cmd/manroff wires
// pflag.FlagSet.Usage.
func PrintUsage(fs *pflag.FlagSet) {
	fmt.Fprintln(os.Stderr, "Usage: manroff [flags] [file...]")
	fs.PrintDefaults()
}
