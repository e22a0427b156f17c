// Package config defines the parser configuration structure (§6) and the
// two ways of producing it: environment variables (config.go, MANROFF_*)
// and CLI flags (cli.go, spf13/pflag), mirroring the teacher's own split
// between internal/config/config.go and internal/config/cli.go.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/oxhq/manroff/internal/diag"
)

// DialectMode selects which macro vocabulary a parse uses, before the
// macro.Dialect a running parse actually resolves to (DialectAuto defers
// that resolution to the first macro line's own spelling).
type DialectMode int

const (
	DialectAuto DialectMode = iota
	DialectStructured
	DialectPresentation
)

func (d DialectMode) String() string {
	switch d {
	case DialectStructured:
		return "structured"
	case DialectPresentation:
		return "presentation"
	default:
		return "auto"
	}
}

// ParseDialectMode parses the three recognized spellings, case-insensitively.
func ParseDialectMode(s string) (DialectMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return DialectAuto, nil
	case "structured", "mdoc":
		return DialectStructured, nil
	case "presentation", "man":
		return DialectPresentation, nil
	default:
		return DialectAuto, fmt.Errorf("config: unrecognized dialect %q", s)
	}
}

// ParseFatalLevel parses the three configurable halt thresholds. BadArg and
// SysErr are caller-level severities and are never a configurable threshold.
func ParseFatalLevel(s string) (diag.Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "warn", "warning":
		return diag.Warning, nil
	case "error":
		return diag.Error, nil
	case "fatal":
		return diag.Fatal, nil
	default:
		return diag.Fatal, fmt.Errorf("config: unrecognized fatal-level %q", s)
	}
}

// ParserConfig is the exact configuration structure spec.md §6 names.
type ParserConfig struct {
	Dialect              DialectMode
	FatalLevel           diag.Severity
	MaxLineLength        int
	IgnoreUnknownEscapes bool
	IgnoreUnknownMacros  bool
	IgnoreScopeErrors    bool
}

// Default returns the configuration a parse uses absent any env or flag
// overrides: auto dialect, halt no earlier than Fatal, mandoc's historical
// 2048-byte line cap, and no leniency flags set.
func Default() ParserConfig {
	return ParserConfig{
		Dialect:       DialectAuto,
		FatalLevel:    diag.Fatal,
		MaxLineLength: 2048,
	}
}

// LoadFromEnv builds a ParserConfig from MANROFF_* environment variables,
// falling back to Default for anything unset or unparseable — the same
// permissive fallback style as the teacher's LoadConfig.
func LoadFromEnv() ParserConfig {
	cfg := Default()

	if v := os.Getenv("MANROFF_DIALECT"); v != "" {
		if d, err := ParseDialectMode(v); err == nil {
			cfg.Dialect = d
		}
	}

	if v := os.Getenv("MANROFF_FATAL_LEVEL"); v != "" {
		if lvl, err := ParseFatalLevel(v); err == nil {
			cfg.FatalLevel = lvl
		}
	}

	if v := os.Getenv("MANROFF_MAX_LINE_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxLineLength = n
		}
	}

	cfg.IgnoreUnknownEscapes = envBool("MANROFF_IGNORE_UNKNOWN_ESCAPES", cfg.IgnoreUnknownEscapes)
	cfg.IgnoreUnknownMacros = envBool("MANROFF_IGNORE_UNKNOWN_MACROS", cfg.IgnoreUnknownMacros)
	cfg.IgnoreScopeErrors = envBool("MANROFF_IGNORE_SCOPE_ERRORS", cfg.IgnoreScopeErrors)

	return cfg
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
