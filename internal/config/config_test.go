package config

import (
	"os"
	"testing"

	"github.com/oxhq/manroff/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesSpecShape(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DialectAuto, cfg.Dialect)
	assert.Equal(t, diag.Fatal, cfg.FatalLevel)
	assert.Equal(t, 2048, cfg.MaxLineLength)
	assert.False(t, cfg.IgnoreUnknownEscapes)
	assert.False(t, cfg.IgnoreUnknownMacros)
	assert.False(t, cfg.IgnoreScopeErrors)
}

func TestParseDialectModeRecognizesAliases(t *testing.T) {
	d, err := ParseDialectMode("mdoc")
	require.NoError(t, err)
	assert.Equal(t, DialectStructured, d)

	d, err = ParseDialectMode("man")
	require.NoError(t, err)
	assert.Equal(t, DialectPresentation, d)

	_, err = ParseDialectMode("bogus")
	assert.Error(t, err)
}

func TestParseFatalLevelRecognizesThreeLevels(t *testing.T) {
	lvl, err := ParseFatalLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, diag.Warning, lvl)

	lvl, err = ParseFatalLevel("error")
	require.NoError(t, err)
	assert.Equal(t, diag.Error, lvl)

	lvl, err = ParseFatalLevel("fatal")
	require.NoError(t, err)
	assert.Equal(t, diag.Fatal, lvl)

	_, err = ParseFatalLevel("catastrophic")
	assert.Error(t, err)
}

func TestLoadFromEnvOverridesDefaults(t *testing.T) {
	t.Setenv("MANROFF_DIALECT", "structured")
	t.Setenv("MANROFF_FATAL_LEVEL", "error")
	t.Setenv("MANROFF_MAX_LINE_LENGTH", "4096")
	t.Setenv("MANROFF_IGNORE_UNKNOWN_MACROS", "true")

	cfg := LoadFromEnv()
	assert.Equal(t, DialectStructured, cfg.Dialect)
	assert.Equal(t, diag.Error, cfg.FatalLevel)
	assert.Equal(t, 4096, cfg.MaxLineLength)
	assert.True(t, cfg.IgnoreUnknownMacros)
}

func TestLoadFromEnvIgnoresUnparseableValues(t *testing.T) {
	t.Setenv("MANROFF_MAX_LINE_LENGTH", "not-a-number")
	cfg := LoadFromEnv()
	assert.Equal(t, 2048, cfg.MaxLineLength)
}

func TestEnvBoolFallsBackOnUnset(t *testing.T) {
	os.Unsetenv("MANROFF_DOES_NOT_EXIST")
	assert.True(t, envBool("MANROFF_DOES_NOT_EXIST", true))
	assert.False(t, envBool("MANROFF_DOES_NOT_EXIST", false))
}
