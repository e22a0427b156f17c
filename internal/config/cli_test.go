package config

import (
	"flag"
	"testing"

	"github.com/oxhq/manroff/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFromFlagsAppliesExplicitOverridesOnly(t *testing.T) {
	cfg, rest, err := BuildFromFlags([]string{
		"--dialect=structured",
		"--max-line-length=512",
		"file.1",
		"file.2",
	})
	require.NoError(t, err)
	assert.Equal(t, DialectStructured, cfg.Dialect)
	assert.Equal(t, 512, cfg.MaxLineLength)
	assert.Equal(t, diag.Fatal, cfg.FatalLevel) // untouched, keeps Default
	assert.Equal(t, []string{"file.1", "file.2"}, rest)
}

func TestBuildFromFlagsRejectsBadDialect(t *testing.T) {
	_, _, err := BuildFromFlags([]string{"--dialect=weird"})
	assert.Error(t, err)
}

func TestBuildFromFlagsRejectsNonPositiveMaxLineLength(t *testing.T) {
	_, _, err := BuildFromFlags([]string{"--max-line-length=0"})
	assert.Error(t, err)
}

func TestBuildFromFlagsHelpReturnsErrHelp(t *testing.T) {
	_, _, err := BuildFromFlags([]string{"--help"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}
