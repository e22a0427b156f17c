package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorTracksWorstSeverity(t *testing.T) {
	c := NewCollector("test.1", Fatal)

	halt := Report(c, Warning, 1, 1, CodeSecOrder, "section %q out of order", "DESCRIPTION")
	assert.False(t, halt)
	assert.Equal(t, Warning, c.Worst())

	halt = Report(c, Error, 2, 3, CodeUnknownMacro, "unknown macro %q", "Zz")
	assert.False(t, halt)
	assert.Equal(t, Error, c.Worst())

	halt = Report(c, Fatal, 9, 1, CodeUnclosedExplicitScope, "unclosed explicit scope at EOF")
	assert.True(t, halt)
	assert.Equal(t, Fatal, c.Worst())

	require.Len(t, c.Diagnostics(), 3)
	assert.Equal(t, "test.1", c.Diagnostics()[0].File)
}

func TestSeverityExitLevel(t *testing.T) {
	assert.Equal(t, 0, OK.ExitLevel())
	assert.Equal(t, 5, SysErr.ExitLevel())
	assert.True(t, Fatal > Error)
	assert.True(t, Error > Warning)
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Severity: Warning, Line: 4, Column: 2, Message: "bad date syntax", File: "a.1"}
	assert.Contains(t, d.String(), "a.1:4:2")
	assert.Contains(t, d.String(), "WARNING")
}
