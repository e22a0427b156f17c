package lex

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, src string) []Line {
	t.Helper()
	lx := New(strings.NewReader(src), 0)
	var lines []Line
	for {
		l, err := lx.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		lines = append(lines, l)
	}
	return lines
}

func TestSimpleLines(t *testing.T) {
	lines := readAll(t, ".Dd Jan 1, 2020\n.Dt TEST 1\n.Os\n")
	require.Len(t, lines, 3)
	assert.Equal(t, ".Dd Jan 1, 2020", string(lines[0].Text))
	assert.Equal(t, 1, lines[0].Number)
	assert.Equal(t, ".Dt TEST 1", string(lines[1].Text))
	assert.Equal(t, 2, lines[1].Number)
}

func TestContinuationJoinsLines(t *testing.T) {
	lines := readAll(t, "one \\\ntwo\nthree\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "one two", string(lines[0].Text))
	assert.Equal(t, 1, lines[0].Number)
	assert.Equal(t, "three", string(lines[1].Text))
	assert.Equal(t, 3, lines[1].Number)
}

func TestEvenBackslashesDoNotContinue(t *testing.T) {
	lines := readAll(t, "a\\\\\nb\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "a\\\\", string(lines[0].Text))
	assert.Equal(t, "b", string(lines[1].Text))
}

func TestNoTrailingNewlineAtEOF(t *testing.T) {
	lines := readAll(t, ".Nm test")
	require.Len(t, lines, 1)
	assert.Equal(t, ".Nm test", string(lines[0].Text))
}

func TestEmptyInputYieldsNoLines(t *testing.T) {
	lines := readAll(t, "")
	assert.Empty(t, lines)
}

func TestLineTooLongIsFatal(t *testing.T) {
	lx := New(strings.NewReader(strings.Repeat("x", 100)+"\n"), 10)
	_, err := lx.Next()
	require.Error(t, err)
	var tooLong *ErrTooLong
	assert.True(t, errors.As(err, &tooLong))
}

func TestMultipleContinuationsAccumulateLineNumber(t *testing.T) {
	lines := readAll(t, "a\\\nb\\\nc\nd\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "abc", string(lines[0].Text))
	assert.Equal(t, 1, lines[0].Number)
	assert.Equal(t, "d", string(lines[1].Text))
	assert.Equal(t, 4, lines[1].Number)
}
