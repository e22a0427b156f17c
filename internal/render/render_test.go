package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/manroff/internal/config"
	"github.com/oxhq/manroff/internal/parser"
	"github.com/oxhq/manroff/internal/tree"
)

const sampleDoc = ".Dd January 1, 2024\n.Dt FOO 1\n.Os\n" +
	".Sh NAME\n.Nm foo\n.Nd does a thing\n" +
	".Sh DESCRIPTION\n" +
	"The foo utility does a thing.\n" +
	".Pp\n" +
	"A second paragraph.\n"

func mustParseDoc(t *testing.T, doc string) *tree.Root {
	t.Helper()
	p := parser.New(config.Default())
	root, col := p.Parse("foo.1", strings.NewReader(doc))
	require.NotNil(t, root)
	require.Empty(t, col.Diagnostics(), "%v", col.Diagnostics())
	return root
}

func TestTextRendersUppercaseSectionHeadings(t *testing.T) {
	root := mustParseDoc(t, sampleDoc)
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, root))
	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "DESCRIPTION")
	assert.Contains(t, out, "foo utility does a thing")
}

func TestTextSeparatesParagraphsWithBlankLine(t *testing.T) {
	root := mustParseDoc(t, sampleDoc)
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, root))
	assert.Contains(t, buf.String(), "thing.\n\nA second paragraph")
}

func TestTreeDumpsIndentedNodeNames(t *testing.T) {
	root := mustParseDoc(t, sampleDoc)
	var buf bytes.Buffer
	require.NoError(t, Tree(&buf, root))
	out := buf.String()
	assert.Contains(t, out, "Sh (block)")
	assert.Contains(t, out, "Nm (elem)")
	assert.Contains(t, out, "text (\"foo\")")
}

func TestDiffReportsChangedDescription(t *testing.T) {
	a := mustParseDoc(t, sampleDoc)
	b := mustParseDoc(t, strings.Replace(sampleDoc, "does a thing", "does another thing", 1))

	out, err := Diff("foo.1", a, b, RenderText)
	require.NoError(t, err)
	assert.Contains(t, out, "--- foo.1")
	assert.Contains(t, out, "+++ foo.1 (new)")
	assert.Contains(t, out, "-foo does a thing")
	assert.Contains(t, out, "+foo does another thing")
}

func TestDiffOfIdenticalDocumentsIsEmpty(t *testing.T) {
	a := mustParseDoc(t, sampleDoc)
	b := mustParseDoc(t, sampleDoc)

	out, err := Diff("foo.1", a, b, RenderText)
	require.NoError(t, err)
	assert.Empty(t, out)
}
