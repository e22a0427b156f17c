package index

import (
	"strings"
	"testing"

	"github.com/oxhq/manroff/internal/config"
	"github.com/oxhq/manroff/internal/diag"
	"github.com/oxhq/manroff/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMdocNameAndDescription(t *testing.T) {
	doc := ".Dd January 1, 2024\n" +
		".Dt FOO 1\n" +
		".Os\n" +
		".Sh NAME\n" +
		".Nm foo\n" +
		".Nd does a thing\n" +
		".Sh DESCRIPTION\n" +
		"See\n" +
		".Xr bar 1\n" +
		"for more.\n"
	p := parser.New(config.Default())
	root, col := p.Parse("foo.1", strings.NewReader(doc))
	require.NotNil(t, root)
	for _, d := range col.Diagnostics() {
		assert.NotEqual(t, diag.Fatal, d.Severity, d.String())
	}

	rec, keywords := Extract("foo.1", root)
	assert.Equal(t, "foo.1", rec.Filename)
	assert.Equal(t, "FOO", rec.Title)
	assert.Equal(t, "1", rec.Section)
	assert.Equal(t, "does a thing", rec.Description)

	byText := map[string]Class{}
	for _, kw := range keywords {
		byText[kw.Text] |= kw.Class
	}

	assert.NotZero(t, byText["foo"]&(ClassName|ClassUtility))
	assert.NotZero(t, byText["does a thing"]&ClassDesc)
	assert.NotZero(t, byText["bar(1)"]&ClassXref)
	assert.NotZero(t, byText["NAME"]&ClassSection)
	assert.NotZero(t, byText["DESCRIPTION"]&ClassSection)
}

func TestExtractFallsBackToUnknownArchitecture(t *testing.T) {
	doc := ".Dd January 1, 2024\n.Dt FOO 1\n.Os\n.Sh NAME\n.Nm foo\n.Nd a thing\n"
	p := parser.New(config.Default())
	root, _ := p.Parse("foo.1", strings.NewReader(doc))
	require.NotNil(t, root)

	rec, keywords := Extract("foo.1", root)
	assert.Equal(t, "unknown", rec.Architecture)

	var sawMarker bool
	for _, kw := range keywords {
		if kw.Text == "unknown" && kw.Class&ClassArchitectureMarker != 0 {
			sawMarker = true
		}
	}
	assert.True(t, sawMarker)
}

func TestExtractFunctionNameOmitsParameterWords(t *testing.T) {
	doc := ".Dd January 1, 2024\n.Dt FOO 3\n.Os\n.Sh NAME\n.Nm foo\n.Nd a thing\n" +
		".Sh SYNOPSIS\n.Fn foo_open \"const char *path\" \"int flags\"\n"
	p := parser.New(config.Default())
	root, _ := p.Parse("foo.3", strings.NewReader(doc))
	require.NotNil(t, root)

	_, keywords := Extract("foo.3", root)
	var sawFn bool
	for _, kw := range keywords {
		if kw.Class&ClassFunction != 0 {
			assert.Equal(t, "foo_open", kw.Text)
			sawFn = true
		}
	}
	assert.True(t, sawFn)
}
