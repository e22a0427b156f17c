package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectWords(t *testing.T, line string, mode Mode) []Token {
	t.Helper()
	tz := New([]byte(line), 0, mode)
	var out []Token
	for {
		tok := tz.Next()
		if tok.Flavor == EndOfLine {
			return out
		}
		out = append(out, tok)
	}
}

func TestNoneModeSplitsOnSpaces(t *testing.T) {
	toks := collectWords(t, "Fl flag explanation", None)
	require.Len(t, toks, 3)
	assert.Equal(t, "Fl", toks[0].Text)
	assert.Equal(t, "flag", toks[1].Text)
	assert.Equal(t, "explanation", toks[2].Text)
}

func TestQuotedWordCollapsesDoubledQuote(t *testing.T) {
	toks := collectWords(t, `"a ""quoted"" word"`, None)
	require.Len(t, toks, 1)
	assert.Equal(t, QuotedWord, toks[0].Flavor)
	assert.Equal(t, `a "quoted" word`, toks[0].Text)
}

func TestUnterminatedQuoteWarnsAndClosesAtEOL(t *testing.T) {
	toks := collectWords(t, `"unterminated`, None)
	require.Len(t, toks, 1)
	assert.Equal(t, "unterminated", toks[0].Text)
	assert.NotEmpty(t, toks[0].Warning)
}

func TestEscapedSpaceDoesNotSplitWord(t *testing.T) {
	toks := collectWords(t, `foo\ bar baz`, None)
	require.Len(t, toks, 2)
	assert.Equal(t, "foo bar", toks[0].Text)
	assert.Equal(t, "baz", toks[1].Text)
}

func TestDelimModeReportsTrailingPunctuation(t *testing.T) {
	toks := collectWords(t, `Fl flag . ,`, Delim)
	require.Len(t, toks, 3)
	assert.Equal(t, Punct, toks[2].Flavor)
	assert.Equal(t, ". ,", toks[2].Text)
}

func TestTabSepSplitsOnTab(t *testing.T) {
	toks := collectWords(t, "cell one\tcell two", TabSep)
	require.Len(t, toks, 2)
	assert.Equal(t, "cell one", toks[0].Text)
	assert.Equal(t, Phrase, toks[0].Flavor)
	assert.Equal(t, PhraseEnd, toks[1].Flavor)
	assert.Equal(t, "cell two", toks[1].Text)
}

func TestTabSepSplitsOnTaToken(t *testing.T) {
	toks := collectWords(t, "cell one Ta cell two", TabSep)
	require.Len(t, toks, 2)
	assert.Equal(t, "cell one", toks[0].Text)
	assert.Equal(t, "cell two", toks[1].Text)
}

func TestTabSepWarnsOnTrailingWhitespace(t *testing.T) {
	toks := collectWords(t, "cell \tnext", TabSep)
	require.Len(t, toks, 2)
	assert.NotEmpty(t, toks[0].Warning)
}

func TestParseFlagsRecognizesShapes(t *testing.T) {
	vocab := FlagVocabulary{
		"split":  {Name: "split", Shape: FlagNone},
		"width":  {Name: "width", Shape: FlagSingle},
		"offset": {Name: "offset", Shape: FlagOptionalSingle},
		"column": {Name: "column", Shape: FlagMulti},
	}
	tz := New([]byte("-split -width 10n -column a b c rest"), 0, None)
	flags, words, warnings := ParseFlags(tz, vocab)
	require.Len(t, flags, 3)
	assert.Empty(t, warnings)
	assert.Equal(t, "split", flags[0].Name)
	assert.Equal(t, "width", flags[1].Name)
	assert.Equal(t, []string{"10n"}, flags[1].Values)
	assert.Equal(t, "column", flags[2].Name)
	assert.Equal(t, []string{"a", "b", "c", "rest"}, flags[2].Values)
	assert.Empty(t, words)
}

func TestParseFlagsWarnsOnUnknownFlag(t *testing.T) {
	vocab := FlagVocabulary{"split": {Name: "split", Shape: FlagNone}}
	tz := New([]byte("-bogus rest"), 0, None)
	flags, words, warnings := ParseFlags(tz, vocab)
	assert.Empty(t, flags)
	require.Len(t, warnings, 1)
	require.Len(t, words, 1)
	assert.Equal(t, "-bogus", words[0].Text)
}

func TestParseFlagsStopsAtFirstNonFlagWord(t *testing.T) {
	vocab := FlagVocabulary{"split": {Name: "split", Shape: FlagNone}}
	tz := New([]byte("-split plain text"), 0, None)
	flags, _, _ := ParseFlags(tz, vocab)
	require.Len(t, flags, 1)
	rest := tz.Next()
	assert.Equal(t, "plain", rest.Text)
}
