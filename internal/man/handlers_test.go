package man

import (
	"testing"

	"github.com/oxhq/manroff/internal/macro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLayoutForSH(t *testing.T) {
	h := NewHandlers()
	entry := macro.ManTable.Get(macro.Man_SH)
	n := h.Build(entry, Invocation{ID: macro.Man_SH, Words: []string{"NAME"}, Line: 1})
	require.NotNil(t, n)
	assert.Equal(t, macro.Man_SH, n.ID)
	require.NotNil(t, n.Args)
}

func TestBuildAlternatingJoinsWordsInOrder(t *testing.T) {
	h := NewHandlers()
	entry := macro.ManTable.Get(macro.Man_BI)
	n := h.Build(entry, Invocation{ID: macro.Man_BI, Words: []string{"bold", "italic"}, Line: 1})
	require.NotNil(t, n.Child)
	assert.Equal(t, "bold italic", n.Child.Text)
}

func TestBuildInlineForPlainFontMacro(t *testing.T) {
	h := NewHandlers()
	entry := macro.ManTable.Get(macro.Man_B)
	n := h.Build(entry, Invocation{ID: macro.Man_B, Words: []string{"bold"}, Line: 1})
	require.NotNil(t, n.Child)
	assert.Equal(t, "bold", n.Child.Text)
}

func TestPrologueTHReturnsNilNode(t *testing.T) {
	h := NewHandlers()
	entry := macro.ManTable.Get(macro.Man_TH)
	n := h.Build(entry, Invocation{ID: macro.Man_TH, Words: []string{"TEST", "1"}})
	assert.Nil(t, n)
}
