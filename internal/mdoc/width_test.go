package mdoc

import (
	"testing"

	"github.com/oxhq/manroff/internal/macro"
	"github.com/stretchr/testify/assert"
)

func TestResolveWidthNumericLiteralWithUnit(t *testing.T) {
	assert.Equal(t, 8, ResolveWidth("8n"))
	assert.Equal(t, 4, ResolveWidth("4m"))
}

func TestResolveWidthKeywords(t *testing.T) {
	assert.Equal(t, 6, ResolveWidth("indent"))
	assert.Equal(t, 12, ResolveWidth("indent-two"))
}

func TestResolveWidthByMacroName(t *testing.T) {
	assert.Equal(t, 10, ResolveWidth("Fl"))
}

func TestAutoWidthFromFlMacroIsTen(t *testing.T) {
	w, warn := AutoWidth(false, "", macro.Mdoc_Fl, true)
	assert.Equal(t, 10, w)
	assert.False(t, warn)
}

func TestAutoWidthFromTextUsesLengthPlusOne(t *testing.T) {
	w, warn := AutoWidth(true, "hello", 0, false)
	assert.Equal(t, 6, w)
	assert.False(t, warn)
}

func TestAutoWidthUnknownWarnsAndDefaultsToTen(t *testing.T) {
	w, warn := AutoWidth(false, "", 0, false)
	assert.Equal(t, 10, w)
	assert.True(t, warn)
}
