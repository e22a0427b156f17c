package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassStringJoinsNames(t *testing.T) {
	assert.Equal(t, "Name|Utility", (ClassName | ClassUtility).String())
	assert.Equal(t, "", Class(0).String())
}

func TestClassByNameResolvesCanonicalSpellings(t *testing.T) {
	c, ok := ClassByName("Xref")
	assert.True(t, ok)
	assert.Equal(t, ClassXref, c)

	_, ok = ClassByName("NotAClass")
	assert.False(t, ok)
}

func TestDefaultSearchMaskIsNameAndDesc(t *testing.T) {
	assert.Equal(t, ClassName|ClassDesc, Class(DefaultSearchMask))
}
