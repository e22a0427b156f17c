package macro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupAndNameRoundTrip(t *testing.T) {
	id, ok := Lookup(DialectMdoc, "Sh")
	require.True(t, ok)
	assert.Equal(t, Mdoc_Sh, id)
	assert.Equal(t, "Sh", Name(DialectMdoc, id))

	id, ok = Lookup(DialectMan, "TP")
	require.True(t, ok)
	assert.Equal(t, Man_TP, id)
}

func TestLookupUnknownNameFails(t *testing.T) {
	_, ok := Lookup(DialectMdoc, "Zz")
	assert.False(t, ok)
}

func TestMacroCountsMatchClosedEnumeration(t *testing.T) {
	assert.Equal(t, 106, MdocCount())
	assert.Equal(t, 34, ManCount())
}

func TestImplicitEndSectionClosesOnNextSh(t *testing.T) {
	s := NewStack(MdocTable)
	s.Push(Mdoc_Sh, "section-1")
	require.Equal(t, 1, s.Len())

	res := s.Encounter(Mdoc_Sh)
	require.Len(t, res.Closed, 1)
	assert.Equal(t, "section-1", res.Closed[0].Node)
	assert.Equal(t, NoViolation, res.Violation)
	assert.Equal(t, 0, s.Len())
}

func TestImplicitEndClosesNestedScopesTogether(t *testing.T) {
	s := NewStack(MdocTable)
	s.Push(Mdoc_Sh, "sh-1")
	s.Push(Mdoc_Ss, "ss-1")

	res := s.Encounter(Mdoc_Sh)
	require.Len(t, res.Closed, 2)
	assert.Equal(t, "ss-1", res.Closed[0].Node, "innermost scope closes first")
	assert.Equal(t, "sh-1", res.Closed[1].Node)
	assert.Equal(t, 0, s.Len())
}

func TestExplicitEndListClosesOnMatchingEl(t *testing.T) {
	s := NewStack(MdocTable)
	s.Push(Mdoc_Bl, "list-1")

	res := s.Encounter(Mdoc_El)
	require.Len(t, res.Closed, 1)
	assert.Equal(t, "list-1", res.Closed[0].Node)
	assert.Equal(t, NoViolation, res.Violation)
	assert.Equal(t, 0, s.Len())
}

func TestUnmatchedExplicitCloserIsAViolation(t *testing.T) {
	s := NewStack(MdocTable)
	res := s.Encounter(Mdoc_El)
	assert.Equal(t, ViolationUnmatchedCloser, res.Violation)
	assert.Empty(t, res.Closed)
}

func TestShallowListItemCreatesSiblingWithoutCrossingList(t *testing.T) {
	s := NewStack(MdocTable)
	s.Push(Mdoc_Bl, "list-1")

	res := s.Encounter(Mdoc_It)
	assert.Empty(t, res.Closed, "first It has nothing to close")
	s.Push(Mdoc_It, "item-1")
	require.Equal(t, 2, s.Len())

	res = s.Encounter(Mdoc_It)
	require.Len(t, res.Closed, 1)
	assert.Equal(t, "item-1", res.Closed[0].Node)
	require.Equal(t, 1, s.Len())
	top, ok := s.Top()
	require.True(t, ok)
	assert.Equal(t, Mdoc_Bl, top.ID, "enclosing Bl is never crossed by shallow It closes")
}

func TestExplicitCloserCrossingNonClosableScopeIsViolation(t *testing.T) {
	s := NewStack(MdocTable)
	s.Push(Mdoc_Bl, "list-1")
	s.Push(Mdoc_Bd, "display-1")

	res := s.Encounter(Mdoc_El)
	assert.Equal(t, ViolationCrossesScope, res.Violation)
	assert.Empty(t, res.Closed)
	assert.Equal(t, 2, s.Len(), "stack is left untouched on a violation")
}

func TestExplicitCloserAutoClosesAutoCloseableIntermediateScope(t *testing.T) {
	s := NewStack(MdocTable)
	s.Push(Mdoc_Bl, "list-1")
	s.Push(Mdoc_It, "item-1")

	res := s.Encounter(Mdoc_El)
	require.Len(t, res.Closed, 2)
	assert.Equal(t, "item-1", res.Closed[0].Node)
	assert.Equal(t, "list-1", res.Closed[1].Node)
	assert.Equal(t, 0, s.Len())
}

func TestCloseAllUnwindsRemainingScopesAtEOF(t *testing.T) {
	s := NewStack(MdocTable)
	s.Push(Mdoc_Sh, "sh-1")
	s.Push(Mdoc_Bl, "list-1")

	closed := s.CloseAll()
	require.Len(t, closed, 2)
	assert.Equal(t, "list-1", closed[0].Node)
	assert.Equal(t, "sh-1", closed[1].Node)
	assert.Equal(t, 0, s.Len())
}

func TestManSectionHeadersAreImplicitEnd(t *testing.T) {
	s := NewStack(ManTable)
	s.Push(Man_SH, "sh-1")
	res := s.Encounter(Man_SH)
	require.Len(t, res.Closed, 1)
	assert.Equal(t, 0, s.Len())
}

func TestManTaggedParagraphIsShallow(t *testing.T) {
	s := NewStack(ManTable)
	s.Push(Man_SH, "sh-1")
	s.Push(Man_TP, "tp-1")

	res := s.Encounter(Man_TP)
	require.Len(t, res.Closed, 1)
	assert.Equal(t, "tp-1", res.Closed[0].Node)
	top, ok := s.Top()
	require.True(t, ok)
	assert.Equal(t, Man_SH, top.ID)
}

func TestGetDefaultsUnlistedIDToTextFamily(t *testing.T) {
	e := MdocTable.Get(Mdoc_Text)
	assert.Equal(t, FamilyText, e.Family)
}
