package tree

import (
	"testing"

	"github.com/oxhq/manroff/internal/macro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendChildThenSiblingBuildsChain(t *testing.T) {
	b := NewBuilder()
	first := NewText("first", 1, 1)
	b.AppendChild(first)
	second := NewText("second", 2, 1)
	b.AppendSibling(second)

	require.NotNil(t, b.Root().Child)
	assert.Equal(t, first, b.Root().Child)
	assert.Equal(t, second, first.Next)
	assert.Equal(t, first, second.Prev)
	assert.Nil(t, first.Parent)
}

func TestAppendChildNestsUnderCursor(t *testing.T) {
	b := NewBuilder()
	block := NewBlock(macro.DialectMdoc, macro.Mdoc_Sh, 1, 1)
	b.AppendChild(block)

	cursor, rel := b.Save()
	b.Restore(block, RelChild)
	inner := NewText("NAME", 1, 4)
	b.AppendChild(inner)
	b.Restore(cursor, rel)

	require.NotNil(t, block.Child)
	assert.Equal(t, inner, block.Child)
	assert.Equal(t, block, inner.Parent)
}

func TestPromoteToHeadBodyTailSetsKindAndParent(t *testing.T) {
	b := NewBuilder()
	block := NewBlock(macro.DialectMdoc, macro.Mdoc_Bl, 1, 1)
	head := NewText("", 1, 1)
	body := NewText("", 2, 1)
	tail := NewText("", 3, 1)

	b.PromoteToHead(block, head)
	b.PromoteToBody(block, body)
	b.PromoteToTail(block, tail)

	assert.Equal(t, KindHead, head.Kind)
	assert.Equal(t, KindBody, body.Kind)
	assert.Equal(t, KindTail, tail.Kind)
	assert.Equal(t, block, head.Parent)
	assert.Equal(t, block, body.Parent)
	assert.Equal(t, block, tail.Parent)
}

func TestSpliceOutRelinksNeighbors(t *testing.T) {
	b := NewBuilder()
	a := NewText("a", 1, 1)
	b.AppendChild(a)
	c := NewText("c", 1, 2)
	b.AppendSibling(c)
	mid := NewText("mid", 1, 3)
	b.AppendSibling(mid) // a -> c -> mid

	b.SpliceOut(c)

	assert.Equal(t, mid, a.Next)
	assert.Equal(t, a, mid.Prev)
	assert.Nil(t, c.Next)
	assert.Nil(t, c.Prev)
	assert.Nil(t, c.Parent)
}

func TestSpliceOutFirstChildUpdatesParentChild(t *testing.T) {
	b := NewBuilder()
	block := NewBlock(macro.DialectMdoc, macro.Mdoc_Bl, 1, 1)
	b.AppendChild(block)
	b.Restore(block, RelChild)
	first := NewText("first", 1, 1)
	b.AppendChild(first)
	second := NewText("second", 1, 2)
	b.AppendSibling(second)

	b.SpliceOut(first)
	assert.Equal(t, second, block.Child)
	assert.Nil(t, second.Prev)
}

func TestFreeSubtreeDetachesNode(t *testing.T) {
	b := NewBuilder()
	a := NewText("a", 1, 1)
	b.AppendChild(a)
	c := NewText("c", 1, 2)
	b.AppendSibling(c)

	b.FreeSubtree(c)
	assert.Nil(t, a.Next)
}

func TestArgsRetainReleaseTracksRefCount(t *testing.T) {
	args := NewArgs([]ArgValue{{Flag: 1, Values: []string{"bullet"}}})
	assert.Equal(t, 1, args.refs)
	args.Retain()
	assert.Equal(t, 2, args.refs)
	args.Release()
	assert.Equal(t, 1, args.refs)
}

func TestFlagsHasChecksBitset(t *testing.T) {
	var f Flags
	f |= FlagValidated | FlagEnded
	assert.True(t, f.Has(FlagValidated))
	assert.True(t, f.Has(FlagEnded))
	assert.False(t, f.Has(FlagActed))
}

func TestKindStringNamesEveryCase(t *testing.T) {
	for k, want := range map[Kind]string{
		KindRoot: "root", KindBlock: "block", KindHead: "head",
		KindBody: "body", KindTail: "tail", KindElem: "elem", KindText: "text",
	} {
		assert.Equal(t, want, k.String())
	}
}
