package validate

import (
	"testing"

	"github.com/oxhq/manroff/internal/diag"
	"github.com/oxhq/manroff/internal/macro"
	"github.com/oxhq/manroff/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func section(title string, line int) *tree.Node {
	b := tree.NewBlock(macro.DialectMdoc, macro.Mdoc_Sh, line, 1)
	head := tree.NewText(title, line, 1)
	b.Head = head
	head.Parent = b
	head.Kind = tree.KindHead
	return b
}

func TestSectionOrderWarnsWhenOutOfOrder(t *testing.T) {
	col := diag.NewCollector("t.mdoc", diag.Fatal)
	v := New(macro.DialectMdoc, col)

	first := section("DESCRIPTION", 1)
	second := section("NAME", 5)
	first.Next = second
	second.Prev = first

	root := &tree.Root{Child: first}
	v.Run(root)

	var found bool
	for _, d := range col.Diagnostics() {
		if d.Code == diag.CodeSecOrder {
			found = true
		}
	}
	assert.True(t, found)
}

func TestListItemOutsideListIsError(t *testing.T) {
	col := diag.NewCollector("t.mdoc", diag.Fatal)
	v := New(macro.DialectMdoc, col)

	it := tree.NewBlock(macro.DialectMdoc, macro.Mdoc_It, 1, 1)
	root := &tree.Root{Child: it}
	v.Run(root)

	require.Len(t, col.Diagnostics(), 1)
	assert.Equal(t, diag.CodeListItemOutsideList, col.Diagnostics()[0].Code)
}

func TestListTypeExclusivityRejectsConflictingFlags(t *testing.T) {
	col := diag.NewCollector("t.mdoc", diag.Fatal)
	v := New(macro.DialectMdoc, col)

	bl := tree.NewBlock(macro.DialectMdoc, macro.Mdoc_Bl, 1, 1)
	bl.Args = tree.NewArgs([]tree.ArgValue{{Name: "bullet"}, {Name: "enum"}})
	root := &tree.Root{Child: bl}
	v.Run(root)

	var found bool
	for _, d := range col.Diagnostics() {
		if d.Code == diag.CodeListTypeExclusivity {
			found = true
		}
	}
	assert.True(t, found)
}

// TestTagWithoutWidthInjectsComputedWidth builds the tree shape real
// parsing produces for ".Bl -tag\n.It Fl x\ndescribes x\n.El": the
// first item's head carries the callable macro (Fl), its body the
// trailing text. The injected width must come from the head, per
// post_bl_tagwidth's n->head->child scan, not the body text.
func TestTagWithoutWidthInjectsComputedWidth(t *testing.T) {
	col := diag.NewCollector("t.mdoc", diag.Fatal)
	v := New(macro.DialectMdoc, col)

	bl := tree.NewBlock(macro.DialectMdoc, macro.Mdoc_Bl, 1, 1)
	bl.Args = tree.NewArgs([]tree.ArgValue{{Name: "tag"}})

	blBody := &tree.Node{Kind: tree.KindBody, Parent: bl}
	bl.Body = blBody

	it := tree.NewBlock(macro.DialectMdoc, macro.Mdoc_It, 2, 1)
	it.Parent = blBody
	blBody.Child = it

	itHead := &tree.Node{Kind: tree.KindHead, Parent: it}
	it.Head = itHead
	fl := tree.NewElem(macro.DialectMdoc, macro.Mdoc_Fl, 2, 4)
	fl.Parent = itHead
	itHead.Child = fl
	arg := tree.NewText("x", 2, 7)
	arg.Parent = fl
	fl.Child = arg

	itBody := &tree.Node{Kind: tree.KindBody, Parent: it}
	it.Body = itBody
	text := tree.NewText("describes x", 3, 1)
	text.Parent = itBody
	itBody.Child = text

	root := &tree.Root{Child: bl}
	v.Run(root)

	require.NotNil(t, bl.Args)
	var widthVal string
	for _, a := range bl.Args.Values {
		if a.Name == "width" {
			widthVal = a.Values[0]
		}
	}
	assert.Equal(t, "10", widthVal, "width must be Fl's canonical width (10) from the item head, not len(\"describes x\")+1")
}
