package tree

import "github.com/oxhq/manroff/internal/macro"

// Relation is the "next relation" hint the Builder consults when
// inserting a newly-created node at the cursor.
type Relation int

const (
	RelChild Relation = iota
	RelSibling
)

// cursorState captures the insertion point so a handler can emit a
// constructed sub-tree and return to its caller's context afterward.
type cursorState struct {
	node Node // zero Node{} means "at root, before any child"
	rel  Relation
}

// Builder constructs one document's tree. It owns the insertion cursor
// and relation hint described by §4.5; handlers never touch Node pointer
// fields directly, only through Builder's operations, so the ownership
// invariants stay centrally enforced.
type Builder struct {
	root   *Root
	cursor *Node // nil means "at root"
	rel    Relation
}

// NewBuilder starts building into a fresh Root.
func NewBuilder() *Builder {
	r := NewRoot()
	return &Builder{root: r, rel: RelChild}
}

// Root returns the tree built so far.
func (b *Builder) Root() *Root { return b.root }

// Cursor returns the node the next insertion will attach to (nil at the
// document root).
func (b *Builder) Cursor() *Node { return b.cursor }

// Save captures the current cursor/relation so a handler can restore it
// after emitting a sub-tree into a different context (e.g. a reference
// block's children, or a list item's head before returning to its body).
func (b *Builder) Save() (cursor *Node, rel Relation) {
	return b.cursor, b.rel
}

// Restore resets the cursor/relation to a previously-saved state.
func (b *Builder) Restore(cursor *Node, rel Relation) {
	b.cursor, b.rel = cursor, rel
}

// AppendChild creates n and inserts it as the last child of the node
// named by the current insertion point, then makes n the new cursor with
// a Sibling relation (the next insertion, absent further direction,
// continues the same chain).
func (b *Builder) AppendChild(n *Node) *Node {
	n.Parent = b.cursor
	b.attachAtRelation(n)
	b.cursor = n
	b.rel = RelSibling
	return n
}

// AppendSibling inserts n immediately after the cursor in its parent's
// child chain. It is the common case once the cursor already names a
// freshly-appended node.
func (b *Builder) AppendSibling(n *Node) *Node {
	if b.cursor == nil {
		return b.AppendChild(n)
	}
	n.Parent = b.cursor.Parent
	n.Prev = b.cursor
	n.Next = b.cursor.Next
	if b.cursor.Next != nil {
		b.cursor.Next.Prev = n
	}
	b.cursor.Next = n
	b.cursor = n
	b.rel = RelSibling
	return n
}

// attachAtRelation inserts n according to b.rel relative to b.cursor,
// finding the end of the target chain to preserve insertion order.
func (b *Builder) attachAtRelation(n *Node) {
	parent := b.cursor
	var chain **Node
	if parent == nil {
		chain = &b.root.Child
	} else {
		chain = &parent.Child
	}
	if *chain == nil {
		*chain = n
		return
	}
	last := *chain
	for last.Next != nil {
		last = last.Next
	}
	last.Next = n
	n.Prev = last
}

// NewElem allocates a Kind=KindElem node for macro id at the given source
// position; it is not yet attached to the tree.
func NewElem(dialect macro.Dialect, id macro.ID, line, col int) *Node {
	return &Node{Kind: KindElem, Dialect: dialect, ID: id, Line: line, Column: col}
}

// NewBlock allocates a Kind=KindBlock node for macro id; it is not yet
// attached to the tree.
func NewBlock(dialect macro.Dialect, id macro.ID, line, col int) *Node {
	return &Node{Kind: KindBlock, Dialect: dialect, ID: id, Line: line, Column: col}
}

// NewText allocates a Kind=KindText leaf carrying s.
func NewText(s string, line, col int) *Node {
	return &Node{Kind: KindText, Text: s, Line: line, Column: col}
}

// PromoteToHead attaches child as block's Head sub-region. It is an error
// (caller's responsibility to avoid) to call this after Body or Tail has
// already been set, per the Head < Body < Tail ordering invariant.
func (b *Builder) PromoteToHead(block, head *Node) {
	head.Kind = KindHead
	head.Parent = block
	block.Head = head
}

// PromoteToBody attaches child as block's Body sub-region.
func (b *Builder) PromoteToBody(block, body *Node) {
	body.Kind = KindBody
	body.Parent = block
	block.Body = body
}

// PromoteToTail attaches child as block's Tail sub-region.
func (b *Builder) PromoteToTail(block, tail *Node) {
	tail.Kind = KindTail
	tail.Parent = block
	block.Tail = tail
}

// SpliceOut removes n from its parent's child chain, relinking its
// neighbors, without freeing n or its subtree. Used when a handler
// needs to move a constructed node into a different parent (e.g.
// reparenting trailing punctuation from a child position to a sibling
// position of the macro that produced it).
func (b *Builder) SpliceOut(n *Node) {
	prev, next := n.Prev, n.Next
	if prev != nil {
		prev.Next = next
	} else if n.Parent != nil {
		n.Parent.Child = next
	} else {
		b.root.Child = next
	}
	if next != nil {
		next.Prev = prev
	}
	if b.cursor == n {
		b.cursor = prev
	}
	n.Parent, n.Prev, n.Next = nil, nil, nil
}

// FreeSubtree detaches n from the tree (as SpliceOut); once the caller
// drops its own reference, the garbage collector reclaims n and
// everything it owns (its Child and Next chains). There is no manual
// memory management step beyond breaking the owning links.
func (b *Builder) FreeSubtree(n *Node) {
	b.SpliceOut(n)
}
