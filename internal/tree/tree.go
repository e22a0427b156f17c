// Package tree implements the semantic tree model (§4.5/§9): a sum-typed
// node rooted at a single Root, linked by owned first-child and
// next-sibling pointers with non-owning parent and previous-sibling
// back-pointers. There is no global mutable parser state; every tree is
// built through a per-parse Builder instance.
package tree

import "github.com/oxhq/manroff/internal/macro"

// Kind discriminates the sum type's cases.
type Kind int

const (
	KindRoot Kind = iota
	KindBlock
	KindHead
	KindBody
	KindTail
	KindElem
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindBlock:
		return "block"
	case KindHead:
		return "head"
	case KindBody:
		return "body"
	case KindTail:
		return "tail"
	case KindElem:
		return "elem"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Section is the closed enumeration of conventional manual sections used
// by validation's section-ordering and section-appropriate checks.
type Section int

const (
	SectionNone Section = iota
	SectionName
	SectionLibrary
	SectionSynopsis
	SectionDescription
	SectionContext
	SectionImplementation
	SectionReturnValues
	SectionEnvironment
	SectionFiles
	SectionExitStatus
	SectionExamples
	SectionDiagnostics
	SectionErrors
	SectionSeeAlso
	SectionStandards
	SectionHistory
	SectionAuthors
	SectionCaveats
	SectionBugs
	SectionSecurity
	SectionCustom
)

// Flags is a per-node bitset tracking validation and construction state.
type Flags uint16

const (
	FlagValidated Flags = 1 << iota
	FlagActed
	FlagSentenceBoundary
	FlagFirstOnLine
	FlagSynopsisStyle
	FlagEnded
)

func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

// ArgValue is one recognized flag's parsed value within an Args bundle.
type ArgValue struct {
	Name     string // flag name as recognized by the per-macro vocabulary, e.g. "width", "tag", "bullet"
	Flag     int    // macro-specific flag identifier, interpreted by internal/mdoc or internal/man
	Pos      int
	Values   []string
	HasValue bool
}

// Args is the reference-counted argument bundle carried by Block and Elem
// nodes. It is shared, not copied, when a list item is reopened during a
// later continuation — Retain/Release track that sharing explicitly
// instead of relying on a garbage collector convention that callers might
// not realize applies.
type Args struct {
	refs   int
	Values []ArgValue
}

// NewArgs returns a one-reference bundle.
func NewArgs(values []ArgValue) *Args {
	return &Args{refs: 1, Values: values}
}

// Retain increments the reference count and returns the same bundle, for
// callers that hand the same Args to more than one node.
func (a *Args) Retain() *Args {
	if a != nil {
		a.refs++
	}
	return a
}

// Release decrements the reference count. Callers must not dereference a
// after its count reaches zero.
func (a *Args) Release() {
	if a != nil {
		a.refs--
	}
}

// Node is the tree's single node type; Kind selects which fields apply.
// Ownership: Child and Next are owned by this node (freeing this node
// transitively frees its child and next-sibling chains); Parent and Prev
// are non-owning lookup pointers maintained by Builder and must never be
// followed to free anything.
type Node struct {
	Kind Kind

	Dialect macro.Dialect
	ID      macro.ID // macro identifier; meaningless for KindText/KindRoot

	Line, Column int
	Flags        Flags
	Section      Section

	Args *Args // non-nil only for KindBlock/KindElem

	Text string // populated only for KindText

	// Sub-region children, populated only for KindBlock, appearing in
	// Head < Body < Tail order when present.
	Head, Body, Tail *Node

	Parent *Node // non-owning
	Child  *Node // owned: this node's free-form child chain head
	Next   *Node // owned: next sibling
	Prev   *Node // non-owning: previous sibling
}

// Meta holds document-level metadata populated by the prologue handlers
// and consumed by validation and rendering.
type Meta struct {
	Title       string
	Section     string // manual section number/class, e.g. "1", "3p"
	Volume      string
	Arch        string
	Source      string
	Date        string // ISO 8601, parsed from Dd/$Mdocdate$
	OS          string
	ProgramName string // program name; no parser stage sets it (Nm memory lives in mdoc.Handlers.Names)
}

// Root is the tree's unique top-level node, holding Meta and the first
// child of the document body.
type Root struct {
	Meta  Meta
	Child *Node
}

// NewRoot returns an empty root ready for Builder to populate.
func NewRoot() *Root { return &Root{} }
