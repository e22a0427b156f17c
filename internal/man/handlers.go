// Package man implements the presentation-dialect (man) per-macro
// handler families, the mirror of internal/mdoc for the simpler man(7)
// vocabulary: no parseable/callable nesting, alternating-font macros
// (BI, IB, BR, RI, …) instead of recursive inline macros.
package man

import (
	"strings"

	"github.com/oxhq/manroff/internal/macro"
	"github.com/oxhq/manroff/internal/tree"
)

// Invocation mirrors mdoc.Invocation for the man dialect.
type Invocation struct {
	ID     macro.ID
	Words  []string
	Line   int
	Column int
}

// alternatingPairs lists the two-font macros (BI, IB, BR, RI, RB, IR)
// whose words alternate between the two named fonts/styles, one word
// per font switch, rather than being a single run of like-styled text.
var alternatingPairs = map[macro.ID]bool{
	macro.Man_BI: true, macro.Man_IB: true, macro.Man_BR: true,
	macro.Man_RI: true, macro.Man_RB: true, macro.Man_IR: true,
}

// Handlers bundles man-dialect per-document state. man(7) has no name
// memory or width table; it exists for symmetry with mdoc.Handlers and
// as the hook future per-document state can attach to.
type Handlers struct{}

// NewHandlers returns a fresh man handler state.
func NewHandlers() *Handlers { return &Handlers{} }

// Build constructs the node(s) for one man macro invocation.
func (h *Handlers) Build(entry macro.Entry, inv Invocation) *tree.Node {
	switch entry.Family {
	case macro.FamilyPrologue:
		return nil // TH handled directly by internal/parser against Root.Meta
	case macro.FamilyLayout:
		return buildLayout(entry, inv)
	case macro.FamilyPartialLine:
		if alternatingPairs[entry.ID] {
			return buildAlternating(entry, inv)
		}
		return buildInline(entry, inv)
	default:
		return buildInline(entry, inv)
	}
}

func buildLayout(entry macro.Entry, inv Invocation) *tree.Node {
	n := tree.NewBlock(macro.DialectMan, entry.ID, inv.Line, inv.Column)
	if len(inv.Words) > 0 {
		n.Args = tree.NewArgs([]tree.ArgValue{{Values: inv.Words, HasValue: true}})
	}
	return n
}

func buildInline(entry macro.Entry, inv Invocation) *tree.Node {
	n := tree.NewElem(macro.DialectMan, entry.ID, inv.Line, inv.Column)
	var last *tree.Node
	for _, w := range inv.Words {
		text := tree.NewText(w, inv.Line, inv.Column)
		text.Parent = n
		if last == nil {
			n.Child = text
		} else {
			last.Next = text
			text.Prev = last
		}
		last = text
	}
	return n
}

// buildAlternating builds a two-font macro's children as a single joined
// run of words, tagging which font each occupies via node flags is left
// to internal/render; the tree merely preserves word order so the
// alternation can be reconstructed (odd words in the first-named font,
// even in the second).
func buildAlternating(entry macro.Entry, inv Invocation) *tree.Node {
	n := tree.NewElem(macro.DialectMan, entry.ID, inv.Line, inv.Column)
	joined := strings.Join(inv.Words, " ")
	if joined != "" {
		text := tree.NewText(joined, inv.Line, inv.Column)
		text.Parent = n
		n.Child = text
	}
	return n
}
