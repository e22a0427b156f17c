package mdoc

import (
	"github.com/oxhq/manroff/internal/macro"
	"github.com/oxhq/manroff/internal/tree"
)

// Invocation is the dialect-neutral shape internal/parser extracts from
// one macro line: its identifier, the leading flags the tokenizer
// recognized, the remaining words, and source position.
type Invocation struct {
	ID     macro.ID
	Flags  []ArgPair
	Words  []string
	Line   int
	Column int
}

// ArgPair is one parsed flag and its values, already resolved out of
// internal/token.ParsedFlag so this package does not need to import it.
type ArgPair struct {
	Name   string
	Values []string
}

// Handlers bundles the per-document state the family handlers close
// over: the Nm memory.
// A fresh Handlers is created per parse; it carries no global state.
type Handlers struct {
	Names NameMemory
}

// NewHandlers returns a zero-value handler state for one document parse.
func NewHandlers() *Handlers { return &Handlers{} }

// Build constructs the node(s) for one macro invocation according to its
// table entry's family. It does not touch the scope stack — the caller
// (internal/parser) resolves CloseResult from macro.Stack.Encounter
// before calling Build, and pushes the returned node if the entry is an
// opener.
func (h *Handlers) Build(entry macro.Entry, inv Invocation) *tree.Node {
	switch entry.Family {
	case macro.FamilyPrologue:
		return nil // prologue handled directly by internal/parser against Root.Meta
	case macro.FamilySpecial:
		return h.buildSpecial(entry, inv)
	case macro.FamilyLayout:
		return buildLayout(entry, inv)
	case macro.FamilyOrdered, macro.FamilyText:
		return buildInline(entry, inv)
	case macro.FamilyPartialLine, macro.FamilyPartialExplicit:
		return buildInline(entry, inv)
	default:
		return buildInline(entry, inv)
	}
}

func (h *Handlers) buildSpecial(entry macro.Entry, inv Invocation) *tree.Node {
	if entry.ID == macro.Mdoc_Nm {
		name := h.Names.Resolve(inv.Words)
		n := tree.NewElem(macro.DialectMdoc, entry.ID, inv.Line, inv.Column)
		if name != "" {
			text := tree.NewText(name, inv.Line, inv.Column)
			text.Parent = n
			n.Child = text
		}
		return n
	}
	return buildInline(entry, inv)
}

func buildLayout(entry macro.Entry, inv Invocation) *tree.Node {
	n := tree.NewBlock(macro.DialectMdoc, entry.ID, inv.Line, inv.Column)
	if len(inv.Flags) > 0 {
		n.Args = tree.NewArgs(toArgValues(inv.Flags))
	}
	return n
}

func buildInline(entry macro.Entry, inv Invocation) *tree.Node {
	n := tree.NewElem(macro.DialectMdoc, entry.ID, inv.Line, inv.Column)
	if len(inv.Flags) > 0 {
		n.Args = tree.NewArgs(toArgValues(inv.Flags))
	}
	n.Child = BuildWordChildren(inv.Words, entry.Attrs.Has(macro.AttrParseable), inv.Line, inv.Column)
	for c := n.Child; c != nil; c = c.Next {
		c.Parent = n
	}
	return n
}

// BuildWordChildren builds the child chain for an already-decoded run of
// words. When parseable is false, every word becomes a plain Text leaf
// (man's words, and mdoc words inside a non-parseable macro). When
// parseable is true, a word naming an AttrCallable macro (e.g. Fl, Ar,
// Cm, Nm appearing inside a parseable parent's content, per §4.4) starts
// a nested invocation that consumes subsequent words up to the next
// recognized callable name, instead of flattening to Text. mdoc's own
// grammar never lets a captured run contain another callable name
// (scanning stops at the first one it sees), so nesting only ever goes
// one level deep — no further recursion is needed.
func BuildWordChildren(words []string, parseable bool, line, col int) *tree.Node {
	var head, last *tree.Node
	attach := func(n *tree.Node) {
		if last == nil {
			head = n
		} else {
			last.Next = n
			n.Prev = last
		}
		last = n
	}

	for i := 0; i < len(words); {
		w := words[i]
		if parseable {
			if id, ok := macro.Lookup(macro.DialectMdoc, w); ok && macro.MdocTable.Get(id).Attrs.Has(macro.AttrCallable) {
				j := i + 1
				for j < len(words) {
					if id2, ok2 := macro.Lookup(macro.DialectMdoc, words[j]); ok2 && macro.MdocTable.Get(id2).Attrs.Has(macro.AttrCallable) {
						break
					}
					j++
				}
				nested := tree.NewElem(macro.DialectMdoc, id, line, col)
				nested.Child = BuildWordChildren(words[i+1:j], false, line, col)
				for c := nested.Child; c != nil; c = c.Next {
					c.Parent = nested
				}
				attach(nested)
				i = j
				continue
			}
		}
		attach(tree.NewText(w, line, col))
		i++
	}
	return head
}

func toArgValues(flags []ArgPair) []tree.ArgValue {
	out := make([]tree.ArgValue, 0, len(flags))
	for i, f := range flags {
		out = append(out, tree.ArgValue{Name: f.Name, Flag: i, Values: f.Values, HasValue: len(f.Values) > 0})
	}
	return out
}
