package macro

import "github.com/oxhq/manroff/internal/token"

// HandlerFamily names the closed family of node-construction behavior a
// macro uses (§4.4/§4.6). The macro package does not implement handler
// bodies itself — internal/mdoc and internal/man do, dispatched by
// family — it only records which family each macro belongs to.
type HandlerFamily int

const (
	FamilyNone HandlerFamily = iota
	FamilyText
	FamilyOrdered
	FamilyLayout
	FamilyPartialLine
	FamilyPartialExplicit
	FamilyPrologue
	FamilySpecial
)

// Attr is a bitset of per-macro attributes.
type Attr uint8

const (
	AttrParseable Attr = 1 << iota // content may contain other callable macros
	AttrCallable                   // may appear inside a parseable parent
	AttrShallow                    // closes only at the nearest same-tag block
	AttrLineScope                  // line-dominant (closes at end of line)
)

func (a Attr) Has(f Attr) bool { return a&f != 0 }

// Entry is one row of the macro dispatch table.
type Entry struct {
	ID      ID
	Profile token.Mode
	Family  HandlerFamily
	Attrs   Attr
	// ExplicitCloser, when non-zero, names the ID that closes this
	// opener (e.g. Bl closed by El). Zero means the macro is either not
	// a scoped opener or is implicit-end (closed by its own kind).
	ExplicitCloser ID
	// ImplicitEnd is true for openers that close on re-encountering the
	// same ID (e.g. Sh, Ss, It within a non-shallow context).
	ImplicitEnd bool
}

// Table is a dialect's full dispatch table, indexed by ID.
type Table map[ID]Entry

// entryOrDefault returns t[id], defaulting to a zero-value Text-family
// entry with Mode None for any ID not explicitly listed (this is the
// behavior for plain text runs, which carry ID 0/Mdoc_Text/Man_Text).
func (t Table) entryOrDefault(id ID) Entry {
	if e, ok := t[id]; ok {
		return e
	}
	return Entry{ID: id, Profile: token.None, Family: FamilyText}
}

// Get looks up id's entry, or the default text entry if unlisted.
func (t Table) Get(id ID) Entry { return t.entryOrDefault(id) }

// IsOpener reports whether id begins a scope that the dispatcher must
// track on the open-scope stack (either explicit-end or implicit-end).
func (t Table) IsOpener(id ID) bool {
	e := t.entryOrDefault(id)
	return e.ExplicitCloser != 0 || e.ImplicitEnd
}

// CloserMap returns, for every macro that closes some opener explicitly,
// a map from the closer's ID to the opener's ID (e.g. Mdoc_El -> Mdoc_Bl).
func (t Table) CloserMap() map[ID]ID {
	m := make(map[ID]ID)
	for opener, e := range t {
		if e.ExplicitCloser != 0 {
			m[e.ExplicitCloser] = opener
		}
	}
	return m
}
