package index

import (
	"strings"

	"github.com/oxhq/manroff/internal/macro"
	"github.com/oxhq/manroff/internal/tree"
)

// Keyword is one classified term pulled out of a document, ready to be
// folded into the keyword file against the Record it was extracted from.
type Keyword struct {
	Text  string
	Class Class
}

// dispatch is the macro-to-class table keyed by (Dialect, ID) together,
// since mdoc and man IDs are numbered in independent enumerations and
// collide as raw integers. It is grounded on mandocdb.c's mdocs[MDOC_MAX]
// handler table, which tags a subset of mdoc macros with a TYPE_* keyword
// class; macros mandocdb tags with a TYPE_* this package's 15-class
// enumeration has no equivalent for (Ar, Cm, Dv, Fa, Fl, Ft, Ic, Li, Ms,
// …) are left out of the table below and produce no keyword, same as the
// many macros mandocdb itself tags { NULL, 0, 0 }.
type dispatchKey struct {
	dialect macro.Dialect
	id      macro.ID
}

var dispatch = map[dispatchKey]Class{
	{macro.DialectMdoc, macro.Mdoc_Nm}: ClassName | ClassUtility,
	{macro.DialectMdoc, macro.Mdoc_Nd}: ClassDesc,
	{macro.DialectMdoc, macro.Mdoc_Fn}: ClassFunction,
	{macro.DialectMdoc, macro.Mdoc_Fd}: ClassInclude,
	{macro.DialectMdoc, macro.Mdoc_In}: ClassInclude,
	{macro.DialectMdoc, macro.Mdoc_Va}: ClassVariable,
	{macro.DialectMdoc, macro.Mdoc_Vt}: ClassVariable,
	{macro.DialectMdoc, macro.Mdoc_St}: ClassStandard,
	{macro.DialectMdoc, macro.Mdoc_An}: ClassAuthor,
	{macro.DialectMdoc, macro.Mdoc_Xr}: ClassXref,
	{macro.DialectMdoc, macro.Mdoc_Pa}: ClassPath,
	{macro.DialectMdoc, macro.Mdoc_Ev}: ClassEnv,
	{macro.DialectMdoc, macro.Mdoc_Er}: ClassErrorName,
	{macro.DialectMdoc, macro.Mdoc_Cd}: ClassConfig,
	{macro.DialectMdoc, macro.Mdoc_At}: ClassArchitectureMarker,
	{macro.DialectMdoc, macro.Mdoc_Bsx}: ClassArchitectureMarker,
	{macro.DialectMdoc, macro.Mdoc_Bx}: ClassArchitectureMarker,
	{macro.DialectMdoc, macro.Mdoc_Fx}: ClassArchitectureMarker,
	{macro.DialectMdoc, macro.Mdoc_Nx}: ClassArchitectureMarker,
	{macro.DialectMdoc, macro.Mdoc_Ox}: ClassArchitectureMarker,
	{macro.DialectMdoc, macro.Mdoc_Ux}: ClassArchitectureMarker,
	{macro.DialectMdoc, macro.Mdoc_Sh}: ClassSection,
	{macro.DialectMdoc, macro.Mdoc_Ss}: ClassSection,

	{macro.DialectMan, macro.Man_SH}: ClassSection,
	{macro.DialectMan, macro.Man_SS}: ClassSection,
}

// archLabels names the canonical text mdoc's OS/architecture macros
// stand for when invoked bare (e.g. ".Ux" alone means "UNIX"); any words
// the invocation does carry are appended after the label.
var archLabels = map[macro.ID]string{
	macro.Mdoc_At:  "AT&T UNIX",
	macro.Mdoc_Bsx: "BSD/OS",
	macro.Mdoc_Bx:  "BSD",
	macro.Mdoc_Fx:  "FreeBSD",
	macro.Mdoc_Nx:  "NetBSD",
	macro.Mdoc_Ox:  "OpenBSD",
	macro.Mdoc_Ux:  "UNIX",
}

// Extract walks root, producing the Record that describes the whole
// document plus the deduplicated set of classified keywords found in it.
// filename is not recoverable from the tree itself (internal/parser only
// uses it to annotate diagnostics), so the caller supplies it.
func Extract(filename string, root *tree.Root) (Record, []Keyword) {
	rec := Record{
		Filename:     filename,
		Section:      root.Meta.Section,
		Title:        root.Meta.Title,
		Architecture: root.Meta.Arch,
	}
	if rec.Architecture == "" {
		rec.Architecture = "unknown"
	}

	terms := map[string]Class{}
	add := func(text string, class Class) {
		text = strings.TrimSpace(text)
		if text == "" {
			return
		}
		terms[text] |= class
	}

	add(rec.Architecture, ClassArchitectureMarker)
	if root.Meta.ProgramName != "" {
		add(root.Meta.ProgramName, ClassName|ClassUtility)
	}

	walk(root.Child, func(n *tree.Node) {
		class, ok := dispatch[dispatchKey{n.Dialect, n.ID}]
		if !ok {
			return
		}

		switch {
		case n.Dialect == macro.DialectMdoc && n.ID == macro.Mdoc_Nd:
			text := joinText(n)
			rec.Description = text
			add(text, class)
		case n.Dialect == macro.DialectMdoc && n.ID == macro.Mdoc_Xr:
			words := wordsOf(n)
			if len(words) >= 2 {
				add(words[0]+"("+words[1]+")", class)
			} else if len(words) == 1 {
				add(words[0], class)
			}
		case n.Dialect == macro.DialectMdoc && n.ID == macro.Mdoc_Fn:
			if words := wordsOf(n); len(words) > 0 {
				add(words[0], class)
			}
		case n.Dialect == macro.DialectMdoc && n.ID == macro.Mdoc_Fd:
			words := wordsOf(n)
			if len(words) >= 2 {
				add(words[1], class)
			}
		case n.Dialect == macro.DialectMdoc && archLabels[n.ID] != "":
			label := archLabels[n.ID]
			if rest := joinText(n); rest != "" {
				label += " " + rest
			}
			add(label, class)
		case n.Kind == tree.KindBlock:
			if n.Head != nil {
				add(joinText(n.Head), class)
			}
		default:
			add(joinText(n), class)
		}
	})

	out := make([]Keyword, 0, len(terms))
	for text, class := range terms {
		out = append(out, Keyword{Text: text, Class: class})
	}
	return rec, out
}

// walk visits n and every node reachable through its Child and Next
// chains (and, for blocks, its Head/Body/Tail sub-regions), in document
// order.
func walk(n *tree.Node, visit func(*tree.Node)) {
	for cur := n; cur != nil; cur = cur.Next {
		visit(cur)
		if cur.Kind == tree.KindBlock {
			walk(cur.Head, visit)
			walk(cur.Body, visit)
			walk(cur.Tail, visit)
		}
		walk(cur.Child, visit)
	}
}

// wordsOf collects n's direct KindText children's Text values in order,
// without joining them, for macros whose words carry distinct meaning
// (e.g. Xr's name and section).
func wordsOf(n *tree.Node) []string {
	var words []string
	for c := n.Child; c != nil; c = c.Next {
		if c.Kind == tree.KindText {
			words = append(words, c.Text)
		}
	}
	return words
}

// joinText collects n's direct KindText children's Text values, space
// joined, for macros whose words form a single run (e.g. a section
// title or a one-line description).
func joinText(n *tree.Node) string {
	return strings.Join(wordsOf(n), " ")
}
