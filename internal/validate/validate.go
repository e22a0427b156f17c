// Package validate implements the two-pass post-parse validation
// traversal (§4.7): a pre-order pass that reports a list item (It) found
// outside any Bl, and a post-order pass that checks section ordering and
// list-type exclusivity and injects -width on -tag lists; the
// section-appropriate manual number is checked after the walk. No check
// rejects a node, stops descent or marks a node ended. Argument
// cardinality, a general per-macro child-parent allowlist and sibling
// merging are not checked or performed.
package validate

import (
	"strconv"

	"github.com/oxhq/manroff/internal/diag"
	"github.com/oxhq/manroff/internal/macro"
	"github.com/oxhq/manroff/internal/mdoc"
	"github.com/oxhq/manroff/internal/tree"
)

// conventionalOrder is the section sequence mandoc's own style checker
// warns against violating; later sections appearing before earlier ones
// in this list triggers CodeSecOrder.
var conventionalOrder = []string{
	"NAME", "LIBRARY", "SYNOPSIS", "DESCRIPTION", "CONTEXT",
	"IMPLEMENTATION NOTES", "RETURN VALUES", "ENVIRONMENT", "FILES",
	"EXIT STATUS", "EXAMPLES", "DIAGNOSTICS", "ERRORS", "SEE ALSO",
	"STANDARDS", "HISTORY", "AUTHORS", "CAVEATS", "BUGS", "SECURITY CONSIDERATIONS",
}

func sectionRank(name string) int {
	for i, s := range conventionalOrder {
		if s == name {
			return i
		}
	}
	return -1
}

// sectionsRequiringNumber names sections whose content is only sensible
// in certain manual-page sections (2 syscalls, 3 library, 9 kernel).
var sectionsRequiringNumber = map[string][]string{
	"RETURN VALUES": {"2", "3", "9"},
	"ERRORS":        {"2", "3", "9"},
}

// Validator runs the two-pass traversal over one parsed tree.
type Validator struct {
	Dialect macro.Dialect
	Sink    diag.Sink

	restrictedSectionsSeen []string
}

// New returns a Validator bound to dialect, reporting through sink.
func New(dialect macro.Dialect, sink diag.Sink) *Validator {
	return &Validator{Dialect: dialect, Sink: sink}
}

// Run walks root, applying pre-order then post-order predicates, and the
// canonical checks, mutating metadata and node flags in place.
func (v *Validator) Run(root *tree.Root) {
	var lastSeenRank = -1
	v.walk(root.Child, &lastSeenRank)
	v.checkSectionNumbers(root)
}

// checkSectionNumbers applies the section-appropriate manual-section
// rule once the whole tree (and Root.Meta.Section) is known: Return
// Values and Errors sections belong only to manual sections 2, 3, 9.
func (v *Validator) checkSectionNumbers(root *tree.Root) {
	for _, title := range v.restrictedSectionsSeen {
		allowed := sectionsRequiringNumber[title]
		if !contains(allowed, root.Meta.Section) {
			diag.Report(v.Sink, diag.Error, 0, 0, diag.CodeSecWrongManualSection,
				"%s section is not conventional for manual section %q", title, root.Meta.Section)
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (v *Validator) walk(n *tree.Node, lastSeenRank *int) {
	for cur := n; cur != nil; cur = cur.Next {
		if v.preOrder(cur) {
			v.walk(cur.Head, lastSeenRank)
			v.walk(cur.Body, lastSeenRank)
			v.walk(cur.Tail, lastSeenRank)
			v.walk(cur.Child, lastSeenRank)
		}
		v.postOrder(cur, lastSeenRank)
	}
}

// preOrder returns false if the node is rejected and its descent should
// be skipped.
func (v *Validator) preOrder(n *tree.Node) bool {
	if n.Kind == tree.KindBlock && v.Dialect == macro.DialectMdoc && n.ID == macro.Mdoc_It {
		if !hasEnclosingList(n) {
			diag.Report(v.Sink, diag.Error, n.Line, n.Column, diag.CodeListItemOutsideList,
				"It: list item outside of any list")
		}
	}
	return true
}

// hasEnclosingList reports whether n sits inside a Bl block's Body
// sub-region, directly or as a child of that region (It items attach to
// Bl's Body, not to the Bl node itself).
func hasEnclosingList(n *tree.Node) bool {
	p := n.Parent
	if p != nil && p.Kind == tree.KindBody {
		p = p.Parent
	}
	return p != nil && p.ID == macro.Mdoc_Bl
}

// postOrder applies rewrites, injections, and the canonical checks that
// depend on a node's now-finished subtree.
func (v *Validator) postOrder(n *tree.Node, lastSeenRank *int) {
	switch {
	case n.Kind == tree.KindBlock && isSectionHeader(v.Dialect, n.ID):
		v.checkSectionOrder(n, lastSeenRank)
	case v.Dialect == macro.DialectMdoc && n.ID == macro.Mdoc_Bl:
		v.checkListArgs(n)
	}
	n.Flags |= tree.FlagValidated
}

func isSectionHeader(dialect macro.Dialect, id macro.ID) bool {
	if dialect == macro.DialectMdoc {
		return id == macro.Mdoc_Sh
	}
	return id == macro.Man_SH
}

// sectionTitle recovers a section header's title text from its Head
// sub-region (mdoc) or leading argument words (man). The text is
// returned verbatim (not case-folded) and compared against
// conventionalOrder's upper-case spelling.
func sectionTitle(n *tree.Node) string {
	head := n.Head
	if head == nil {
		head = n
	}
	if head.Child != nil && head.Child.Kind == tree.KindText {
		return head.Child.Text
	}
	return ""
}

func (v *Validator) checkSectionOrder(n *tree.Node, lastSeenRank *int) {
	title := sectionTitle(n)
	if title == "" {
		return
	}
	rank := sectionRank(title)
	if rank == -1 {
		return
	}
	if rank < *lastSeenRank {
		diag.Report(v.Sink, diag.Warning, n.Line, n.Column, diag.CodeSecOrder,
			"section %q appears out of conventional order", title)
	} else {
		*lastSeenRank = rank
	}
	if _, ok := sectionsRequiringNumber[title]; ok {
		v.restrictedSectionsSeen = append(v.restrictedSectionsSeen, title)
	}
}

// checkListArgs implements list-type exclusivity and the -tag-without-
// -width auto-injection (§3.7 example #4 / §4.7).
func (v *Validator) checkListArgs(n *tree.Node) {
	if n.Args == nil {
		return
	}
	listTypeFlags := map[string]bool{
		"bullet": true, "dash": true, "enum": true, "hyphen": true,
		"item": true, "tag": true, "diag": true, "hang": true, "ohang": true, "inset": true, "column": true,
	}
	var seenType string
	var hasWidth, hasTag bool
	for _, a := range n.Args.Values {
		if listTypeFlags[a.Name] {
			if seenType != "" && seenType != a.Name {
				diag.Report(v.Sink, diag.Error, n.Line, n.Column, diag.CodeListTypeExclusivity,
					"Bl: conflicting list types %q and %q", seenType, a.Name)
			}
			seenType = a.Name
		}
		if a.Name == "width" {
			hasWidth = true
		}
		if a.Name == "tag" {
			hasTag = true
		}
	}
	if hasTag && !hasWidth {
		v.injectAutoWidth(n)
	}
}

// injectAutoWidth scans the first item's head (the ".It" head-line
// words, e.g. the "Fl x" in ".It Fl x") to compute a width, per §3.3's
// three-way width rule, and appends a synthetic -width argument to the
// Bl node.
func (v *Validator) injectAutoWidth(n *tree.Node) {
	listContent := n.Body
	if listContent == nil {
		listContent = n
	}
	firstItem := listContent.Child
	var width int
	var warn bool
	if firstItem != nil && firstItem.Head != nil && firstItem.Head.Child != nil {
		first := firstItem.Head.Child
		switch first.Kind {
		case tree.KindText:
			width, warn = mdoc.AutoWidth(true, first.Text, 0, false)
		case tree.KindElem:
			width, warn = mdoc.AutoWidth(false, "", first.ID, true)
		default:
			width, warn = mdoc.AutoWidth(false, "", 0, false)
		}
	} else {
		width, warn = mdoc.AutoWidth(false, "", 0, false)
	}
	if warn {
		diag.Report(v.Sink, diag.Warning, n.Line, n.Column, diag.CodeWidthDefaulted,
			"Bl -tag: could not infer width, defaulting to %d", width)
	}
	n.Args.Values = append(n.Args.Values, tree.ArgValue{
		Name: "width", Values: []string{strconv.Itoa(width)}, HasValue: true,
	})
}
