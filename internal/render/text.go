package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/oxhq/manroff/internal/macro"
	"github.com/oxhq/manroff/internal/tree"
)

const textWrapColumn = 78

// isSectionHeading reports whether n opens a section or subsection,
// whose Head text renders as its own line rather than flowing text.
func isSectionHeading(n *tree.Node) bool {
	switch n.Dialect {
	case macro.DialectMdoc:
		return n.ID == macro.Mdoc_Sh || n.ID == macro.Mdoc_Ss
	case macro.DialectMan:
		return n.ID == macro.Man_SH || n.ID == macro.Man_SS
	default:
		return false
	}
}

// isParagraphBreak reports whether n is a macro whose only job is to
// start a new output paragraph.
func isParagraphBreak(n *tree.Node) bool {
	switch n.Dialect {
	case macro.DialectMdoc:
		return n.ID == macro.Mdoc_Pp
	case macro.DialectMan:
		return n.ID == macro.Man_PP || n.ID == macro.Man_LP || n.ID == macro.Man_P
	default:
		return false
	}
}

// textWriter accumulates words and wraps them at textWrapColumn,
// mirroring the line-filling every historical roff back end does,
// without reproducing any one of them bit-for-bit.
type textWriter struct {
	w     *bufio.Writer
	col   int
	empty bool
}

func newTextWriter(w io.Writer) *textWriter {
	return &textWriter{w: bufio.NewWriter(w), empty: true}
}

func (t *textWriter) word(s string) {
	if s == "" {
		return
	}
	if t.col > 0 && t.col+1+len(s) > textWrapColumn {
		t.w.WriteByte('\n')
		t.col = 0
	} else if t.col > 0 {
		t.w.WriteByte(' ')
		t.col++
	}
	t.w.WriteString(s)
	t.col += len(s)
	t.empty = false
}

func (t *textWriter) newline() {
	if t.col > 0 {
		t.w.WriteByte('\n')
		t.col = 0
	}
}

func (t *textWriter) blankLine() {
	t.newline()
	if !t.empty {
		t.w.WriteByte('\n')
	}
}

// Text writes a mechanical word-wrapped rendering of root to w: section
// and subsection headings on their own (uppercased) line with a blank
// line before them, paragraph breaks as blank lines, everything else as
// flowed, wrapped text.
func Text(w io.Writer, root *tree.Root) error {
	tw := newTextWriter(w)
	if root.Meta.Title != "" {
		tw.word(root.Meta.Title + "(" + root.Meta.Section + ")")
		tw.newline()
		tw.empty = true
	}
	textChain(tw, root.Child)
	tw.newline()
	return tw.w.Flush()
}

func textChain(tw *textWriter, n *tree.Node) {
	for cur := n; cur != nil; cur = cur.Next {
		textNode(tw, cur)
	}
}

func textNode(tw *textWriter, n *tree.Node) {
	switch n.Kind {
	case tree.KindText:
		tw.word(n.Text)
		return
	}

	if isParagraphBreak(n) {
		tw.blankLine()
		return
	}

	if n.Kind == tree.KindBlock && isSectionHeading(n) {
		tw.blankLine()
		if n.Head != nil {
			words := collectWords(n.Head)
			tw.word(strings.ToUpper(strings.Join(words, " ")))
		}
		tw.newline()
		textChain(tw, n.Body)
		textChain(tw, n.Tail)
		textChain(tw, n.Child)
		return
	}

	if n.Kind == tree.KindBlock {
		textChain(tw, n.Head)
		textChain(tw, n.Body)
		textChain(tw, n.Tail)
	}
	textChain(tw, n.Child)
}

func collectWords(n *tree.Node) []string {
	var words []string
	for cur := n; cur != nil; cur = cur.Next {
		if cur.Kind == tree.KindText {
			words = append(words, cur.Text)
		}
		if cur.Child != nil {
			words = append(words, collectWords(cur.Child)...)
		}
	}
	return words
}
