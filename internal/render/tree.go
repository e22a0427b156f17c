// Package render implements the mechanical, out-of-scope-but-still-
// useful output back ends: an indented tree dump, a plain text dump,
// and a diff mode between two renders of the same document. None of
// these reproduce any historical renderer's visual output bit-for-bit
// (spec.md's Non-goals rule that out); they exist so a caller can see
// what a parse produced without a typesetting engine.
package render

import (
	"fmt"
	"io"

	"github.com/oxhq/manroff/internal/macro"
	"github.com/oxhq/manroff/internal/tree"
)

// Tree writes an indented "name (kind)" dump of root to w, one node per
// line, in the style of original_source's tree.c print_node: each
// level of nesting adds four spaces, and a node's dialect-qualified
// macro name stands in for mdoc_macronames[n->tok].
func Tree(w io.Writer, root *tree.Root) error {
	if _, err := fmt.Fprintf(w, "root (%s, %q)\n", root.Meta.Section, root.Meta.Title); err != nil {
		return err
	}
	return treeChain(w, root.Child, 1)
}

func treeChain(w io.Writer, n *tree.Node, indent int) error {
	for cur := n; cur != nil; cur = cur.Next {
		if err := treeNode(w, cur, indent); err != nil {
			return err
		}
	}
	return nil
}

func treeNode(w io.Writer, n *tree.Node, indent int) error {
	if err := writeIndent(w, indent); err != nil {
		return err
	}

	label := macro.Name(n.Dialect, n.ID)
	switch n.Kind {
	case tree.KindText:
		if _, err := fmt.Fprintf(w, "text (%q)\n", n.Text); err != nil {
			return err
		}
		return nil
	case tree.KindRoot:
		if _, err := fmt.Fprintln(w, "root"); err != nil {
			return err
		}
	default:
		if _, err := fmt.Fprintf(w, "%s (%s)\n", label, n.Kind); err != nil {
			return err
		}
	}

	if n.Kind == tree.KindBlock {
		if err := labeledChain(w, "head", n.Head, indent+1); err != nil {
			return err
		}
		if err := labeledChain(w, "body", n.Body, indent+1); err != nil {
			return err
		}
		if err := labeledChain(w, "tail", n.Tail, indent+1); err != nil {
			return err
		}
	}
	return treeChain(w, n.Child, indent+1)
}

func labeledChain(w io.Writer, label string, n *tree.Node, indent int) error {
	if n == nil {
		return nil
	}
	if err := writeIndent(w, indent); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s:\n", label); err != nil {
		return err
	}
	return treeChain(w, n, indent+1)
}

func writeIndent(w io.Writer, indent int) error {
	for i := 0; i < indent; i++ {
		if _, err := io.WriteString(w, "    "); err != nil {
			return err
		}
	}
	return nil
}
