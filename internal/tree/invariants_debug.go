//go:build manroffdebug

package tree

import "fmt"

// CheckInvariants walks root and verifies the tree-shape and
// ownership-acyclicity invariants (§4.5/§9): every node's parent/child/
// sibling pointers are mutually consistent, and the first-child +
// next-sibling graph reaches every node exactly once. It is compiled
// only under -tags manroffdebug; production builds never pay for it.
func CheckInvariants(root *Root) error {
	seen := make(map[*Node]bool)
	return walkCheck(root.Child, nil, seen)
}

func walkCheck(n, parent *Node, seen map[*Node]bool) error {
	var prev *Node
	for cur := n; cur != nil; cur = cur.Next {
		if seen[cur] {
			return fmt.Errorf("tree: node at %d:%d reached twice (cycle)", cur.Line, cur.Column)
		}
		seen[cur] = true
		if cur.Parent != parent {
			return fmt.Errorf("tree: node at %d:%d has inconsistent parent pointer", cur.Line, cur.Column)
		}
		if cur.Prev != prev {
			return fmt.Errorf("tree: node at %d:%d has inconsistent prev-sibling pointer", cur.Line, cur.Column)
		}
		if cur.Kind == KindBlock {
			if err := checkSubRegionOrder(cur); err != nil {
				return err
			}
			for _, sub := range []*Node{cur.Head, cur.Body, cur.Tail} {
				if sub != nil {
					if err := walkCheck(sub, cur, seen); err != nil {
						return err
					}
				}
			}
		}
		if err := walkCheck(cur.Child, cur, seen); err != nil {
			return err
		}
		prev = cur
	}
	return nil
}

// checkSubRegionOrder enforces that a Block's populated sub-regions
// appear only as Head, Body, Tail — never out of that order relative to
// one another (a Body set without a Head is fine; a Tail set without a
// Body is fine; but the fields themselves are named slots, not a chain,
// so no ordering check beyond kind-tagging is structurally possible —
// this function exists as the hook future per-macro rules can extend).
func checkSubRegionOrder(block *Node) error {
	for _, sub := range []*Node{block.Head, block.Body, block.Tail} {
		if sub != nil && sub.Parent != block {
			return fmt.Errorf("tree: block at %d:%d has a sub-region with a mismatched parent", block.Line, block.Column)
		}
	}
	return nil
}
