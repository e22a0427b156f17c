package render

import (
	"bytes"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/oxhq/manroff/internal/tree"
)

// Diff renders a and b (e.g. two parses of the same document before
// and after an edit, or a text render vs. a tree render) and returns a
// unified diff between them, grounded on the teacher's own
// difflib.UnifiedDiff usage for diffing transformation output.
func Diff(filename string, a, b *tree.Root, render func(*tree.Root) (string, error)) (string, error) {
	aText, err := render(a)
	if err != nil {
		return "", err
	}
	bText, err := render(b)
	if err != nil {
		return "", err
	}

	d := difflib.UnifiedDiff{
		A:        difflib.SplitLines(aText),
		B:        difflib.SplitLines(bText),
		FromFile: filename,
		ToFile:   filename + " (new)",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(d)
}

// RenderText adapts Text to Diff's render signature.
func RenderText(root *tree.Root) (string, error) {
	var buf bytes.Buffer
	if err := Text(&buf, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderTree adapts Tree to Diff's render signature.
func RenderTree(root *tree.Root) (string, error) {
	var buf bytes.Buffer
	if err := Tree(&buf, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}
