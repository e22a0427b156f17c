package man

import (
	"fmt"
	"strings"

	"github.com/oxhq/manroff/internal/tree"
)

// ApplyTH records TH's positional words onto meta: title, manual section,
// an optional free-text date, optional source, and optional volume title.
// Unlike mdoc's three-macro Dd/Dt/Os prologue, man(7) packs everything into
// one line, so there is no ordering to enforce — only repetition.
func ApplyTH(meta *tree.Meta, words []string) error {
	if meta.Title != "" {
		return fmt.Errorf("man: TH: repeated prologue macro")
	}
	if len(words) == 0 {
		meta.Title = "UNTITLED"
		return nil
	}
	meta.Title = strings.ToUpper(words[0])
	if len(words) > 1 {
		meta.Section = words[1]
	}
	if len(words) > 2 {
		meta.Date = words[2]
	}
	if len(words) > 3 {
		meta.Source = words[3]
	}
	if len(words) > 4 {
		meta.Volume = strings.Join(words[4:], " ")
	}
	return nil
}
