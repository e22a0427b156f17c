package mdoc

import (
	"strconv"
	"strings"

	"github.com/oxhq/manroff/internal/macro"
)

// widthTable gives each macro's canonical terminal cell-width, used to
// resolve a -width argument that names a macro instead of a literal, and
// to auto-inject -width on a -tag list that omits it (§3.7's example #4:
// Bl -tag with an Fl body auto-injects width 10). Values mirror the
// historical rendering widths; macros not listed here fall back to the
// default of 10 used for "unknown or not a fixed-width macro".
var widthTable = map[macro.ID]int{
	macro.Mdoc_Ar: 12,
	macro.Mdoc_Cm: 10,
	macro.Mdoc_Er: 17,
	macro.Mdoc_Ev: 15,
	macro.Mdoc_Fa: 12,
	macro.Mdoc_Fl: 10,
	macro.Mdoc_Ic: 10,
	macro.Mdoc_Li: 16,
	macro.Mdoc_Nm: 10,
	macro.Mdoc_Pa: 32,
	macro.Mdoc_Va: 12,
	macro.Mdoc_Vt: 12,
}

const defaultWidth = 10

// MacroWidth returns id's canonical cell-width, defaulting to 10 for any
// macro not listed in widthTable.
func MacroWidth(id macro.ID) int {
	if w, ok := widthTable[id]; ok {
		return w
	}
	return defaultWidth
}

// ResolveWidth implements the three-way width argument semantics: a
// numeric literal with an n/m cell-unit suffix, the indent/indent-two
// keywords, or a macro name resolved through MacroWidth via lookup.
func ResolveWidth(arg string) int {
	arg = strings.TrimSpace(arg)
	switch arg {
	case "indent":
		return 6
	case "indent-two":
		return 12
	}
	if n := strings.TrimSuffix(strings.TrimSuffix(arg, "n"), "m"); n != arg {
		if v, err := strconv.Atoi(n); err == nil {
			return v
		}
	}
	if id, ok := macro.Lookup(macro.DialectMdoc, arg); ok {
		return MacroWidth(id)
	}
	return defaultWidth
}

// AutoWidth implements the -tag-without-width auto-injection rule:
// scanning the first body element of a list item. A text element
// contributes strlen+1; a macro element contributes its canonical
// width; anything else warns (via the bool return) and defaults to 10.
func AutoWidth(firstIsText bool, text string, macroID macro.ID, hasMacro bool) (width int, warn bool) {
	switch {
	case firstIsText:
		return len(text) + 1, false
	case hasMacro:
		return MacroWidth(macroID), false
	default:
		return defaultWidth, true
	}
}
