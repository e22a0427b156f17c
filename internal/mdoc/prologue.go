// Package mdoc implements the structured-dialect (mdoc) per-macro
// handler families (§4.6), driven by internal/macro's table and
// internal/tree's builder. Handlers are grouped by family rather than
// written one-per-macro, mirroring the table-of-function-pointers shape
// the dialect's own prologue/action code uses.
package mdoc

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/oxhq/manroff/internal/diag"
	"github.com/oxhq/manroff/internal/tree"
)

// monthByName maps the three-letter month abbreviations used by the Dd
// date form ("Month Day, Year") to their numeric value.
var monthByName = map[string]int{
	"Jan": 1, "Feb": 2, "Mar": 3, "Apr": 4, "May": 5, "Jun": 6,
	"Jul": 7, "Aug": 8, "Sep": 9, "Oct": 10, "Nov": 11, "Dec": 12,
}

// ParseDate resolves Dd's argument: "Month Day, Year", the literal
// "$Mdocdate: Month Day Year $" RCS-keyword form, or "today". Month is
// either a three-letter abbreviation ("Jan") or the full name ("January").
func ParseDate(arg string) (time.Time, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return time.Time{}, fmt.Errorf("mdoc: Dd requires a date argument")
	}
	if strings.EqualFold(arg, "today") {
		return time.Now().UTC(), nil
	}
	fields := arg
	if strings.HasPrefix(arg, "$Mdocdate:") {
		fields = strings.TrimSuffix(strings.TrimPrefix(arg, "$Mdocdate:"), "$")
	}
	fields = strings.ReplaceAll(fields, ",", " ")
	parts := strings.Fields(fields)
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("mdoc: Dd: unparsable date %q", arg)
	}
	month, ok := monthByName[parts[0]]
	if !ok {
		for m := time.January; m <= time.December; m++ {
			if parts[0] == m.String() {
				month, ok = int(m), true
			}
		}
	}
	if !ok {
		return time.Time{}, fmt.Errorf("mdoc: Dd: unknown month %q", parts[0])
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("mdoc: Dd: bad day %q", parts[1])
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("mdoc: Dd: bad year %q", parts[2])
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// ApplyDd records Dd's date onto meta, formatted ISO 8601. A date that
// fails to parse warns through sink and falls back to the current time,
// rather than rejecting the document outright.
func ApplyDd(meta *tree.Meta, arg string, line, col int, sink diag.Sink) error {
	if meta.Date != "" {
		return fmt.Errorf("mdoc: Dd: repeated prologue macro")
	}
	d, err := ParseDate(arg)
	if err != nil {
		diag.Report(sink, diag.Warning, line, col, diag.CodeBadDateSyntax, "Dd: %s, using current date", err)
		d = time.Now().UTC()
	}
	meta.Date = d.Format("2006-01-02")
	return nil
}

// ApplyDt records Dt's words onto meta: title, manual section, an
// optional volume (a known volume-name keyword, e.g. "URM", or a custom
// string), and an optional fourth architecture word (e.g. "i386", as
// section-9 pages use), recorded whatever the section. Dd must already
// have run (prologue order: Dd, Dt, Os).
func ApplyDt(meta *tree.Meta, words []string) error {
	if meta.Date == "" {
		return fmt.Errorf("mdoc: Dt: must follow Dd in the prologue")
	}
	if meta.Title != "" {
		return fmt.Errorf("mdoc: Dt: repeated prologue macro")
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
		meta.Volume = words[2]
	}
	if len(words) > 3 {
		meta.Arch = words[3]
	}
	return nil
}

// ApplyOs records Os's operating-system words onto meta. Dt must already
// have run.
func ApplyOs(meta *tree.Meta, words []string) error {
	if meta.Title == "" {
		return fmt.Errorf("mdoc: Os: must follow Dt in the prologue")
	}
	if meta.OS != "" {
		return fmt.Errorf("mdoc: Os: repeated prologue macro")
	}
	if len(words) == 0 {
		meta.OS = "OSNAME"
		return nil
	}
	meta.OS = strings.Join(words, " ")
	return nil
}

// NameMemory implements the Nm program-name memory feature: the first Nm
// invocation's argument is recorded; every subsequent bare Nm (no
// arguments of its own) is filled in from that memory instead of
// emitting an empty node.
type NameMemory struct {
	name string
	set  bool
}

// Resolve returns the name to use for this Nm invocation: if words is
// non-empty, it both records and returns the first word; if words is
// empty, it returns the previously recorded name (possibly "").
func (m *NameMemory) Resolve(words []string) string {
	if len(words) > 0 {
		m.name = words[0]
		m.set = true
		return m.name
	}
	return m.name
}

// Known reports whether any Nm invocation has recorded a name yet.
func (m *NameMemory) Known() bool { return m.set }
