package search

import (
	"sort"
	"strings"

	"github.com/oxhq/manroff/internal/index"
)

// Result is one matching record delivered to Execute's callback.
type Result struct {
	Record index.Record
	Number uint32
}

// Execute streams dir's keyword file exactly once (per spec.md's
// evaluation model), building a per-record bit-vector as terms match,
// then reports every record whose bit-vector satisfies q to report, in
// record-number order.
//
// Record-number ordering and dedup is maintained with a plain map plus a
// final sort rather than a hand-written binary search tree: Go's
// standard idiom for "insert out of order, read back sorted" is a sorted
// collection built once at the end, and it gives the identical ordering
// and duplicate-folding guarantee spec.md asks for.
func Execute(dir string, q *Query, report func(Result) error) error {
	records, err := index.Records(dir)
	if err != nil {
		return err
	}

	bits := map[uint32]uint64{}
	err = index.ScanKeywords(dir, func(e index.KeywordEntry) error {
		for _, t := range q.Terms {
			if e.Class&t.Types == 0 {
				continue
			}
			if matchTerm(t, e.Keyword) {
				bits[e.Record] |= 1 << uint(t.index)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	matched := make([]uint32, 0, len(bits))
	for num, b := range bits {
		if !q.Eval(b) {
			continue
		}
		rec, ok := index.RecordAt(records, num)
		if !ok {
			continue
		}
		if q.Arch != "" && rec.Architecture != q.Arch {
			continue
		}
		if q.Section != "" && rec.Section != q.Section {
			continue
		}
		matched = append(matched, num)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i] < matched[j] })

	for _, num := range matched {
		rec, _ := index.RecordAt(records, num)
		if err := report(Result{Record: rec, Number: num}); err != nil {
			return err
		}
	}
	return nil
}

func matchTerm(t *Term, keyword string) bool {
	if t.Op == OpRegex {
		return t.re.MatchString(keyword)
	}
	if t.CaseInsensitive {
		return strings.Contains(strings.ToLower(keyword), strings.ToLower(t.Value))
	}
	return strings.Contains(keyword, t.Value)
}
