package index

import (
	"encoding/binary"
	"fmt"
	"os"
	"sort"

	"github.com/oxhq/manroff/internal/tree"
)

// shadowSuffix names the temp files a Writer stages into before its final
// atomic rename, the same discipline core/atomicwriter.go uses for a
// single file: write fully under a suffixed name, then os.Rename into
// place so a concurrent reader only ever observes a complete file. Unlike
// that teacher code, no file-based lock is taken here: §5 of the design
// this implements states there is no in-process lock, and correctness
// relies solely on the rename being atomic, with a single writer assumed.
const shadowSuffix = ".shadow"

// KeywordFile and RecordFile name the two on-disk files a Writer
// produces, conventionally siblings inside an index directory.
const (
	KeywordFile = "mandoc.db"
	RecordFile  = "mandoc.rec"
)

// entry is one (keyword, class, record number) triple pending flush.
type entry struct {
	keyword string
	class   Class
	record  uint32
}

// Writer accumulates keywords and records across any number of documents
// (one Add call per successfully parsed document) and flushes them to
// disk as a matched keyword-file/record-file pair in one Flush call.
//
// Add is not safe for concurrent use; §5's resource model has each
// worker own its own parser instance, so a whole-tree reindex driver
// (cmd/manroff index) partitions documents across workers that each
// build an independent Writer and Flush to distinct shadow paths, or
// funnels Add calls through a single owning goroutine.
type Writer struct {
	records []Record
	entries []entry
	interns map[string]string
}

// NewWriter returns an empty Writer ready to accumulate documents.
func NewWriter() *Writer {
	return &Writer{interns: map[string]string{}}
}

// Add extracts filename's record and keywords from root and buffers them.
// The per-keyword class dedup (OR-folding duplicate class tags on the
// same keyword within this one document) happens here, before the
// keyword ever reaches the shared entries slice, so a term repeated N
// times in one document contributes one entry per distinct class
// combination it actually carried, not N entries.
func (w *Writer) Add(filename string, root *tree.Root) {
	rec, keywords := Extract(filename, root)
	recNum := uint32(len(w.records) + 1)
	w.records = append(w.records, rec)

	folded := map[string]Class{}
	for _, kw := range keywords {
		folded[w.intern(kw.Text)] |= kw.Class
	}
	for text, class := range folded {
		w.entries = append(w.entries, entry{keyword: text, class: class, record: recNum})
	}
}

// intern returns the single shared string for s, so repeated keywords
// across many documents do not each allocate their own copy.
func (w *Writer) intern(s string) string {
	if v, ok := w.interns[s]; ok {
		return v
	}
	w.interns[s] = s
	return s
}

// Flush writes both files into dir via shadow-file staging and an atomic
// rename, in keyword-byte order so internal/search can stream the
// keyword file sequentially. A failure opening either shadow file aborts
// before anything is renamed into place, leaving any previously-committed
// pair untouched.
func (w *Writer) Flush(dir string) error {
	sort.SliceStable(w.entries, func(i, j int) bool {
		return w.entries[i].keyword < w.entries[j].keyword
	})

	recPath := dir + "/" + RecordFile
	kwPath := dir + "/" + KeywordFile

	recShadow := recPath + shadowSuffix
	recFile, err := os.OpenFile(recShadow, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("index: opening record shadow file: %w", err)
	}
	for i, rec := range w.records {
		if _, err := recFile.Write(encodeRecord(rec)); err != nil {
			recFile.Close()
			os.Remove(recShadow)
			return fmt.Errorf("index: writing record %d: %w", i+1, err)
		}
	}
	if err := recFile.Close(); err != nil {
		os.Remove(recShadow)
		return fmt.Errorf("index: closing record shadow file: %w", err)
	}

	kwShadow := kwPath + shadowSuffix
	kwFile, err := os.OpenFile(kwShadow, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		os.Remove(recShadow)
		return fmt.Errorf("index: opening keyword shadow file: %w", err)
	}
	var lenBuf [4]byte
	var valBuf [8]byte
	for _, e := range w.entries {
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(e.keyword)))
		if _, err := kwFile.Write(lenBuf[:]); err != nil {
			kwFile.Close()
			os.Remove(kwShadow)
			os.Remove(recShadow)
			return fmt.Errorf("index: writing keyword length: %w", err)
		}
		if _, err := kwFile.WriteString(e.keyword); err != nil {
			kwFile.Close()
			os.Remove(kwShadow)
			os.Remove(recShadow)
			return fmt.Errorf("index: writing keyword: %w", err)
		}
		binary.LittleEndian.PutUint32(valBuf[0:4], uint32(e.class))
		binary.LittleEndian.PutUint32(valBuf[4:8], e.record)
		if _, err := kwFile.Write(valBuf[:]); err != nil {
			kwFile.Close()
			os.Remove(kwShadow)
			os.Remove(recShadow)
			return fmt.Errorf("index: writing keyword value: %w", err)
		}
	}
	if err := kwFile.Close(); err != nil {
		os.Remove(kwShadow)
		os.Remove(recShadow)
		return fmt.Errorf("index: closing keyword shadow file: %w", err)
	}

	if err := os.Rename(recShadow, recPath); err != nil {
		os.Remove(kwShadow)
		os.Remove(recShadow)
		return fmt.Errorf("index: renaming record file into place: %w", err)
	}
	if err := os.Rename(kwShadow, kwPath); err != nil {
		return fmt.Errorf("index: renaming keyword file into place: %w", err)
	}
	return nil
}
