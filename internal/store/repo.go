package store

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/oxhq/manroff/internal/diag"
)

// RecordParseRun appends one row to the parse-run ledger. Callers pass
// the diag.Collector a parse just produced; its Worst() severity and
// Diagnostics() are flattened onto the row.
func RecordParseRun(db *gorm.DB, path string, size int64, modTime time.Time, dialect string, col *diag.Collector) error {
	diagsJSON, err := json.Marshal(col.Diagnostics())
	if err != nil {
		diagsJSON = []byte("[]")
	}
	run := ParseRun{
		Path:      path,
		Size:      size,
		ModTime:   modTime,
		Dialect:   dialect,
		Severity:  col.Worst().String(),
		DiagCount: len(col.Diagnostics()),
		Diags:     datatypes.JSON(diagsJSON),
	}
	return db.Create(&run).Error
}

// LastParseRun returns the most recent ledger row for path, if any.
// cmd/manroff index uses this for mandocdb.c's incremental-reindex
// check: a document whose current size/mtime match its last recorded
// run can be skipped.
func LastParseRun(db *gorm.DB, path string) (*ParseRun, error) {
	var run ParseRun
	err := db.Where("path = ?", path).Order("parsed_at DESC").First(&run).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// NeedsReindex reports whether path must be reparsed: no prior run
// exists, or its recorded size/mtime no longer match.
func NeedsReindex(db *gorm.DB, path string, size int64, modTime time.Time) (bool, error) {
	last, err := LastParseRun(db, path)
	if err != nil {
		return false, err
	}
	if last == nil {
		return true, nil
	}
	return last.Size != size || !last.ModTime.Equal(modTime), nil
}

// RecordQuery appends one row to the query-history table.
func RecordQuery(db *gorm.DB, raw, arch, section string, resultCount int) error {
	return db.Create(&QueryHistory{
		Raw:     raw,
		Arch:    arch,
		Section: section,
		ResultN: resultCount,
	}).Error
}

// RecentQueries returns the n most recently recorded queries, most
// recent first.
func RecentQueries(db *gorm.DB, n int) ([]QueryHistory, error) {
	var out []QueryHistory
	err := db.Order("requested_at DESC").Limit(n).Find(&out).Error
	return out, err
}
