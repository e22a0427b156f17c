// Package store is the ambient history/audit side-store: a parse-run
// ledger and a query-history table, kept separate from the bit-exact
// keyword/record database internal/index owns (see DESIGN.md for why
// that one is hand-rolled instead of going through gorm). Modeled on
// the teacher's models/models.go + db/sqlite.go split.
package store

import (
	"time"

	"gorm.io/datatypes"
)

// ParseRun is one row per document parsed: enough to drive an
// mandocdb.c-style incremental reindex (skip files whose mtime/size
// match a prior run) without internal/index itself knowing about the
// filesystem or a database.
type ParseRun struct {
	ID        uint      `gorm:"primaryKey"`
	Path      string    `gorm:"type:varchar(1024);index"`
	Size      int64     `gorm:"not null"`
	ModTime   time.Time `gorm:"not null"`
	Dialect   string    `gorm:"type:varchar(20)"`
	Severity  string    `gorm:"type:varchar(10)"` // highest diag.Severity reached
	DiagCount int       `gorm:"not null"`
	Diags     datatypes.JSON
	ParsedAt  time.Time `gorm:"autoCreateTime;index"`
}

// QueryHistory is one row per apropos/whatis invocation, for a CGI or
// CLI front end's "recent searches" feature.
type QueryHistory struct {
	ID        uint      `gorm:"primaryKey"`
	Raw       string    `gorm:"type:varchar(2048);not null"`
	Arch      string    `gorm:"type:varchar(64)"`
	Section   string    `gorm:"type:varchar(16)"`
	ResultN   int       `gorm:"not null"`
	RequestedAt time.Time `gorm:"autoCreateTime;index"`
}

func (ParseRun) TableName() string     { return "parse_runs" }
func (QueryHistory) TableName() string { return "query_history" }
