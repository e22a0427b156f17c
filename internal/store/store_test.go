package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/oxhq/manroff/internal/diag"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "ledger.db"), false)
	require.NoError(t, err)
	return db
}

func TestOpenMigratesParseRunAndQueryHistoryTables(t *testing.T) {
	db := openTestDB(t)
	assert.True(t, db.Migrator().HasTable(&ParseRun{}))
	assert.True(t, db.Migrator().HasTable(&QueryHistory{}))
}

func TestRecordParseRunAndLastParseRun(t *testing.T) {
	db := openTestDB(t)
	col := diag.NewCollector("foo.1", diag.Fatal)
	col.Report(diag.Diagnostic{Severity: diag.Warning, Code: diag.CodeTrailingWhitespace, File: "foo.1", Message: "trailing whitespace"})

	now := time.Now().Truncate(time.Second)
	require.NoError(t, RecordParseRun(db, "foo.1", 42, now, "mdoc", col))

	last, err := LastParseRun(db, "foo.1")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, int64(42), last.Size)
	assert.Equal(t, "mdoc", last.Dialect)
	assert.Equal(t, "WARNING", last.Severity)
	assert.Equal(t, 1, last.DiagCount)
}

func TestLastParseRunReturnsNilWhenUnseen(t *testing.T) {
	db := openTestDB(t)
	last, err := LastParseRun(db, "never-seen.1")
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestNeedsReindexDetectsUnseenAndChangedFiles(t *testing.T) {
	db := openTestDB(t)
	now := time.Now().Truncate(time.Second)

	needs, err := NeedsReindex(db, "foo.1", 10, now)
	require.NoError(t, err)
	assert.True(t, needs, "a document never parsed before always needs indexing")

	col := diag.NewCollector("foo.1", diag.Fatal)
	require.NoError(t, RecordParseRun(db, "foo.1", 10, now, "mdoc", col))

	needs, err = NeedsReindex(db, "foo.1", 10, now)
	require.NoError(t, err)
	assert.False(t, needs, "matching size and mtime means the ledger's copy is current")

	needs, err = NeedsReindex(db, "foo.1", 11, now)
	require.NoError(t, err)
	assert.True(t, needs, "a changed size means the file was edited since the last run")
}

func TestRecordQueryAndRecentQueries(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, RecordQuery(db, "foo", "", "1", 3))
	require.NoError(t, RecordQuery(db, "bar", "amd64", "3", 0))

	recent, err := RecentQueries(db, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "bar", recent[0].Raw, "most recent query first")
	assert.Equal(t, "foo", recent[1].Raw)
}
