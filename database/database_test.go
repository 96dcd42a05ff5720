package database

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestNewDB(t *testing.T) {
	t.Run("InvalidPath", func(t *testing.T) {
		tempDir, err := os.MkdirTemp("", "test-db")
		assert.NoError(t, err)
		defer os.RemoveAll(tempDir)

		db, err := NewDB(tempDir)
		assert.NoError(t, err) // NewDB doesn't return an error for a directory
		defer db.Close(context.Background())

		err = db.Init(context.Background())
		assert.Error(t, err)
	})

	t.Run("ValidPath", func(t *testing.T) {
		db, err := NewDB(":memory:")
		assert.NoError(t, err)
		assert.NotNil(t, db)
		defer db.Close(context.Background())

		err = db.D.Ping()
		assert.NoError(t, err)
	})
}

func TestDB_createTables(t *testing.T) {
	db, err := NewDB(":memory:")
	assert.NoError(t, err)
	defer db.Close(context.Background())

	t.Run("Success", func(t *testing.T) {
		err := db.createTables(context.Background())
		assert.NoError(t, err)

		rows, err := db.D.Query("SELECT name FROM sqlite_master WHERE type IN ('table','index')")
		assert.NoError(t, err)

		var names []string
		for rows.Next() {
			var name string
			assert.NoError(t, rows.Scan(&name))
			names = append(names, name)
		}
		rows.Close()

		assert.Contains(t, names, "files")
		assert.Contains(t, names, "idx_files_hash")
		assert.Contains(t, names, "idx_files_path")
	})

	t.Run("Idempotent", func(t *testing.T) {
		err := db.createTables(context.Background())
		assert.NoError(t, err)
	})
}

func TestInitKeepsExistingRows(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	db, err := NewDB(dbPath)
	require.NoError(t, err)
	require.NoError(t, db.Init(ctx))
	_, err = db.D.ExecContext(ctx,
		`INSERT INTO files (name, path, ext, created, size) VALUES (?,?,?,?,?)`,
		"a.jpg", ".", ".jpg", ToTimeStr(time.Now()), 10)
	require.NoError(t, err)
	require.NoError(t, db.Close(ctx))

	db, err = NewDB(dbPath)
	require.NoError(t, err)
	defer db.Close(ctx)
	require.NoError(t, db.Init(ctx))

	var count int
	require.NoError(t, db.D.QueryRowContext(ctx, "SELECT COUNT(*) FROM files").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestTimeStr(t *testing.T) {
	ts := time.Date(2019, 6, 1, 12, 30, 45, 0, time.Local)
	s := ToTimeStr(ts)
	assert.Equal(t, "2019-06-01 12:30:45", s)
	assert.True(t, ts.Equal(FromTimeStr(s)))
	assert.True(t, FromTimeStr("garbage").IsZero())
}

func TestNullHelpers(t *testing.T) {
	assert.False(t, NullTimeStr(nil).Valid)
	assert.False(t, NullStr(nil).Valid)
	assert.Nil(t, TimeFromNull(sql.NullString{}))
	assert.Nil(t, StrFromNull(sql.NullString{}))

	camera := "Canon EOS"
	ns := NullStr(&camera)
	assert.True(t, ns.Valid)
	assert.Equal(t, "Canon EOS", *StrFromNull(ns))

	ts := time.Date(2020, 1, 2, 3, 4, 5, 0, time.Local)
	back := TimeFromNull(NullTimeStr(&ts))
	require.NotNil(t, back)
	assert.True(t, ts.Equal(*back))
}
