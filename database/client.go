package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"phototree/database/model"
	L "phototree/logger"

	_ "modernc.org/sqlite"
)

const DateTimeFormat = "2006-01-02 15:04:05"

var ErrDoesNotExist = errors.New("db: entry does not exist")

// DB owns the single catalog connection. It is not safe for concurrent callers.
type DB struct {
	D             *sql.DB
	connectionUri string
}

func NewDB(dbPath string) (*DB, error) {
	d, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// one connection keeps ":memory:" catalogs alive and serialises every transaction
	d.SetMaxOpenConns(1)
	return &DB{
		D:             d,
		connectionUri: dbPath,
	}, nil
}

func (db *DB) createTables(ctx context.Context) error {
	for _, stmt := range []string{
		model.CREATE_FILES_TABLE,
		model.CREATE_FILES_HASH_INDEX,
		model.CREATE_FILES_PATH_INDEX,
	} {
		_, err := db.D.ExecContext(ctx, stmt)
		if err != nil {
			return fmt.Errorf("db: could not create schema in %s: %w", db.connectionUri, err)
		}
	}
	L.Debug(fmt.Sprintf("db: schema ready in %s", db.connectionUri))
	return nil
}

// Init creates the schema if missing. Existing rows are left untouched.
func (db *DB) Init(ctx context.Context) error {
	return db.createTables(ctx)
}

func (db *DB) Path() string {
	return db.connectionUri
}

func (db *DB) Close(ctx context.Context) error {
	L.Debug(fmt.Sprintf("db: closing %s", db.connectionUri))
	return db.D.Close()
}

func ToTimeStr(t time.Time) string {
	return t.Local().Format(DateTimeFormat)
}

func FromTimeStr(ts string) time.Time {
	t, err := time.ParseInLocation(DateTimeFormat, ts, time.Local)
	if err != nil {
		L.Error(fmt.Errorf("couldnt parse time for %s: %w", ts, err))
		return time.Time{}
	}
	return t
}

// NullTimeStr stores nil as SQL NULL.
func NullTimeStr(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: ToTimeStr(*t), Valid: true}
}

func NullStr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func TimeFromNull(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	t := FromTimeStr(ns.String)
	if t.IsZero() {
		return nil
	}
	return &t
}

func StrFromNull(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
