package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"phototree/database"
	"phototree/database/model"
	L "phototree/logger"
)

// CatalogRepository is the index store over the files table.
type CatalogRepository interface {
	InsertBatch(ctx context.Context, records []model.CatalogRecord) error
	Reset(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
	DistinctFolders(ctx context.Context) ([]string, error)
	DateRange(ctx context.Context, folder string) (*model.DateRange, error)
	FindDuplicates(ctx context.Context) ([]model.DuplicateEntry, error)
	AllRecords(ctx context.Context) (*model.HashIndex, error)
	GetByFolder(ctx context.Context, folder string) ([]model.CatalogRecord, error)
	ImagesInFolder(ctx context.Context, folder string, imageExtensions []string) ([]model.CatalogRecord, error)
}

type catalogRepository struct {
	db *database.DB
}

func NewCatalogRepository(db *database.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

const selectRecordColumns = `id, name, path, ext, created, dateTaken, size, camera, hash`

// InsertBatch writes all records in one transaction. Either every record lands or none.
func (r *catalogRepository) InsertBatch(ctx context.Context, records []model.CatalogRecord) error {
	if len(records) == 0 {
		return nil
	}
	tx, err := r.db.D.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db: could not begin batch: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			err := tx.Rollback()
			if err != nil {
				L.Debug(fmt.Sprintf("db: rollback failed: %v", err))
				return
			}
			L.Debug("db: InsertBatch failure rollback success.")
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
  INSERT INTO files
  (name, path, ext, created, dateTaken, size, camera, hash)
  VALUES
  (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("db: could not prepare batch insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		_, err = stmt.ExecContext(ctx,
			rec.Name,
			rec.Path,
			rec.Extension,
			database.ToTimeStr(rec.CreatedAt),
			database.NullTimeStr(rec.DateTaken),
			rec.SizeBytes,
			database.NullStr(rec.Camera),
			database.NullStr(rec.ContentHash),
		)
		if err != nil {
			return fmt.Errorf("db: could not insert %s: %w", rec.RelPath(), err)
		}
	}
	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("db: could not commit batch: %w", err)
	}
	committed = true
	return nil
}

// Reset deletes every row but keeps the schema.
func (r *catalogRepository) Reset(ctx context.Context) error {
	_, err := r.db.D.ExecContext(ctx, `DELETE FROM files`)
	if err != nil {
		return fmt.Errorf("db: could not reset catalog: %w", err)
	}
	return nil
}

func (r *catalogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.D.QueryRowContext(ctx, `SELECT COUNT(*) FROM files`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *catalogRepository) DistinctFolders(ctx context.Context) ([]string, error) {
	rows, err := r.db.D.QueryContext(ctx, `SELECT DISTINCT path FROM files ORDER BY path ASC`)
	if err != nil {
		return nil, fmt.Errorf("db: could not list folders: %w", err)
	}
	defer rows.Close()
	var folders []string
	for rows.Next() {
		var folder string
		if err := rows.Scan(&folder); err != nil {
			return nil, err
		}
		folders = append(folders, folder)
	}
	return folders, rows.Err()
}

// DateRange returns database.ErrDoesNotExist when no record in the folder has a date taken.
func (r *catalogRepository) DateRange(ctx context.Context, folder string) (*model.DateRange, error) {
	var minStr, maxStr sql.NullString
	err := r.db.D.QueryRowContext(ctx,
		`SELECT MIN(dateTaken), MAX(dateTaken) FROM files
     WHERE path = ? AND dateTaken IS NOT NULL AND dateTaken <> ''`,
		folder,
	).Scan(&minStr, &maxStr)
	if err != nil {
		return nil, fmt.Errorf("db: could not compute date range of %s: %w", folder, err)
	}
	minDate := database.TimeFromNull(minStr)
	maxDate := database.TimeFromNull(maxStr)
	if minDate == nil || maxDate == nil {
		return nil, database.ErrDoesNotExist
	}
	return &model.DateRange{Min: *minDate, Max: *maxDate}, nil
}

// FindDuplicates lists every record whose hash is shared by another record.
// Largest files first; groups of equal size keep the order their hash was first inserted.
func (r *catalogRepository) FindDuplicates(ctx context.Context) ([]model.DuplicateEntry, error) {
	rows, err := r.db.D.QueryContext(ctx, `
  SELECT f.path, f.name, f.size, f.hash
  FROM files f
  JOIN (
    SELECT hash, MIN(id) AS first_id
    FROM files
    WHERE hash IS NOT NULL AND hash <> ''
    GROUP BY hash
    HAVING COUNT(hash) > 1
  ) s ON f.hash = s.hash
  ORDER BY f.size DESC, s.first_id ASC, f.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("db: could not query duplicates: %w", err)
	}
	defer rows.Close()
	var entries []model.DuplicateEntry
	for rows.Next() {
		var e model.DuplicateEntry
		if err := rows.Scan(&e.Path, &e.Name, &e.SizeBytes, &e.ContentHash); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *catalogRepository) AllRecords(ctx context.Context) (*model.HashIndex, error) {
	rows, err := r.db.D.QueryContext(ctx, `SELECT path, name, hash FROM files ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("db: could not read catalog: %w", err)
	}
	defer rows.Close()
	index := model.NewHashIndex()
	for rows.Next() {
		var folder, name string
		var hash sql.NullString
		if err := rows.Scan(&folder, &name, &hash); err != nil {
			return nil, err
		}
		rec := model.CatalogRecord{Path: folder, Name: name}
		if !hash.Valid || hash.String == "" {
			index.Unhashed = append(index.Unhashed, rec.RelPath())
			continue
		}
		index.ByHash[hash.String] = append(index.ByHash[hash.String], rec.RelPath())
	}
	return index, rows.Err()
}

func (r *catalogRepository) GetByFolder(ctx context.Context, folder string) ([]model.CatalogRecord, error) {
	rows, err := r.db.D.QueryContext(ctx,
		`SELECT `+selectRecordColumns+` FROM files WHERE path = ? ORDER BY name ASC`,
		folder)
	if err != nil {
		return nil, fmt.Errorf("db: could not list %s: %w", folder, err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// ImagesInFolder lists the records of folder whose extension is one of imageExtensions.
func (r *catalogRepository) ImagesInFolder(ctx context.Context, folder string, imageExtensions []string) ([]model.CatalogRecord, error) {
	if len(imageExtensions) == 0 {
		return nil, nil
	}
	exts := make([]string, len(imageExtensions))
	copy(exts, imageExtensions)
	sort.Strings(exts)

	args := make([]any, 0, len(exts)+1)
	args = append(args, folder)
	for _, e := range exts {
		args = append(args, strings.ToLower(e))
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(exts)), ",")

	rows, err := r.db.D.QueryContext(ctx,
		`SELECT `+selectRecordColumns+` FROM files WHERE path = ? AND ext IN (`+placeholders+`) ORDER BY name ASC`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("db: could not list images of %s: %w", folder, err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]model.CatalogRecord, error) {
	var records []model.CatalogRecord
	for rows.Next() {
		var rec model.CatalogRecord
		var createdStr string
		var dateTaken, camera, hash sql.NullString
		err := rows.Scan(&rec.Id, &rec.Name, &rec.Path, &rec.Extension,
			&createdStr, &dateTaken, &rec.SizeBytes, &camera, &hash)
		if err != nil {
			return nil, err
		}
		rec.CreatedAt = database.FromTimeStr(createdStr)
		rec.DateTaken = database.TimeFromNull(dateTaken)
		rec.Camera = database.StrFromNull(camera)
		rec.ContentHash = database.StrFromNull(hash)
		records = append(records, rec)
	}
	return records, rows.Err()
}
