package model

import (
	"path"
	"time"
)

const CREATE_FILES_TABLE = `
CREATE TABLE IF NOT EXISTS files (
id INTEGER PRIMARY KEY AUTOINCREMENT,
name TEXT NOT NULL,
path TEXT NOT NULL,
ext TEXT NOT NULL,
created TEXT NOT NULL,
dateTaken TEXT,
size INTEGER NOT NULL,
camera TEXT,
hash TEXT
);`

const CREATE_FILES_HASH_INDEX = `CREATE INDEX IF NOT EXISTS idx_files_hash ON files(hash);`
const CREATE_FILES_PATH_INDEX = `CREATE INDEX IF NOT EXISTS idx_files_path ON files(path);`

// RootFolder is the path of files that sit directly under the catalog root.
const RootFolder = "."

type CatalogRecord struct {
	Id          int64      `json:"id"`
	Name        string     `json:"name"`
	Path        string     `json:"path"`
	Extension   string     `json:"ext"`
	CreatedAt   time.Time  `json:"created"`
	DateTaken   *time.Time `json:"date_taken,omitempty"`
	SizeBytes   int64      `json:"size"`
	Camera      *string    `json:"camera,omitempty"`
	ContentHash *string    `json:"hash,omitempty"`
}

// RelPath is the slash separated location of the file relative to the catalog root.
func (r CatalogRecord) RelPath() string {
	return path.Join(r.Path, r.Name)
}

type DateRange struct {
	Min time.Time
	Max time.Time
}

type DuplicateEntry struct {
	Path        string
	Name        string
	SizeBytes   int64
	ContentHash string
}

func (e DuplicateEntry) RelPath() string {
	return path.Join(e.Path, e.Name)
}

// DuplicateGroup holds every catalog entry sharing one content hash, at least two.
type DuplicateGroup struct {
	ContentHash string
	SizeBytes   int64
	Entries     []DuplicateEntry
}

// HashIndex maps content hashes to the relative paths carrying them.
// Records without a hash are kept apart, each one its own group.
type HashIndex struct {
	ByHash   map[string][]string
	Unhashed []string
}

func NewHashIndex() *HashIndex {
	return &HashIndex{ByHash: map[string][]string{}}
}

type FolderMapping struct {
	SourceFolder string
	DestFolder   string
}

type ExportPlan struct {
	// Path of the plan artifact this plan was read from, if any.
	Path     string
	Root     string
	Dest     string
	Mappings []FolderMapping
	// Folders left out because their names cannot be written as a mapping line.
	// Not persisted; export reports them as ignored.
	Excluded []string
}
