package fingerprint

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"phototree/checksum"
	"phototree/config"
	"phototree/database/model"
	L "phototree/logger"

	"github.com/rwcarlsen/goexif/exif"
	"gopkg.in/djherbis/times.v1"
)

const exifDateTimeLayout = "2006:01:02 15:04:05"

var ErrNotRegular = errors.New("fingerprint: not a regular file")

type Options struct {
	ImageExtensions []string
	UseHash         bool
	HashAlgorithm   config.HashAlgorithm
}

type Fingerprinter struct {
	opts       Options
	imageTypes map[string]struct{}
}

func New(opts Options) *Fingerprinter {
	imageTypes := make(map[string]struct{}, len(opts.ImageExtensions))
	for _, ext := range config.NormalizeExtensions(opts.ImageExtensions) {
		imageTypes[ext] = struct{}{}
	}
	if opts.HashAlgorithm == "" {
		opts.HashAlgorithm = config.HASH_MD5
	}
	return &Fingerprinter{opts: opts, imageTypes: imageTypes}
}

// IsImage reports whether the lowercased extension (with leading dot) is a configured image type.
func (f *Fingerprinter) IsImage(ext string) bool {
	_, ok := f.imageTypes[strings.ToLower(ext)]
	return ok
}

// Fingerprint builds the catalog record of filePath, with its folder stored relative to root.
// Unreadable files fail; EXIF problems only leave DateTaken or Camera unset.
func (f *Fingerprinter) Fingerprint(root string, filePath string) (*model.CatalogRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("fingerprint: could not open %s: %w", filePath, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("fingerprint: could not stat %s: %w", filePath, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, filePath)
	}

	folder, err := relativeFolder(root, filePath)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(filePath)
	rec := &model.CatalogRecord{
		Name:      name,
		Path:      folder,
		Extension: strings.ToLower(filepath.Ext(name)),
		CreatedAt: createdAt(filePath, info),
		SizeBytes: info.Size(),
	}

	if f.IsImage(rec.Extension) {
		rec.DateTaken, rec.Camera = readExif(file, filePath)
	}

	if f.opts.UseHash {
		digest, err := checksum.FileDigest(filePath, f.opts.HashAlgorithm)
		if err != nil {
			return nil, fmt.Errorf("fingerprint: could not hash %s: %w", filePath, err)
		}
		rec.ContentHash = &digest
	}
	return rec, nil
}

func relativeFolder(root string, filePath string) (string, error) {
	rel, err := filepath.Rel(root, filepath.Dir(filePath))
	if err != nil {
		return "", fmt.Errorf("fingerprint: %s is not under %s: %w", filePath, root, err)
	}
	return filepath.ToSlash(rel), nil
}

// birth time where the platform records it, else status change time, else modification time
func createdAt(filePath string, info os.FileInfo) time.Time {
	ts, err := times.Stat(filePath)
	if err != nil {
		L.Debug(fmt.Sprintf("fingerprint: times unavailable for %s: %v", filePath, err))
		return info.ModTime()
	}
	if ts.HasBirthTime() {
		return ts.BirthTime()
	}
	if ts.HasChangeTime() {
		return ts.ChangeTime()
	}
	return ts.ModTime()
}

func readExif(r io.ReadSeeker, filePath string) (*time.Time, *string) {
	_, err := r.Seek(0, io.SeekStart)
	if err != nil {
		L.Debug(fmt.Sprintf("fingerprint: seek failed for %s: %v", filePath, err))
		return nil, nil
	}
	x, err := exif.Decode(r)
	if err != nil {
		L.Debug(fmt.Sprintf("fingerprint: no exif in %s: %v", filePath, err))
		return nil, nil
	}

	var dateTaken *time.Time
	raw, err := tagString(x, exif.DateTimeOriginal)
	if err == nil {
		t, err := time.ParseInLocation(exifDateTimeLayout, raw, time.Local)
		if err == nil {
			dateTaken = &t
		} else {
			L.Debug(fmt.Sprintf("fingerprint: bad DateTimeOriginal %q in %s", raw, filePath))
		}
	} else {
		L.Debug(fmt.Sprintf("fingerprint: DateTimeOriginal missing in %s: %v", filePath, err))
	}

	var camera *string
	make_, errMake := tagString(x, exif.Make)
	cameraModel, errModel := tagString(x, exif.Model)
	if errMake == nil && errModel == nil && make_ != "" && cameraModel != "" {
		c := make_ + " " + cameraModel
		camera = &c
	} else {
		L.Debug(fmt.Sprintf("fingerprint: camera tags missing or blank in %s", filePath))
	}
	return dateTaken, camera
}

func tagString(x *exif.Exif, name exif.FieldName) (string, error) {
	tag, err := x.Get(name)
	if err != nil {
		return "", err
	}
	s, err := tag.StringVal()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.TrimRight(s, "\x00")), nil
}
