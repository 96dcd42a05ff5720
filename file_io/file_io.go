package file_io

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// FileIO is the set of filesystem operations the export executor depends on.
type FileIO interface {
	Exists(path string) (bool, error)
	EnsureDir(path string) (created bool, err error)
	CopyFile(src string, dst string) (int64, error)
}

type osFileIO struct{}

func New() FileIO {
	return osFileIO{}
}

func (osFileIO) Exists(path string) (bool, error) {
	return Exists(path)
}

func (osFileIO) EnsureDir(path string) (bool, error) {
	return EnsureDir(path)
}

func (osFileIO) CopyFile(src string, dst string) (int64, error) {
	return CopyFile(src, dst)
}

func IsReadable(filePath string) bool {
	file, err := os.Open(filePath)
	if err != nil {
		return false
	}
	defer file.Close()
	return true
}

func IsWritable(inputPath string) (bool, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, fmt.Errorf("path does not exist: %s", inputPath)
		}
		return false, fmt.Errorf("failed to stat path: %s", inputPath)
	}

	if info.IsDir() {
		return isDirWritable(inputPath)
	}
	return isFileWritable(inputPath)
}

func isDirWritable(inputDirPath string) (bool, error) {
	tempFilePath := filepath.Join(inputDirPath, ".write-test-"+strconv.Itoa(int(time.Now().UnixNano())))
	tempFile, err := os.Create(tempFilePath)
	if err != nil {
		return false, err
	}
	_ = tempFile.Close()
	_ = os.Remove(tempFilePath)
	return true, nil
}

func isFileWritable(inputFilePath string) (bool, error) {
	inputFile, err := os.OpenFile(inputFilePath, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return false, err
	}
	_ = inputFile.Close()
	return true, nil
}

// Exists reports whether a regular file (or other non-directory) is present at the path.
func Exists(inputFilePath string) (bool, error) {
	info, err := os.Stat(inputFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory", inputFilePath)
	}
	return true, nil
}

func IsDir(inputPath string) bool {
	info, err := os.Stat(inputPath)
	return err == nil && info.IsDir()
}

// EnsureDir creates the directory and its parents when missing.
func EnsureDir(dirPath string) (bool, error) {
	info, err := os.Stat(dirPath)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s exists and is not a directory", dirPath)
		}
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, err
	}
	err = os.MkdirAll(dirPath, os.ModePerm)
	if err != nil {
		return false, err
	}
	return true, nil
}

// CopyFile copies the bytes of src into a newly created dst. dst must not exist.
func CopyFile(src string, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return 0, err
	}
	written, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		os.Remove(dst)
		return written, err
	}
	err = out.Close()
	if err != nil {
		os.Remove(dst)
		return written, err
	}
	_ = os.Chtimes(dst, info.ModTime(), info.ModTime())
	return written, nil
}

type WriteMode uint8

const (
	WRITE_APPEND WriteMode = iota
	WRITE_OVERWRITE
)

func WriteToFile(filePath string, data []byte, mode WriteMode) (int, error) {
	var flags int
	switch mode {
	case WRITE_APPEND:
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	case WRITE_OVERWRITE:
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}
	parent := filepath.Dir(filePath)
	err := os.MkdirAll(parent, os.ModePerm)
	if err != nil {
		return 0, err
	}
	file, err := os.OpenFile(filePath, flags, 0644)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	return file.Write(data)
}
