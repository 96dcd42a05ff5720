package file_io

import (
	"github.com/stretchr/testify/mock"
)

// MockFileIO is a mock type for the FileIO type
type MockFileIO struct {
	mock.Mock
}

func (m *MockFileIO) Exists(path string) (bool, error) {
	args := m.Called(path)
	return args.Bool(0), args.Error(1)
}

func (m *MockFileIO) EnsureDir(path string) (bool, error) {
	args := m.Called(path)
	return args.Bool(0), args.Error(1)
}

func (m *MockFileIO) CopyFile(src string, dst string) (int64, error) {
	args := m.Called(src, dst)
	return args.Get(0).(int64), args.Error(1)
}
