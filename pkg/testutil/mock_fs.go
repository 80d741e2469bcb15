package testutil

import (
	"io"
	"io/fs"
	"strings"

	"github.com/stretchr/testify/mock"
)

// MockFS is a mock implementation of filesystem.FS. Set expectations with
// On and verify with AssertExpectations; an unexpected call fails the test,
// which is how tests prove a path was never consulted.
type MockFS struct {
	mock.Mock
}

func (m *MockFS) Exists(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}

func (m *MockFS) Open(path string) (io.ReadCloser, error) {
	args := m.Called(path)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Error(1)
}

func (m *MockFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	args := m.Called(name, data, perm)
	return args.Error(0)
}

func (m *MockFS) MkdirAll(path string, perm fs.FileMode) error {
	args := m.Called(path, perm)
	return args.Error(0)
}

// Body wraps a string as the io.ReadCloser returned from a mocked Open.
func Body(content string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(content))
}
