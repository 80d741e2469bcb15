package filesystem

import (
	"io"
	"io/fs"
)

// FS is the filesystem collaborator used by configuration loading.
type FS interface {
	// Exists reports whether path names an existing file or directory.
	// Any stat failure, including permission errors, reports false.
	Exists(path string) bool

	// Open opens path for reading.
	Open(path string) (io.ReadCloser, error)

	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
}
