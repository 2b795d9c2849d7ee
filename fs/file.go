// Package fs provides file-based output for extracted school data.
package fs

import (
	"bufio"
	"os"
	"path/filepath"
)

// atomicFile writes to a temporary sibling of path and moves it into place
// on Commit, so readers never observe a partially written file.
type atomicFile struct {
	path string
	f    *os.File
	w    *bufio.Writer
}

// createAtomic creates path's parent directories and opens the temporary file.
func createAtomic(path string) (*atomicFile, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	f, err := os.Create(tempPath(path))
	if err != nil {
		return nil, err
	}

	return &atomicFile{path: path, f: f, w: bufio.NewWriter(f)}, nil
}

func tempPath(path string) string {
	return path + ".tmp"
}

// Commit flushes buffered data and renames the temporary file to path,
// replacing any existing file.
func (a *atomicFile) Commit() error {
	if err := a.w.Flush(); err != nil {
		_ = a.Abort()
		return err
	}
	if err := a.f.Close(); err != nil {
		_ = os.Remove(tempPath(a.path))
		return err
	}
	return os.Rename(tempPath(a.path), a.path)
}

// Abort discards the temporary file.
func (a *atomicFile) Abort() error {
	_ = a.f.Close()
	return os.Remove(tempPath(a.path))
}
