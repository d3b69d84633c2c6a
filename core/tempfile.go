package core

import (
	"os"
	"path/filepath"
)

// namedTempFile is a file with a caller-chosen base name inside a fresh
// temporary directory. Close removes the whole directory.
type namedTempFile struct {
	file   *os.File
	tmpDir string
}

func newNamedTempFile(baseName string) (*namedTempFile, error) {
	tmpDir, err := os.MkdirTemp("", "visedit-*")
	if err != nil {
		return nil, err
	}

	file, err := os.Create(filepath.Join(tmpDir, baseName))
	if err != nil {
		os.RemoveAll(tmpDir)
		return nil, err
	}

	return &namedTempFile{file: file, tmpDir: tmpDir}, nil
}

func (n *namedTempFile) Name() string {
	return n.file.Name()
}

func (n *namedTempFile) Close() error {
	err := n.file.Close()
	if rmErr := os.RemoveAll(n.tmpDir); err == nil {
		err = rmErr
	}
	return err
}
