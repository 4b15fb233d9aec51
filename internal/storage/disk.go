package storage

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
)

// DiskStore writes uploads to a local directory served by the static-file
// frontend under Prefix.
type DiskStore struct {
	Dir    string // filesystem directory, e.g. "uploads"
	Prefix string // public path prefix, e.g. "/uploads"
}

func (s *DiskStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", &StorageError{Op: "mkdir " + s.Dir, Err: err}
	}

	name := uniqueName(originalName)
	dst := filepath.Join(s.Dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", &StorageError{Op: "create " + dst, Err: err}
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return "", &StorageError{Op: "write " + dst, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", &StorageError{Op: "close " + dst, Err: err}
	}

	return path.Join(s.Prefix, name), nil
}
