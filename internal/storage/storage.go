// Package storage persists uploaded files (avatars, certification documents)
// under collision-free names and returns stable public reference paths.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/CuratorSpace/CS-Backend/internal/config"
	"github.com/google/uuid"
)

type Store interface {
	// Save writes the file and returns its public reference path. A failed
	// save must leave no usable reference behind.
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
}

type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// FromConfig selects the configured backend.
func FromConfig(cfg config.Config) (Store, error) {
	switch cfg.AvatarBackend {
	case config.BackendS3:
		return &S3Store{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Endpoint:  cfg.S3Endpoint,
			Prefix:    cfg.PublicUploadPrefix,
		}, nil
	case config.BackendDisk:
		return &DiskStore{Dir: cfg.UploadDir, Prefix: cfg.PublicUploadPrefix}, nil
	default:
		return nil, fmt.Errorf("unknown avatar backend %q", cfg.AvatarBackend)
	}
}

// uniqueName prepends a random token so concurrent uploads of identically
// named files never collide.
func uniqueName(originalName string) string {
	base := filepath.Base(strings.ReplaceAll(originalName, "\\", "/"))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" || base == "." {
		base = "upload"
	}
	return uuid.New().String() + "_" + base
}
