package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// DiskKV stores each key as a file under a base directory.
type DiskKV struct {
	d *diskv.Diskv
}

func OpenDisk(basePath string) (*DiskKV, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("storage: disk base path required")
	}
	// Writes go to TempDir first and are renamed into place.
	tempDir := filepath.Join(basePath, ".tmp")
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure base path: %w", err)
	}
	return &DiskKV{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		TempDir:      tempDir,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

func flatTransform(string) []string {
	return []string{}
}

func (k *DiskKV) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	val, err := k.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

func (k *DiskKV) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return k.d.Write(key, value)
}

// Close is a no-op; every Write is already flushed to its file.
func (k *DiskKV) Close() error {
	return nil
}
