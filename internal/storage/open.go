package storage

import (
	"fmt"
	"strings"
)

type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendDisk   Backend = "disk"
	BackendMemory Backend = "memory"
)

func (b Backend) IsValid() bool {
	switch b {
	case BackendSQLite, BackendDisk, BackendMemory:
		return true
	default:
		return false
	}
}

// Open returns the KV for backend rooted at path. The memory backend ignores path.
func Open(backend Backend, path string) (KV, error) {
	switch Backend(strings.ToLower(string(backend))) {
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendDisk:
		return OpenDisk(path)
	case BackendMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}
