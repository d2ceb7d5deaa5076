package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	sqliteFileName = "tracker.sqlite"
	chartsFileName = "charts.json"

	// BlobKey is the key the charts mapping is stored under.
	BlobKey = "trackerCharts"

	envDir         = "TRACKER_DIR"
	envBlobBackend = "TRACKER_BACKEND"
)

const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
	BackendMemory = "memory"
)

type Store struct {
	Dir string
}

// DefaultDir resolves the store directory: $TRACKER_DIR, then <config dir>/data.
func DefaultDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv(envDir)); v != "" {
		return v, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "data"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) sqlitePath() string {
	return filepath.Join(s.Dir, sqliteFileName)
}

func (s Store) chartsPath() string {
	return filepath.Join(s.Dir, chartsFileName)
}

// LogPath is where the file log handler writes.
func (s Store) LogPath() string {
	return filepath.Join(s.Dir, "tracker.log")
}

// backend picks the blob backend: $TRACKER_BACKEND, then the configured value,
// then autodetect (an existing charts.json without a sqlite db selects json).
func (s Store) backend(configured string) string {
	if v := strings.ToLower(strings.TrimSpace(os.Getenv(envBlobBackend))); v != "" {
		return v
	}
	if v := strings.ToLower(strings.TrimSpace(configured)); v != "" {
		return v
	}
	if _, err := os.Stat(s.sqlitePath()); err == nil {
		return BackendSQLite
	}
	if _, err := os.Stat(s.chartsPath()); err == nil {
		return BackendJSON
	}
	return BackendSQLite
}

// Blob opens the blob store for the given configured backend ("" autodetects).
func (s Store) Blob(configured string) (BlobStore, error) {
	switch b := s.backend(configured); b {
	case BackendSQLite:
		if err := s.Ensure(); err != nil {
			return nil, err
		}
		return SQLiteBlob{Path: s.sqlitePath(), Key: BlobKey}, nil
	case BackendJSON:
		if err := s.Ensure(); err != nil {
			return nil, err
		}
		return FileBlob{Path: s.chartsPath()}, nil
	case BackendMemory:
		return NewMemoryBlob(nil), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", b)
	}
}
