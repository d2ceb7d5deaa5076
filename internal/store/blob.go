package store

import (
	"context"
	"errors"
	"os"
	"sync"
)

// BlobStore holds the single persisted charts value. Writes are whole-value
// overwrites; Load returns (nil, nil) when nothing has been saved yet.
type BlobStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, blob []byte) error
}

// FileBlob stores the blob as a JSON file, written via temp file + rename.
type FileBlob struct {
	Path string
}

func (f FileBlob) Load(ctx context.Context) ([]byte, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (f FileBlob) Save(ctx context.Context, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return writeFileAtomic(f.Path, blob, 0o644)
}

// MemoryBlob keeps the blob in process memory. SaveErr, when set, is returned
// by Save without storing anything.
type MemoryBlob struct {
	mu      sync.Mutex
	data    []byte
	saves   int
	SaveErr error
}

func NewMemoryBlob(initial []byte) *MemoryBlob {
	return &MemoryBlob{data: append([]byte(nil), initial...)}
}

func (m *MemoryBlob) Load(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, nil
	}
	return append([]byte(nil), m.data...), nil
}

func (m *MemoryBlob) Save(ctx context.Context, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.data = append([]byte(nil), blob...)
	m.saves++
	return nil
}

// Saves reports how many successful writes happened.
func (m *MemoryBlob) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
