package db

import (
	"context"
	"sync"
)

// Keys of the collections kept in Storage.
const (
	PostsKey       = "posts"
	JobPostingsKey = "jobPostings"
	// CurrentUserKey belongs to the identity layer; the post store never touches it.
	CurrentUserKey = "currentUser"
)

// Storage is a flat key/value substrate holding serialized collections.
// Load reports ok=false when the key has never been saved.
type Storage interface {
	Load(ctx context.Context, key string) (value string, ok bool, err error)
	Save(ctx context.Context, key, value string) error
}

// MemoryStorage keeps values in process memory. The zero value is ready to use.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Load(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStorage) Save(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}
