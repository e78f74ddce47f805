package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/pawlig/backend/internal/application/media"
)

// StubObjectStorage is an in-memory implementation of media.ObjectStorage.
// Use it for development and tests when no S3-compatible backend is running.
type StubObjectStorage struct {
	// BaseURL is the base URL used for public object URLs
	BaseURL string

	mu      sync.RWMutex
	objects map[string][]byte
}

// NewStubObjectStorage creates a new StubObjectStorage
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		BaseURL: "https://storage.example.com",
		objects: make(map[string][]byte),
	}
}

// Ensure StubObjectStorage implements media.ObjectStorage
var _ media.ObjectStorage = (*StubObjectStorage)(nil)

// Upload stores the object in memory
func (s *StubObjectStorage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	if key == "" {
		return errors.New("storage key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[key] = buf
	return nil
}

// PublicURL returns the stub public URL for a stored key
func (s *StubObjectStorage) PublicURL(key string) string {
	return s.BaseURL + "/" + key
}

// Get returns a stored object, for test assertions
func (s *StubObjectStorage) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[key]
	return data, ok
}
