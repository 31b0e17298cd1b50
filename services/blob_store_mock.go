package services

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/pkg/errors"
)

// MockBlobStore is an in-memory BlobStore for tests
type MockBlobStore struct {
	objects     map[string][]byte // map of object key to content
	failDeletes map[string]bool
	failAll     bool
	mu          sync.RWMutex
}

// NewMockBlobStore creates an empty mock store
func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{
		objects:     make(map[string][]byte),
		failDeletes: make(map[string]bool),
	}
}

// Put stores the object content under key
func (m *MockBlobStore) Put(_ context.Context, key, _ string, body io.Reader) error {
	content, err := io.ReadAll(body)
	if err != nil {
		return errors.Wrap(err, "failed to read body")
	}

	m.mu.Lock()
	m.objects[key] = content
	m.mu.Unlock()
	return nil
}

// PresignUpload simulates a presigned PUT. The object is recorded as present
// so later downloads and deletes behave as if the client had uploaded it.
func (m *MockBlobStore) PresignUpload(_ context.Context, key, _ string) (string, error) {
	m.mu.Lock()
	if _, ok := m.objects[key]; !ok {
		m.objects[key] = nil
	}
	m.mu.Unlock()
	return fmt.Sprintf("https://test-bucket.s3.us-east-1.amazonaws.com/%s?mock=upload", key), nil
}

// PresignDownload simulates generating a presigned GET
func (m *MockBlobStore) PresignDownload(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}

	m.mu.RLock()
	_, exists := m.objects[key]
	m.mu.RUnlock()

	if !exists {
		return "", errors.Errorf("object not found in mock store: %s", key)
	}
	return fmt.Sprintf("https://test-bucket.s3.us-east-1.amazonaws.com/%s?mock=true", key), nil
}

// Delete removes key unless it was marked to fail
func (m *MockBlobStore) Delete(_ context.Context, key string) error {
	if key == "" {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll || m.failDeletes[key] {
		return errors.Errorf("mock store refused to delete %s", key)
	}
	delete(m.objects, key)
	return nil
}

// FailDeletes makes Delete fail for the given keys, or for every key when none are given
func (m *MockBlobStore) FailDeletes(keys ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(keys) == 0 {
		m.failAll = true
		return
	}
	for _, k := range keys {
		m.failDeletes[k] = true
	}
}

// Seed stores an object directly (for test setup)
func (m *MockBlobStore) Seed(key string, content []byte) {
	m.mu.Lock()
	m.objects[key] = content
	m.mu.Unlock()
}

// Exists checks if an object is in mock storage
func (m *MockBlobStore) Exists(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.objects[key]
	return exists
}

// Keys returns every stored key (for testing assertions)
func (m *MockBlobStore) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	return keys
}
