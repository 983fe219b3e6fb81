package memory

import (
	"sync"

	"github.com/tiwariParth/tasklist/internal/storage"
)

// Store implements storage.Snapshotter by keeping the last snapshot in memory
type Store struct {
	data     []byte
	mu       sync.RWMutex
	isActive bool
}

// NewStore creates a new instance of Store
func NewStore() *Store {
	return &Store{isActive: true}
}

// Close drops the snapshot; further saves fail
func (m *Store) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.isActive {
		return storage.ErrStorageConnection
	}
	m.isActive = false
	m.data = nil
	return nil
}

// Save replaces the held snapshot with a copy of data
func (m *Store) Save(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkActive(); err != nil {
		return err
	}

	m.data = append([]byte(nil), data...)
	return nil
}

// Load returns a copy of the last snapshot
func (m *Store) Load() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.checkActive(); err != nil {
		return nil, err
	}
	if m.data == nil {
		return nil, storage.ErrNoSnapshot
	}
	return append([]byte(nil), m.data...), nil
}

// Clear forgets the held snapshot
func (m *Store) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
}

func (m *Store) checkActive() error {
	if !m.isActive {
		return storage.ErrStorageConnection
	}
	return nil
}
