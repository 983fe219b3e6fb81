package storage

import (
	"errors"
)

// Common errors that can be returned by any snapshot implementation
var (
	ErrNoSnapshot        = errors.New("no snapshot saved")
	ErrStorageConnection = errors.New("storage connection error")
)

// Snapshotter receives the serialized task list after every change.
// Implementations must not outlive the session: nothing here is durable.
type Snapshotter interface {
	Save(data []byte) error
	Load() ([]byte, error)
	Clear()
	Close() error
}
