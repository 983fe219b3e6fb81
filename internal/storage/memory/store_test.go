package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiwariParth/tasklist/internal/storage"
)

func TestStoreLoadBeforeSave(t *testing.T) {
	s := NewStore()

	_, err := s.Load()
	assert.ErrorIs(t, err, storage.ErrNoSnapshot)
}

func TestStoreSaveCopiesData(t *testing.T) {
	s := NewStore()
	buf := []byte(`[{"id":1}]`)

	require.NoError(t, s.Save(buf))
	buf[0] = 'x'

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(got))
}

func TestStoreClear(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Save([]byte("[]")))

	s.Clear()

	_, err := s.Load()
	assert.ErrorIs(t, err, storage.ErrNoSnapshot)
}

func TestStoreClose(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Save([]byte("[]")), storage.ErrStorageConnection)
	_, err := s.Load()
	assert.ErrorIs(t, err, storage.ErrStorageConnection)
	assert.ErrorIs(t, s.Close(), storage.ErrStorageConnection)
}

func TestStoreImplementsSnapshotter(t *testing.T) {
	var _ storage.Snapshotter = NewStore()
}
