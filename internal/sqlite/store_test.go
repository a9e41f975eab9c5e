// Store lifecycle tests.
package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gourava/gourava/pkg/types"
)

// mustParseID parses a string-coerced entity id.
func mustParseID(t *testing.T, s string) int64 {
	t.Helper()

	id, err := strconv.ParseInt(s, 10, 64)
	require.NoError(t, err)
	return id
}

// newTestStore opens a store over a fresh temp data directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	store := NewStore()
	err := store.Open(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestOpenCreatesDatabaseFile(t *testing.T) {
	dataDir := t.TempDir()

	store := NewStore()
	err := store.Open(types.Config{Backend: types.BackendSQLite, DataDir: dataDir})
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Join(dataDir, dbFileName))
	assert.NoError(t, err)
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  types.Config
		wantErr error
	}{
		{
			name:    "empty backend",
			config:  types.Config{DataDir: "x"},
			wantErr: types.ErrBackendEmpty,
		},
		{
			name:    "unknown backend",
			config:  types.Config{Backend: "postgres", DataDir: "x"},
			wantErr: types.ErrBackendUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			err := store.Open(tt.config)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOpenTwiceReturnsAlreadyOpen(t *testing.T) {
	store := newTestStore(t)

	err := store.Open(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrAlreadyOpen)
}

func TestCloseIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
}

func TestOperationsAfterCloseReturnStoreClosed(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Close())

	_, err := store.Items(ctx, 0)
	assert.ErrorIs(t, err, types.ErrStoreClosed)

	_, err = store.AddItem(ctx, "x", nil, nil)
	assert.ErrorIs(t, err, types.ErrStoreClosed)

	_, err = store.Templates(ctx)
	assert.ErrorIs(t, err, types.ErrStoreClosed)

	err = store.Seed(ctx)
	assert.ErrorIs(t, err, types.ErrStoreClosed)
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	dataDir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}

	store := NewStore()
	require.NoError(t, store.Open(cfg))
	_, err := store.AddItem(ctx, "Espresso", []types.Tag{{Name: "coffee"}}, nil)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened := NewStore()
	require.NoError(t, reopened.Open(cfg))
	defer reopened.Close()

	items, err := reopened.Items(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Espresso", items[0].Title)
}

func TestOpenIsIdempotentOverExistingSchema(t *testing.T) {
	dataDir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}

	for i := 0; i < 3; i++ {
		store := NewStore()
		require.NoError(t, store.Open(cfg))
		require.NoError(t, store.Close())
	}
}
