package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leandrodevsilva/Gestoque/pkg/types"
)

// openBackends returns one open store per supported backend.
func openBackends(t *testing.T) map[string]types.Store {
	t.Helper()
	stores := make(map[string]types.Store)
	for _, backend := range []string{types.BackendFile, types.BackendSQLite} {
		s, err := Open(types.Config{Backend: backend, DataDir: t.TempDir()})
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		stores[backend] = s
	}
	return stores
}

func TestStore_SetGetRoundTrip(t *testing.T) {
	for backend, s := range openBackends(t) {
		t.Run(backend, func(t *testing.T) {
			products := []types.Product{
				{ID: "p1", Name: "Caneca", Price: 10, StockQuantity: 5},
				{ID: "p2", Name: "Camiseta", Price: 35.5, StockQuantity: 2},
			}
			require.NoError(t, s.Set(types.KeyProducts, products))

			var got []types.Product
			require.NoError(t, s.Get(types.KeyProducts, &got))
			assert.Equal(t, products, got)
		})
	}
}

func TestStore_GetMissingKeyKeepsDefault(t *testing.T) {
	for backend, s := range openBackends(t) {
		t.Run(backend, func(t *testing.T) {
			cfg := types.DefaultSchedulerConfig()
			require.NoError(t, s.Get(types.KeySchedulerConfig, &cfg))
			assert.Equal(t, types.DefaultSchedulerConfig(), cfg)
		})
	}
}

func TestStore_SetOverwrites(t *testing.T) {
	for backend, s := range openBackends(t) {
		t.Run(backend, func(t *testing.T) {
			require.NoError(t, s.Set("k", []string{"a"}))
			require.NoError(t, s.Set("k", []string{"b", "c"}))

			var got []string
			require.NoError(t, s.Get("k", &got))
			assert.Equal(t, []string{"b", "c"}, got)
		})
	}
}

func TestFileStore_CorruptContentFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(types.Config{Backend: types.BackendFile, DataDir: dir})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "produtos.json"), []byte("{not json"), 0o644))

	got := []types.Product{{ID: "default"}}
	require.NoError(t, s.Get(types.KeyProducts, &got))
	assert.Equal(t, "default", got[0].ID, "corrupt content must keep the caller default")
}

func TestStore_WrongShapeContentKeepsDefaultWhole(t *testing.T) {
	for backend, s := range openBackends(t) {
		t.Run(backend, func(t *testing.T) {
			// Valid JSON whose second element fails mid-decode: a bare
			// unmarshal would half-overwrite the caller default.
			require.NoError(t, s.Set(types.KeyProducts, []map[string]any{
				{"id": "p1"},
				{"id": 5},
			}))

			got := []types.Product{{ID: "default"}}
			require.NoError(t, s.Get(types.KeyProducts, &got))
			require.Len(t, got, 1)
			assert.Equal(t, "default", got[0].ID, "default must survive intact")
		})
	}
}

func TestStore_ClosedRejectsOperations(t *testing.T) {
	for backend, s := range openBackends(t) {
		t.Run(backend, func(t *testing.T) {
			require.NoError(t, s.Close())
			require.NoError(t, s.Close(), "close is idempotent")

			var out []types.Product
			assert.ErrorIs(t, s.Get(types.KeyProducts, &out), types.ErrStoreClosed)
			assert.ErrorIs(t, s.Set(types.KeyProducts, out), types.ErrStoreClosed)
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(types.Config{Backend: "redis", DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrBackendUnknown)

	_, err = Open(types.Config{DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrBackendEmpty)
}

func TestFileStore_WritesAreAtomicFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(types.Config{Backend: types.BackendFile, DataDir: dir})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(types.KeySales, []types.Sale{{ID: "v1"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "vendas.json", entries[0].Name(), "no temp files left behind")
}
