package kvstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/wasl-api/internal/infrastructure/kvstore"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("receiptHistory", []byte(`[{"id":1}]`)))

	data, ok, err := store.Get("receiptHistory")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[{"id":1}]`), data)
}

func TestFileStore_ClaveAusente(t *testing.T) {
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	data, ok, err := store.Get("inexistente")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestFileStore_SetReemplaza(t *testing.T) {
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("k", []byte("viejo")))
	require.NoError(t, store.Set("k", []byte("nuevo")))

	data, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "nuevo", string(data))
}

func TestFileStore_Delete(t *testing.T) {
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("k", []byte("v")))
	require.NoError(t, store.Delete("k"))

	_, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Borrar una clave que no existe no es error.
	assert.NoError(t, store.Delete("k"))
}

// El directorio no debe acumular temporales tras escrituras normales.
func TestFileStore_SinTemporalesResiduales(t *testing.T) {
	dir := t.TempDir()
	store, err := kvstore.NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("k", []byte("v")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".json", filepath.Ext(entries[0].Name()))
}

func TestMemoryStore_CopiasDefensivas(t *testing.T) {
	store := kvstore.NewMemoryStore()

	original := []byte("valor")
	require.NoError(t, store.Set("k", original))
	original[0] = 'X'

	data, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "valor", string(data))

	data[0] = 'Y'
	again, _, _ := store.Get("k")
	assert.Equal(t, "valor", string(again))
}
