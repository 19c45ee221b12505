package cart

import (
	"testing"

	"github.com/pal-lokesh/storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_MissingFileIsEmptyCart(t *testing.T) {
	store := NewFileStore(afero.NewMemMapFs(), "/data", zerolog.Nop())

	items, err := store.Load("111")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := NewFileStore(afero.NewMemMapFs(), "/data", zerolog.Nop())

	saved := []model.CartItem{testItem("B1", model.ItemTypeDish, 250)}
	require.NoError(t, store.Save("111", saved))

	loaded, err := store.Load("111")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, saved[0].ID, loaded[0].ID)
	assert.True(t, saved[0].Price.Equal(loaded[0].Price))
}

func TestFileStore_CorruptFileIsAnError(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewFileStore(fs, "/data", zerolog.Nop())

	require.NoError(t, afero.WriteFile(fs, "/data/cart-111.json", []byte("{not json"), 0o644))

	_, err := store.Load("111")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt")
}
