package cart

import (
	"testing"

	"github.com/pal-lokesh/storefront/internal/model"

	"github.com/jaswdr/faker"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fake = faker.New()

func testItem(businessID string, itemType model.ItemType, price int64) model.CartItem {
	return model.CartItem{
		ID:           fake.UUID().V4(),
		Type:         itemType,
		Name:         fake.Lorem().Word(),
		Price:        decimal.NewFromInt(price),
		BusinessID:   businessID,
		BusinessName: fake.Company().Name(),
		Quantity:     1,
	}
}

func newTestCart(t *testing.T) (*Cart, Store) {
	t.Helper()
	store := NewFileStore(afero.NewMemMapFs(), "/data", zerolog.Nop())
	c, err := New("111", store, zerolog.Nop())
	require.NoError(t, err)
	return c, store
}

func TestCart_AddRemoveContains(t *testing.T) {
	c, _ := newTestCart(t)
	item := testItem("B1", model.ItemTypeDish, 250)

	require.NoError(t, c.Add(item))
	assert.True(t, c.Contains(item.ID, item.Type))

	require.NoError(t, c.Remove(item.ID, item.Type))
	assert.False(t, c.Contains(item.ID, item.Type))
	assert.Equal(t, 0, c.Len())
}

func TestCart_AddExistingIncrementsQuantity(t *testing.T) {
	c, _ := newTestCart(t)
	item := testItem("B1", model.ItemTypeTheme, 100)

	require.NoError(t, c.Add(item))
	require.NoError(t, c.Add(item))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCart_AddDifferentBusinessRejected(t *testing.T) {
	c, _ := newTestCart(t)

	require.NoError(t, c.Add(testItem("B1", model.ItemTypeDish, 250)))

	err := c.Add(testItem("B2", model.ItemTypeDish, 100))
	assert.ErrorIs(t, err, model.ErrDifferentBusiness)

	// Nothing from B2 leaked in.
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "B1", items[0].BusinessID)

	// An explicit clear makes room for the other business.
	require.NoError(t, c.Clear())
	require.NoError(t, c.Add(testItem("B2", model.ItemTypeDish, 100)))
	assert.Equal(t, "B2", c.BusinessID())
}

func TestCart_Total(t *testing.T) {
	c, _ := newTestCart(t)

	first := testItem("B1", model.ItemTypeDish, 250)
	second := testItem("B1", model.ItemTypeInventory, 40)
	second.Quantity = 3

	require.NoError(t, c.Add(first))
	require.NoError(t, c.Add(second))

	assert.True(t, c.Total().Equal(decimal.NewFromInt(370)), "got %s", c.Total())
}

func TestCart_SetQuantity(t *testing.T) {
	c, _ := newTestCart(t)
	item := testItem("B1", model.ItemTypeDish, 250)
	require.NoError(t, c.Add(item))

	require.NoError(t, c.SetQuantity(item.ID, item.Type, 5))
	assert.Equal(t, 5, c.Items()[0].Quantity)

	assert.ErrorIs(t, c.SetQuantity(item.ID, item.Type, 0), model.ErrInvalidQuantity)
	assert.Error(t, c.SetQuantity("missing", model.ItemTypeDish, 2))
}

func TestCart_PersistsAcrossReload(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewFileStore(fs, "/data", zerolog.Nop())

	c, err := New("111", store, zerolog.Nop())
	require.NoError(t, err)

	item := testItem("B1", model.ItemTypeDish, 250)
	require.NoError(t, c.Add(item))

	// A fresh cart over the same store sees the persisted line.
	reloaded, err := New("111", store, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, reloaded.Contains(item.ID, item.Type))
	assert.Equal(t, 1, reloaded.Len())

	// Another user's cart is untouched.
	other, err := New("222", store, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, other.Len())
}

func TestCart_ClearPersists(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewFileStore(fs, "/data", zerolog.Nop())

	c, err := New("111", store, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, c.Add(testItem("B1", model.ItemTypeDish, 250)))
	require.NoError(t, c.Clear())

	reloaded, err := New("111", store, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.Len())
}
