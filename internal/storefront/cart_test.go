package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/matex-shoes/storefront/internal/catalog/domain"
)

func TestCartTotal(t *testing.T) {
	var c Cart
	c.Add(catalog.Shoe{ID: 3, Name: "LC Waikiki Casual", Price: 900})
	c.Add(catalog.Shoe{ID: 2, Name: "Vans Old Skool", Price: 1800})

	assert.Equal(t, 2700.0, c.Total())
}

func TestCartDuplicatesGetDistinctIDs(t *testing.T) {
	var c Cart
	shoe := catalog.Shoe{ID: 1, Name: "Nike Air Max", Price: 2500}
	a := c.Add(shoe)
	b := c.Add(shoe)

	assert.NotEqual(t, a.CartID, b.CartID)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []int64{1, 1}, c.ShoeIDs())
}

func TestCartRemoveExactEntry(t *testing.T) {
	var c Cart
	shoe := catalog.Shoe{ID: 1, Name: "Nike Air Max", Price: 2500}
	a := c.Add(shoe)
	b := c.Add(shoe)

	require.True(t, c.Remove(a.CartID))
	require.Equal(t, 1, c.Len())
	assert.Equal(t, b.CartID, c.Entries()[0].CartID)

	assert.False(t, c.Remove("no-such-entry"))
	assert.Equal(t, 1, c.Len())
}

func TestCartItems(t *testing.T) {
	var c Cart
	c.Add(catalog.Shoe{ID: 1, Name: "Nike Air Max", Brand: "Nike", Price: 2500})

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, "Nike Air Max", items[0].Name)
	assert.Equal(t, 2500.0, items[0].Price)
}
