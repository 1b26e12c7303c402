package storefront

import (
	"github.com/google/uuid"

	catalog "github.com/matex-shoes/storefront/internal/catalog/domain"
	order "github.com/matex-shoes/storefront/internal/order/domain"
)

// CartEntry is a client-local intent to buy one catalog item. CartID is
// unique per entry, so the same shoe can sit in the cart twice.
type CartEntry struct {
	CartID string
	ShoeID int64
	Name   string
	Brand  string
	Price  float64
}

type Cart struct {
	entries []CartEntry
}

func (c *Cart) Add(s catalog.Shoe) CartEntry {
	e := CartEntry{
		CartID: uuid.NewString(),
		ShoeID: s.ID,
		Name:   s.Name,
		Brand:  s.Brand,
		Price:  s.Price,
	}
	c.entries = append(c.entries, e)
	return e
}

// Remove drops exactly the entry with the given cart id.
func (c *Cart) Remove(cartID string) bool {
	for i, e := range c.entries {
		if e.CartID == cartID {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Total() float64 {
	var total float64
	for _, e := range c.entries {
		total += e.Price
	}
	return total
}

func (c *Cart) Len() int { return len(c.entries) }

func (c *Cart) Entries() []CartEntry {
	out := make([]CartEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Cart) Clear() { c.entries = nil }

// Items renders the cart as submission line items.
func (c *Cart) Items() []order.Item {
	items := make([]order.Item, 0, len(c.entries))
	for _, e := range c.entries {
		items = append(items, order.Item{ID: e.ShoeID, Name: e.Name, Price: e.Price})
	}
	return items
}

// ShoeIDs lists the catalog ids in the cart, for the soldProducts field.
func (c *Cart) ShoeIDs() []int64 {
	ids := make([]int64, 0, len(c.entries))
	for _, e := range c.entries {
		ids = append(ids, e.ShoeID)
	}
	return ids
}
