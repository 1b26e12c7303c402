package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/matex-shoes/storefront/internal/catalog/domain"
	order "github.com/matex-shoes/storefront/internal/order/domain"
	"github.com/matex-shoes/storefront/internal/storefront"
)

type stubAPI struct{ shoes []catalog.Shoe }

func (s stubAPI) ListShoes(ctx context.Context) ([]catalog.Shoe, error) { return s.shoes, nil }
func (s stubAPI) PlaceOrder(ctx context.Context, details order.Details, soldIDs []int64) (storefront.PlaceOrderResult, error) {
	return storefront.PlaceOrderResult{Success: true, OrderID: 1}, nil
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	session := storefront.NewSession(stubAPI{shoes: []catalog.Shoe{
		{ID: 1, Name: "Nike Air Max", Brand: "Nike", Price: 2500, Category: "summers", IsFeatured: true},
		{ID: 2, Name: "Vans Old Skool", Brand: "Vans", Price: 1800, Category: "summers"},
		{ID: 3, Name: "LC Waikiki Casual", Brand: "LC Waikiki", Price: 900, Category: "winters"},
	}}, nil)
	require.NoError(t, session.Refresh(context.Background()))
	return New(session)
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestBrowseCursorMovement(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "up")
	assert.Equal(t, 0, m.cursor)

	m = press(m, "down", "down")
	assert.Equal(t, 2, m.cursor)

	m = press(m, "down")
	assert.Equal(t, 2, m.cursor)
}

func TestEnterOpensProductDetail(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "down", "enter")

	assert.Equal(t, storefront.ViewProductDetail, m.session.View())
	assert.Contains(t, m.View(), "Vans Old Skool")

	m = press(m, "esc")
	assert.Equal(t, storefront.ViewBrowsing, m.session.View())
}

func TestAddToCartAndCheckout(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "c")
	assert.Equal(t, storefront.ViewBrowsing, m.session.View())
	assert.Contains(t, m.status, "empty")

	m = press(m, "a", "c")
	assert.Equal(t, storefront.ViewCheckout, m.session.View())
	assert.Contains(t, m.View(), "Nike Air Max")
	assert.Contains(t, m.View(), "Rs. 2500")
}

func TestFilterCyclingClampsCursor(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "down", "down")
	require.Equal(t, 2, m.cursor)

	// "winters" has a single shoe, so the cursor must clamp.
	m = press(m, "f")
	assert.Equal(t, "winters", categories[m.categoryIx])
	assert.Equal(t, 0, m.cursor)
	assert.Contains(t, m.View(), "LC Waikiki Casual")
	assert.NotContains(t, m.View(), "Vans Old Skool")
}

func TestCartOverlayRemove(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "a", "a", "v")
	require.True(t, m.showCart)
	assert.Contains(t, m.View(), "Your Cart")

	m = press(m, "x")
	assert.Equal(t, 1, m.session.CartLen())

	m = press(m, "esc")
	assert.False(t, m.showCart)
}

func TestBrowseViewShowsFeaturedAndSoldOut(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	assert.Contains(t, view, "Featured: Nike Air Max")

	// Buying everything marks the cached catalog sold out.
	m = press(m, "a")
	_, err := m.session.Submit(context.Background(), storefront.CheckoutForm{
		Name: "x", Email: "x@x", Phone: "1", Address: "a", City: "c",
	})
	require.NoError(t, err)
	assert.Contains(t, m.View(), "Order Placed Successfully!")
}
