// Package ui renders the storefront session in the terminal. All shop
// logic lives in internal/storefront; this package only translates key
// presses into session transitions and draws the result.
package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	catalog "github.com/matex-shoes/storefront/internal/catalog/domain"
	"github.com/matex-shoes/storefront/internal/storefront"
)

var categories = []string{catalog.AllCategories, "winters", "summers", "formal"}

var priceBrackets = []catalog.PriceBracket{
	catalog.AllPrices,
	catalog.Under1000,
	catalog.Mid1000To3000,
	catalog.Over3000,
}

type catalogMsg struct{ err error }

type submitMsg struct {
	result storefront.PlaceOrderResult
	err    error
}

type Model struct {
	session *storefront.Session
	styles  Styles
	width   int
	height  int

	cursor     int
	categoryIx int
	priceIx    int

	showCart   bool
	cartCursor int

	form   checkoutFormModel
	status string
}

func New(session *storefront.Session) Model {
	styles := DefaultStyles()
	return Model{
		session: session,
		styles:  styles,
		form:    newCheckoutForm(styles),
	}
}

func (m Model) Init() tea.Cmd {
	return m.refreshCatalog()
}

func (m Model) refreshCatalog() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return catalogMsg{err: m.session.Refresh(ctx)}
	}
}

func (m Model) submitOrder() tea.Cmd {
	form := m.form.Form()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		result, err := m.session.Submit(ctx, form)
		return submitMsg{result: result, err: err}
	}
}

func (m Model) acknowledge() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return catalogMsg{err: m.session.Acknowledge(ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case catalogMsg:
		if msg.err != nil {
			m.status = "catalog unavailable: " + msg.err.Error()
		} else {
			m.status = ""
		}
		m.clampCursor()
		return m, nil

	case submitMsg:
		if msg.err != nil {
			m.status = "Failed to place order: " + msg.err.Error()
		} else if !msg.result.Success {
			m.status = "Failed to place order: " + msg.result.Message
		} else {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.session.View() {
	case storefront.ViewBrowsing:
		return m.handleBrowsingKey(key)
	case storefront.ViewProductDetail:
		return m.handleDetailKey(key)
	case storefront.ViewCheckout:
		return m.handleCheckoutKey(key)
	case storefront.ViewSubmitting:
		// Everything is ignored while the order is in flight; the
		// session itself also rejects a second Submit.
		return m, nil
	case storefront.ViewOrderConfirmed, storefront.ViewOrderFailed:
		if key.String() == "enter" || key.String() == "esc" {
			return m, m.acknowledge()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleBrowsingKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showCart {
		return m.handleCartKey(key)
	}

	filtered := m.session.Filtered()
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(filtered)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(filtered) {
			_ = m.session.SelectShoe(filtered[m.cursor].ID)
		}
	case "a":
		if m.cursor < len(filtered) {
			m.addToCart(filtered[m.cursor].ID)
		}
	case "f":
		m.categoryIx = (m.categoryIx + 1) % len(categories)
		m.applyFilter()
	case "p":
		m.priceIx = (m.priceIx + 1) % len(priceBrackets)
		m.applyFilter()
	case "v":
		m.showCart = true
		m.cartCursor = 0
	case "c":
		if err := m.session.OpenCheckout(); err != nil {
			m.status = "Your cart is empty."
		}
	case "r":
		return m, m.refreshCatalog()
	}
	return m, nil
}

func (m Model) handleCartKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.session.CartEntries()
	switch key.String() {
	case "esc", "v", "q":
		m.showCart = false
	case "up", "k":
		if m.cartCursor > 0 {
			m.cartCursor--
		}
	case "down", "j":
		if m.cartCursor < len(entries)-1 {
			m.cartCursor++
		}
	case "x":
		if m.cartCursor < len(entries) {
			m.session.RemoveFromCart(entries[m.cartCursor].CartID)
			if m.cartCursor > 0 {
				m.cartCursor--
			}
		}
	case "c":
		if err := m.session.OpenCheckout(); err != nil {
			m.status = "Your cart is empty."
		} else {
			m.showCart = false
		}
	}
	return m, nil
}

func (m Model) handleDetailKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc", "q":
		m.session.GoBack()
	case "left", "h":
		m.session.PrevShoe()
	case "right", "l":
		m.session.NextShoe()
	case "a":
		if shoe, ok := m.session.Selected(); ok {
			m.addToCart(shoe.ID)
		}
	case "c":
		if err := m.session.OpenCheckout(); err != nil {
			m.status = "Your cart is empty."
		}
	}
	return m, nil
}

func (m Model) handleCheckoutKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.session.GoBack()
		return m, nil
	case "enter":
		if m.form.focused == fieldNotes {
			return m, m.submitOrder()
		}
		m.form.focus(m.form.focused + 1)
		return m, nil
	case "ctrl+s":
		return m, m.submitOrder()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(key)
	return m, cmd
}

func (m *Model) addToCart(id int64) {
	if _, err := m.session.AddToCart(id); err != nil {
		m.status = "We're sorry, this item is currently sold out."
		return
	}
	m.status = "Added to cart."
}

func (m *Model) applyFilter() {
	m.session.SetFilter(catalog.Filter{
		Category: categories[m.categoryIx],
		Price:    priceBrackets[m.priceIx],
	})
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if n := len(m.session.Filtered()); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	} else if n == 0 {
		m.cursor = 0
	}
}
