package ui

import (
	"fmt"
	"strings"

	"github.com/matex-shoes/storefront/internal/storefront"
)

func (m Model) View() string {
	var body string
	switch m.session.View() {
	case storefront.ViewBrowsing:
		if m.showCart {
			body = m.cartView()
		} else {
			body = m.browseView()
		}
	case storefront.ViewProductDetail:
		body = m.detailView()
	case storefront.ViewCheckout:
		body = m.checkoutView()
	case storefront.ViewSubmitting:
		body = m.checkoutView() + "\n" + m.styles.Header.Render("Placing your order...")
	case storefront.ViewOrderConfirmed:
		body = m.confirmedView()
	case storefront.ViewOrderFailed:
		body = m.failedView()
	}

	out := m.styles.Title.Render("MATex SHOES") + "\n\n" + body
	if m.status != "" {
		out += "\n" + m.styles.Error.Render(m.status)
	}
	return out + "\n"
}

func (m Model) browseView() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Season: %s   Price: %s   Cart: %d item(s)\n\n",
		categories[m.categoryIx], priceBrackets[m.priceIx], m.session.CartLen()))

	if featured := m.session.Featured(); len(featured) > 0 {
		names := make([]string, 0, len(featured))
		for _, s := range featured {
			names = append(names, s.Name)
		}
		sb.WriteString(m.styles.Featured.Render("Featured: "+strings.Join(names, ", ")) + "\n\n")
	}

	filtered := m.session.Filtered()
	if len(filtered) == 0 {
		sb.WriteString("No shoes match the current filters.\n")
	}
	for i, shoe := range filtered {
		line := fmt.Sprintf("%-28s %-12s %s", trim(shoe.Name, 28), trim(shoe.Brand, 12),
			m.styles.Price.Render(fmt.Sprintf("Rs. %.0f", shoe.Price)))
		if m.session.SoldOut(shoe.ID) {
			line += "  " + m.styles.SoldOut.Render("SOLD OUT")
		}
		if i == m.cursor {
			line = m.styles.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString("\n" + m.styles.Help.Render("↑/↓ browse · enter details · a add to cart · v cart · c checkout · f season · p price · r reload · q quit"))
	return sb.String()
}

func (m Model) cartView() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("Your Cart") + "\n\n")

	entries := m.session.CartEntries()
	if len(entries) == 0 {
		sb.WriteString("Your cart is empty.\n")
	}
	for i, e := range entries {
		line := fmt.Sprintf("%-28s %s", trim(e.Name, 28), m.styles.Price.Render(fmt.Sprintf("Rs. %.0f", e.Price)))
		if i == m.cartCursor {
			line = m.styles.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString(fmt.Sprintf("\nTotal: Rs. %.0f\n", m.session.CartTotal()))
	sb.WriteString("\n" + m.styles.Help.Render("x remove · c checkout · esc close"))
	return sb.String()
}

func (m Model) detailView() string {
	shoe, ok := m.session.Selected()
	if !ok {
		return "Shoe no longer available.\n" + m.styles.Help.Render("esc back")
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render(shoe.Name) + "\n\n")
	sb.WriteString("Brand: " + shoe.Brand + "\n")
	sb.WriteString("Price: " + m.styles.Price.Render(fmt.Sprintf("Rs. %.0f", shoe.Price)) + "\n")
	if shoe.Category != "" {
		sb.WriteString("Season: " + shoe.Category + "\n")
	}
	if len(shoe.Sizes) > 0 {
		sb.WriteString("Available Sizes: " + strings.Join(shoe.Sizes, ", ") + "\n")
	}
	if m.session.SoldOut(shoe.ID) {
		sb.WriteString(m.styles.SoldOut.Render("SOLD OUT") + "\n")
	}
	sb.WriteString("\n" + shoe.Description + "\n")
	sb.WriteString("\n" + m.styles.Help.Render("←/→ previous/next · a add to cart · c checkout · esc back"))
	return m.styles.Box.Render(sb.String())
}

func (m Model) checkoutView() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("Checkout") + "\n\n")

	sb.WriteString("Order Summary\n")
	for _, e := range m.session.CartEntries() {
		sb.WriteString(fmt.Sprintf("  %-28s Rs. %.0f\n", trim(e.Name, 28), e.Price))
	}
	sb.WriteString(fmt.Sprintf("  Total: Rs. %.0f\n\n", m.session.CartTotal()))

	sb.WriteString(m.form.View())
	sb.WriteString("\n" + m.styles.Help.Render("tab next field · enter on last field submits · ctrl+s submit · esc back"))
	return sb.String()
}

func (m Model) confirmedView() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Success.Render("Order Placed Successfully!") + "\n\n")
	sb.WriteString("Thank you for shopping with us. You will receive a confirmation email soon.\n")
	sb.WriteString(fmt.Sprintf("Order ID: %d\n", m.session.LastOrderID()))
	sb.WriteString("\n" + m.styles.Help.Render("enter OK"))
	return m.styles.Box.Render(sb.String())
}

func (m Model) failedView() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Error.Render("Failed to place order") + "\n\n")
	if reason := m.session.LastError(); reason != "" {
		sb.WriteString(reason + "\n")
	}
	sb.WriteString("Your cart has been kept; you can try again.\n")
	sb.WriteString("\n" + m.styles.Help.Render("enter back to checkout"))
	return m.styles.Box.Render(sb.String())
}

func trim(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
