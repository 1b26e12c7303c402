package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/matex-shoes/storefront/internal/storefront"
)

const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldAddress
	fieldCity
	fieldNotes
	fieldCount
)

// checkoutFormModel is the shipping form shown on the checkout page.
type checkoutFormModel struct {
	inputs  []textinput.Model
	focused int
	styles  Styles
}

func newCheckoutForm(styles Styles) checkoutFormModel {
	labels := []string{"Full Name", "Email", "Phone", "Shipping Address", "City", "Notes (optional)"}
	inputs := make([]textinput.Model, fieldCount)
	for i, label := range labels {
		ti := textinput.New()
		ti.Placeholder = label
		ti.CharLimit = 120
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[fieldName].Focus()
	return checkoutFormModel{inputs: inputs, styles: styles}
}

func (f checkoutFormModel) Update(msg tea.Msg) (checkoutFormModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.focus(f.focused + 1)
			return f, nil
		case "shift+tab", "up":
			f.focus(f.focused - 1)
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return f, cmd
}

func (f *checkoutFormModel) focus(i int) {
	if i < 0 {
		i = fieldCount - 1
	}
	if i >= fieldCount {
		i = 0
	}
	f.inputs[f.focused].Blur()
	f.focused = i
	f.inputs[f.focused].Focus()
}

func (f checkoutFormModel) Form() storefront.CheckoutForm {
	return storefront.CheckoutForm{
		Name:    strings.TrimSpace(f.inputs[fieldName].Value()),
		Email:   strings.TrimSpace(f.inputs[fieldEmail].Value()),
		Phone:   strings.TrimSpace(f.inputs[fieldPhone].Value()),
		Address: strings.TrimSpace(f.inputs[fieldAddress].Value()),
		City:    strings.TrimSpace(f.inputs[fieldCity].Value()),
		Notes:   strings.TrimSpace(f.inputs[fieldNotes].Value()),
		// Online payment is disabled in the UI; everything ships COD.
	}
}

func (f checkoutFormModel) View() string {
	var sb strings.Builder
	sb.WriteString(f.styles.Header.Render("Shipping Information"))
	sb.WriteString("\n\n")
	for i := range f.inputs {
		sb.WriteString(f.inputs[i].View())
		sb.WriteString("\n")
	}
	sb.WriteString("\nPayment: Cash on Delivery (online payment unavailable)\n")
	return sb.String()
}
