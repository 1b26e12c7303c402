package smtp

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matex-shoes/storefront/internal/order/domain"
)

func TestOrderMailBody(t *testing.T) {
	o := domain.New(1717245000000, domain.Details{
		Name:          "Maryam",
		Email:         "maryam@example.com",
		Phone:         "+92 300 0000000",
		Address:       "Street 1",
		City:          "Lahore",
		PaymentMethod: domain.CashOnDelivery,
		Items: []domain.Item{
			{ID: 1, Name: "Nike Air Max", Price: 2500},
			{ID: 2, Name: "Vans Old Skool", Price: 1800},
		},
		Total: 4300,
	}, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	var buf bytes.Buffer
	require.NoError(t, bodyTmpl.Execute(&buf, o))
	body := buf.String()

	assert.Contains(t, body, "New Order Received!")
	assert.Contains(t, body, "Maryam")
	assert.Contains(t, body, "maryam@example.com")
	assert.Contains(t, body, "Nike Air Max")
	assert.Contains(t, body, "Vans Old Skool")
	assert.Contains(t, body, "Rs. 4300")
	assert.Contains(t, body, "COD")
	assert.Contains(t, body, "1717245000000")
}

func TestOrderMailBodyEmptyNotes(t *testing.T) {
	o := domain.New(1, domain.Details{Name: "x"}, time.Now())

	var buf bytes.Buffer
	require.NoError(t, bodyTmpl.Execute(&buf, o))
	assert.Contains(t, buf.String(), "None")

	o.Notes = "Leave at the gate"
	buf.Reset()
	require.NoError(t, bodyTmpl.Execute(&buf, o))
	assert.Contains(t, buf.String(), "Leave at the gate")
	assert.NotContains(t, buf.String(), "None")
}
