package domain

import "time"

type PaymentMethod string

const (
	CashOnDelivery PaymentMethod = "COD"
	OnlinePayment  PaymentMethod = "Online Payment"
)

// Item is one purchased catalog entry as submitted by the client,
// denormalized so the order stays readable if the catalog changes.
type Item struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Details is the client-constructed checkout submission. Immutable once
// submitted; the service trusts it beyond presence checks.
type Details struct {
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	City          string        `json:"city"`
	Notes         string        `json:"notes,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Items         []Item        `json:"items"`
	Total         float64       `json:"total"`
}

// Empty reports whether the submission carries no usable content.
func (d Details) Empty() bool {
	return d.Name == "" && d.Email == "" && d.Phone == "" && len(d.Items) == 0
}

// Order is the persisted, append-only record of a completed checkout.
type Order struct {
	ID        int64  `json:"id"`
	OrderDate string `json:"orderDate"`
	Details
}

func New(id int64, details Details, now time.Time) Order {
	return Order{
		ID:        id,
		OrderDate: now.UTC().Format(time.RFC3339),
		Details:   details,
	}
}
