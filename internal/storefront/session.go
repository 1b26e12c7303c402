// Package storefront holds the client side of the shop: the cart, the
// API client and the session state machine the UI drives. Rendering
// lives elsewhere; everything here is plain state and transitions.
package storefront

import (
	"context"
	"errors"
	"sync"

	catalog "github.com/matex-shoes/storefront/internal/catalog/domain"
	order "github.com/matex-shoes/storefront/internal/order/domain"
)

type View int

const (
	ViewBrowsing View = iota
	ViewProductDetail
	ViewCheckout
	ViewSubmitting
	ViewOrderConfirmed
	ViewOrderFailed
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrSoldOut            = errors.New("item is sold out")
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrIncompleteForm     = errors.New("required shipping fields missing")
)

// CheckoutForm is the shipping form. Name, email, phone, address and
// city are required; notes are optional.
type CheckoutForm struct {
	Name          string
	Email         string
	Phone         string
	Address       string
	City          string
	Notes         string
	PaymentMethod order.PaymentMethod
}

func (f CheckoutForm) validate() error {
	if f.Name == "" || f.Email == "" || f.Phone == "" || f.Address == "" || f.City == "" {
		return ErrIncompleteForm
	}
	return nil
}

// Session is one shopper's browsing/checkout state machine. The catalog
// it holds is a client-side cache of server truth, refreshed on start
// and after each confirmed order.
type Session struct {
	mu sync.Mutex

	api          API
	view         View
	catalog      []catalog.Shoe
	filter       catalog.Filter
	cart         Cart
	selectedID   int64
	lastOrderID  int64
	lastError    string
	forceSoldOut map[int64]bool
}

// NewSession starts a session in the browsing view. forceSoldOut lists
// catalog ids treated as sold out regardless of the persisted flag.
func NewSession(api API, forceSoldOut []int64) *Session {
	overrides := make(map[int64]bool, len(forceSoldOut))
	for _, id := range forceSoldOut {
		overrides[id] = true
	}
	return &Session{
		api:          api,
		view:         ViewBrowsing,
		filter:       catalog.Filter{Category: catalog.AllCategories, Price: catalog.AllPrices},
		forceSoldOut: overrides,
	}
}

// Refresh re-fetches the catalog. On failure the cached copy is kept so
// the shopper can keep browsing stale data.
func (s *Session) Refresh(ctx context.Context) error {
	shoes, err := s.api.ListShoes(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.catalog = shoes
	s.mu.Unlock()
	return nil
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *Session) Catalog() []catalog.Shoe {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]catalog.Shoe, len(s.catalog))
	copy(out, s.catalog)
	return out
}

func (s *Session) SetFilter(f catalog.Filter) {
	s.mu.Lock()
	s.filter = f
	s.mu.Unlock()
}

func (s *Session) Filter() catalog.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Filtered returns the catalog under the current filter; detail
// prev/next navigation moves through this list.
func (s *Session) Filtered() []catalog.Shoe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter.Apply(s.catalog)
}

// Featured returns the featured shoes under the current filter.
func (s *Session) Featured() []catalog.Shoe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return catalog.Featured(s.filter.Apply(s.catalog))
}

// SoldOut reports whether a shoe is unavailable: either the persisted
// flag is set or the id is in the configured override set.
func (s *Session) SoldOut(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.soldOutLocked(id)
}

func (s *Session) soldOutLocked(id int64) bool {
	if s.forceSoldOut[id] {
		return true
	}
	for _, shoe := range s.catalog {
		if shoe.ID == id {
			return shoe.IsSoldOut
		}
	}
	return false
}

// SelectShoe moves to the product detail view.
func (s *Session) SelectShoe(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, shoe := range s.catalog {
		if shoe.ID == id {
			s.selectedID = id
			s.view = ViewProductDetail
			return nil
		}
	}
	return catalog.ErrShoeNotFound
}

func (s *Session) Selected() (catalog.Shoe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, shoe := range s.catalog {
		if shoe.ID == s.selectedID {
			return shoe, true
		}
	}
	return catalog.Shoe{}, false
}

// NextShoe moves the detail view to the next shoe in the filtered list.
// A no-op at the end of the list.
func (s *Session) NextShoe() { s.step(1) }

// PrevShoe moves the detail view to the previous shoe in the filtered
// list. A no-op at the start of the list.
func (s *Session) PrevShoe() { s.step(-1) }

func (s *Session) step(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewProductDetail {
		return
	}
	filtered := s.filter.Apply(s.catalog)
	for i, shoe := range filtered {
		if shoe.ID == s.selectedID {
			j := i + delta
			if j >= 0 && j < len(filtered) {
				s.selectedID = filtered[j].ID
			}
			return
		}
	}
}

// GoBack returns from detail or checkout to browsing.
func (s *Session) GoBack() {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.view {
	case ViewProductDetail, ViewCheckout:
		s.view = ViewBrowsing
	}
}

// AddToCart adds a shoe to the cart, refusing sold-out items.
func (s *Session) AddToCart(id int64) (CartEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.soldOutLocked(id) {
		return CartEntry{}, ErrSoldOut
	}
	for _, shoe := range s.catalog {
		if shoe.ID == id {
			return s.cart.Add(shoe), nil
		}
	}
	return CartEntry{}, catalog.ErrShoeNotFound
}

func (s *Session) RemoveFromCart(cartID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Remove(cartID)
}

func (s *Session) CartEntries() []CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Entries()
}

func (s *Session) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

func (s *Session) CartLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Len()
}

// OpenCheckout moves to the checkout view; the cart must not be empty.
func (s *Session) OpenCheckout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart.Len() == 0 {
		return ErrEmptyCart
	}
	s.view = ViewCheckout
	return nil
}

// Submit places the order. Guarded against an empty cart and against a
// submission already in flight. On success the cart is cleared and the
// cached catalog entries for the bought shoes are flagged sold out; on
// failure the cart is kept so the shopper can retry.
func (s *Session) Submit(ctx context.Context, form CheckoutForm) (PlaceOrderResult, error) {
	s.mu.Lock()
	if s.view == ViewSubmitting {
		s.mu.Unlock()
		return PlaceOrderResult{}, ErrSubmissionInFlight
	}
	if s.cart.Len() == 0 {
		s.mu.Unlock()
		return PlaceOrderResult{}, ErrEmptyCart
	}
	if err := form.validate(); err != nil {
		s.mu.Unlock()
		return PlaceOrderResult{}, err
	}

	payment := form.PaymentMethod
	if payment == "" {
		payment = order.CashOnDelivery
	}
	details := order.Details{
		Name:          form.Name,
		Email:         form.Email,
		Phone:         form.Phone,
		Address:       form.Address,
		City:          form.City,
		Notes:         form.Notes,
		PaymentMethod: payment,
		Items:         s.cart.Items(),
		Total:         s.cart.Total(),
	}
	soldIDs := s.cart.ShoeIDs()
	s.view = ViewSubmitting
	s.mu.Unlock()

	result, err := s.api.PlaceOrder(ctx, details, soldIDs)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.view = ViewOrderFailed
		s.lastError = err.Error()
		return PlaceOrderResult{}, err
	}
	if !result.Success {
		s.view = ViewOrderFailed
		s.lastError = result.Message
		return result, nil
	}

	bought := make(map[int64]bool, len(soldIDs))
	for _, id := range soldIDs {
		bought[id] = true
	}
	for i := range s.catalog {
		if bought[s.catalog[i].ID] {
			s.catalog[i].IsSoldOut = true
		}
	}
	s.cart.Clear()
	s.lastOrderID = result.OrderID
	s.lastError = ""
	s.view = ViewOrderConfirmed
	return result, nil
}

// Acknowledge dismisses the confirmation or failure dialog. After a
// confirmed order the catalog cache is invalidated and re-fetched.
func (s *Session) Acknowledge(ctx context.Context) error {
	s.mu.Lock()
	confirmed := s.view == ViewOrderConfirmed
	switch s.view {
	case ViewOrderConfirmed:
		s.view = ViewBrowsing
	case ViewOrderFailed:
		s.view = ViewCheckout
	}
	s.mu.Unlock()

	if confirmed {
		return s.Refresh(ctx)
	}
	return nil
}

func (s *Session) LastOrderID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOrderID
}

func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}
