package application

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	catalog "github.com/matex-shoes/storefront/internal/catalog/domain"
	"github.com/matex-shoes/storefront/internal/order/domain"
)

var (
	ErrMissingDetails      = errors.New("missing order details")
	ErrMissingSoldProducts = errors.New("missing sold products")
)

const notifyTimeout = 30 * time.Second

type Service struct {
	log      *slog.Logger
	catalog  CatalogRepository
	orders   OrderRepository
	notifier Notifier

	now func() time.Time

	mu     sync.Mutex
	lastID int64

	notifications sync.WaitGroup
}

func NewService(log *slog.Logger, cat CatalogRepository, orders OrderRepository, notifier Notifier) *Service {
	return &Service{
		log:      log,
		catalog:  cat,
		orders:   orders,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *Service) ListShoes(ctx context.Context) ([]catalog.Shoe, error) {
	return s.catalog.ListShoes(ctx)
}

func (s *Service) GetShoe(ctx context.Context, id int64) (catalog.Shoe, error) {
	return s.catalog.GetShoe(ctx, id)
}

// PlaceOrder runs the order intake workflow: presence validation, a
// best-effort operator notification, then the persisted-store update.
// The notification is dispatched fire-and-forget; its failure is logged
// and never fails the order. Persistence failure fails the call.
func (s *Service) PlaceOrder(ctx context.Context, details domain.Details, soldIDs []int64) (domain.Order, error) {
	if details.Empty() {
		return domain.Order{}, ErrMissingDetails
	}
	if soldIDs == nil {
		return domain.Order{}, ErrMissingSoldProducts
	}

	o := domain.New(s.nextID(), details, s.now())

	s.notifications.Add(1)
	go func() {
		defer s.notifications.Done()
		nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()
		if err := s.notifier.Notify(nctx, o); err != nil {
			s.log.Error("order notification failed", "order_id", o.ID, "err", err)
		}
	}()

	if err := s.orders.AppendOrder(ctx, o, soldIDs); err != nil {
		s.log.Error("order persistence failed", "order_id", o.ID, "err", err)
		return domain.Order{}, err
	}

	s.log.Info("order placed", "order_id", o.ID, "items", len(details.Items), "total", details.Total)
	return o, nil
}

// Wait blocks until in-flight notifications finish. Called on shutdown.
func (s *Service) Wait() {
	s.notifications.Wait()
}

// nextID derives an order id from the clock, bumped past the last
// issued id so ids stay strictly increasing within a run even when two
// orders land in the same millisecond.
func (s *Service) nextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
