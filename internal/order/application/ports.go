package application

import (
	"context"

	catalog "github.com/matex-shoes/storefront/internal/catalog/domain"
	"github.com/matex-shoes/storefront/internal/order/domain"
)

type CatalogRepository interface {
	ListShoes(ctx context.Context) ([]catalog.Shoe, error)
	GetShoe(ctx context.Context, id int64) (catalog.Shoe, error)
}

type OrderRepository interface {
	// AppendOrder records the order and marks every listed catalog id
	// sold, as one read-modify-write of the persisted store.
	AppendOrder(ctx context.Context, o domain.Order, soldIDs []int64) error
}

type Notifier interface {
	Notify(ctx context.Context, o domain.Order) error
}
