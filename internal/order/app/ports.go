package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/order/domain"
)

type OrderRepo interface {
	CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

type UserReader interface {
	FindUserID(ctx context.Context, username string) (string, error)
}

type CartReader interface {
	GetCart(ctx context.Context, userID string) (domain.CartSnapshot, error)
}
