package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
)

// CartRepo persists one cart per user. Save is a versioned write: it fails
// with ErrVersionConflict when the stored version differs from cart.Version,
// and returns the cart with its version bumped otherwise.
type CartRepo interface {
	GetByUserID(ctx context.Context, userID string) (domain.Cart, error)
	Create(ctx context.Context, cart domain.Cart) (domain.Cart, error)
	Save(ctx context.Context, cart domain.Cart) (domain.Cart, error)
	Delete(ctx context.Context, cartID string) error
}

// UserReader resolves a username to its user id or ErrUserNotFound.
type UserReader interface {
	FindUserID(ctx context.Context, username string) (string, error)
}

// CatalogReader resolves an item id or returns domain.ErrItemNotFound.
type CatalogReader interface {
	GetItem(ctx context.Context, itemID string) (domain.Item, error)
}
