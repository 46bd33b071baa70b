package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/user/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// CartCreator is the slice of the cart service registration needs.
type CartCreator interface {
	CreateCart(ctx context.Context, userID string) (cartID string, err error)
	DeleteCart(ctx context.Context, cartID string) error
}
