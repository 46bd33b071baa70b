// Package memory keeps carts in process memory. It backs tests and the
// STORE_DRIVER=memory mode of cmd/api.
package memory

import (
	"context"
	"sync"

	"github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/google/uuid"
)

type CartRepo struct {
	mu     sync.RWMutex
	byUser map[string]domain.Cart
	owner  map[string]string // cart id -> user id
}

var _ app.CartRepo = (*CartRepo)(nil)

func NewCartRepo() *CartRepo {
	return &CartRepo{
		byUser: make(map[string]domain.Cart),
		owner:  make(map[string]string),
	}
}

func (r *CartRepo) GetByUserID(_ context.Context, userID string) (domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.byUser[userID]
	if !ok {
		return domain.Cart{}, app.ErrCartNotFound
	}
	return cart.Clone(), nil
}

func (r *CartRepo) Create(_ context.Context, cart domain.Cart) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUser[cart.UserID]; exists {
		return domain.Cart{}, app.ErrCartExists
	}
	if cart.ID == "" {
		cart.ID = uuid.NewString()
	}
	cart.Version = 1

	stored := cart.Clone()
	r.byUser[cart.UserID] = stored
	r.owner[cart.ID] = cart.UserID
	return stored.Clone(), nil
}

func (r *CartRepo) Save(_ context.Context, cart domain.Cart) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byUser[cart.UserID]
	if !ok || current.ID != cart.ID {
		return domain.Cart{}, app.ErrCartNotFound
	}
	if current.Version != cart.Version {
		return domain.Cart{}, app.ErrVersionConflict
	}

	cart.Version++
	cart.CreatedAt = current.CreatedAt
	stored := cart.Clone()
	r.byUser[cart.UserID] = stored
	return stored.Clone(), nil
}

func (r *CartRepo) Delete(_ context.Context, cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	userID, ok := r.owner[cartID]
	if !ok {
		return app.ErrCartNotFound
	}
	delete(r.owner, cartID)
	delete(r.byUser, userID)
	return nil
}
