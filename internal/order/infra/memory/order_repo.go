package memory

import (
	"context"
	"sync"

	"github.com/dwikikusuma/storefront/internal/order/domain"
)

// OrderRepo keeps orders per user in submission order.
type OrderRepo struct {
	mu     sync.RWMutex
	byUser map[string][]domain.Order
}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{byUser: make(map[string][]domain.Order)}
}

func (r *OrderRepo) CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[order.UserID] = append(r.byUser[order.UserID], clone(order))
	return clone(order), nil
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.byUser[userID]
	out := make([]domain.Order, 0, len(stored))
	for _, o := range stored {
		out = append(out, clone(o))
	}
	return out, nil
}

func clone(o domain.Order) domain.Order {
	entries := make([]domain.Entry, len(o.Entries))
	copy(entries, o.Entries)
	o.Entries = entries
	return o
}
