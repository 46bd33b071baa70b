package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/metrics"
	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrCartNotFound = errors.New("cart not found")
)

type Service struct {
	repo  OrderRepo
	users UserReader
	carts CartReader
	now   func() time.Time
}

func NewService(repo OrderRepo, users UserReader, carts CartReader) *Service {
	return &Service{
		repo:  repo,
		users: users,
		carts: carts,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Submit turns the user's current cart into a pending order. The cart is
// left as it is; an empty cart gives an empty order.
func (s *Service) Submit(ctx context.Context, username string) (domain.Order, error) {
	userID, err := s.users.FindUserID(ctx, username)
	if err != nil {
		return domain.Order{}, err
	}

	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return domain.Order{}, err
	}

	entries := make([]domain.Entry, len(cart.Entries))
	copy(entries, cart.Entries)

	order := domain.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		Status:    domain.StatusPending,
		Entries:   entries,
		Total:     cart.Total,
		CreatedAt: s.now(),
	}

	created, err := s.repo.CreateOrderTx(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("store order: %w", err)
	}

	metrics.ObserveOrderSubmitted()
	return created, nil
}

// History lists the user's orders, oldest first.
func (s *Service) History(ctx context.Context, username string) ([]domain.Order, error) {
	userID, err := s.users.FindUserID(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID)
}
