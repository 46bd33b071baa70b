package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/dwikikusuma/storefront/pkg/metrics"
	"github.com/dwikikusuma/storefront/pkg/money"
	"github.com/google/uuid"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrCartExists      = errors.New("user already has a cart")
	ErrVersionConflict = errors.New("cart was modified concurrently")
)

const (
	defaultMaxRetries = 5
	defaultMaxEntries = 1000
)

type Service struct {
	repo    CartRepo
	users   UserReader
	catalog CatalogReader

	locks      *userLocks
	maxRetries int
	maxEntries int
	now        func() time.Time
}

type Option func(*Service)

// WithMaxEntries caps how many entries a cart may hold. Values <= 0 keep
// the default.
func WithMaxEntries(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxEntries = n
		}
	}
}

func NewService(repo CartRepo, users UserReader, catalog CatalogReader, maxRetries int, opts ...Option) *Service {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	s := &Service{
		repo:       repo,
		users:      users,
		catalog:    catalog,
		locks:      newUserLocks(),
		maxRetries: maxRetries,
		maxEntries: defaultMaxEntries,
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) GetCart(ctx context.Context, username string) (domain.Cart, error) {
	userID, err := s.users.FindUserID(ctx, username)
	if err != nil {
		return domain.Cart{}, err
	}
	return s.repo.GetByUserID(ctx, userID)
}

func (s *Service) GetCartByUserID(ctx context.Context, userID string) (domain.Cart, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// CreateCart creates the empty cart a user starts with.
func (s *Service) CreateCart(ctx context.Context, userID string) (domain.Cart, error) {
	now := s.now()
	return s.repo.Create(ctx, domain.Cart{
		ID:        uuid.NewString(),
		UserID:    userID,
		Total:     money.Zero(),
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// DeleteCart only exists to undo a failed registration.
func (s *Service) DeleteCart(ctx context.Context, cartID string) error {
	return s.repo.Delete(ctx, cartID)
}

func (s *Service) AddToCart(ctx context.Context, username, itemID string, quantity int) (domain.Cart, error) {
	return s.MutateCart(ctx, username, itemID, quantity, domain.DirectionAdd)
}

func (s *Service) RemoveFromCart(ctx context.Context, username, itemID string, quantity int) (domain.Cart, error) {
	return s.MutateCart(ctx, username, itemID, quantity, domain.DirectionRemove)
}

// MutateCart resolves the user and the item, then applies the mutation to
// the user's cart and writes it back.
func (s *Service) MutateCart(ctx context.Context, username, itemID string, quantity int, dir domain.Direction) (cart domain.Cart, err error) {
	defer func() {
		metrics.ObserveCartMutation(dir.String(), err)
	}()

	if quantity <= 0 {
		return domain.Cart{}, domain.ErrInvalidQuantity
	}
	if dir != domain.DirectionAdd && dir != domain.DirectionRemove {
		return domain.Cart{}, domain.ErrInvalidDirection
	}
	if dir == domain.DirectionAdd && quantity > s.maxEntries {
		return domain.Cart{}, domain.ErrCartFull
	}

	userID, err := s.users.FindUserID(ctx, username)
	if err != nil {
		return domain.Cart{}, err
	}

	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		return domain.Cart{}, err
	}

	m := domain.Mutation{Item: item, Quantity: quantity, Direction: dir, MaxEntries: s.maxEntries}
	return s.update(ctx, userID, func(c domain.Cart) (domain.Cart, error) {
		return domain.ApplyMutation(c, m)
	})
}

// update runs load -> fn -> save while holding the user's lock. Version
// conflicts come from writers outside this process and are retried; errors
// returned by fn are not.
func (s *Service) update(ctx context.Context, userID string, fn func(domain.Cart) (domain.Cart, error)) (domain.Cart, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return domain.Cart{}, err
		}

		current, err := s.repo.GetByUserID(ctx, userID)
		if err != nil {
			return domain.Cart{}, err
		}

		next, err := fn(current)
		if err != nil {
			return domain.Cart{}, err
		}
		next.UpdatedAt = s.now()

		saved, err := s.repo.Save(ctx, next)
		if err == nil {
			return saved, nil
		}
		if !errors.Is(err, ErrVersionConflict) || attempt >= s.maxRetries {
			return domain.Cart{}, err
		}

		metrics.CartConflictRetries.Inc()
		slog.DebugContext(ctx, "cart version conflict, retrying",
			slog.String("user_id", userID), slog.Int("attempt", attempt+1))
	}
}
