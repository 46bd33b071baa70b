package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dwikikusuma/storefront/internal/user/domain"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPassword    = errors.New("password must be 7 to 72 bytes and match its confirmation")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

const (
	minPasswordLen = 7
	// bcrypt refuses anything longer.
	maxPasswordLen = 72
)

type Service struct {
	repo   UserRepo
	carts  CartCreator
	hasher PasswordHasher
	now    func() time.Time
}

func NewService(repo UserRepo, carts CartCreator, hasher PasswordHasher) *Service {
	return &Service{
		repo:   repo,
		carts:  carts,
		hasher: hasher,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Register creates the user's empty cart, then the user pointing at it. If
// the user cannot be stored the cart is deleted again.
func (s *Service) Register(ctx context.Context, username, password, confirm string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.User{}, ErrInvalidInput
	}
	if len(password) < minPasswordLen || len(password) > maxPasswordLen || password != confirm {
		return domain.User{}, ErrInvalidPassword
	}

	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return domain.User{}, ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return domain.User{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	userID := uuid.NewString()
	cartID, err := s.carts.CreateCart(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("create cart: %w", err)
	}

	user, err := s.repo.Create(ctx, domain.User{
		ID:           userID,
		Username:     username,
		PasswordHash: hash,
		CartID:       cartID,
		CreatedAt:    s.now(),
	})
	if err != nil {
		// the caller's context may be what failed the insert
		if delErr := s.carts.DeleteCart(context.WithoutCancel(ctx), cartID); delErr != nil {
			slog.ErrorContext(ctx, "orphaned cart after failed registration",
				slog.String("cart_id", cartID), slog.Any("err", delErr))
		}
		return domain.User{}, err
	}

	return user, nil
}

func (s *Service) FindByID(ctx context.Context, id string) (domain.User, error) {
	if strings.TrimSpace(id) == "" {
		return domain.User{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	if strings.TrimSpace(username) == "" {
		return domain.User{}, ErrInvalidInput
	}
	return s.repo.GetByUsername(ctx, username)
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, ErrUserNotFound) {
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}
