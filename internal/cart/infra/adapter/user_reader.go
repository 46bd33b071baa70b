package adapter

import (
	"context"
	"errors"
	"strings"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	userapp "github.com/dwikikusuma/storefront/internal/user/app"
)

// UserDirectoryReader resolves usernames straight from the user store.
// The user service itself depends on the cart service for registration, so
// the cart side reads the directory rather than the service.
type UserDirectoryReader struct {
	repo userapp.UserRepo
}

func NewUserDirectoryReader(repo userapp.UserRepo) *UserDirectoryReader {
	return &UserDirectoryReader{repo: repo}
}

func (r *UserDirectoryReader) FindUserID(ctx context.Context, username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", cartapp.ErrUserNotFound
	}

	u, err := r.repo.GetByUsername(ctx, username)
	if errors.Is(err, userapp.ErrUserNotFound) {
		return "", cartapp.ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	return u.ID, nil
}
