package adapter

import (
	"context"
	"errors"

	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	userapp "github.com/dwikikusuma/storefront/internal/user/app"
)

type UserServiceReader struct {
	svc *userapp.Service
}

func NewUserServiceReader(svc *userapp.Service) *UserServiceReader {
	return &UserServiceReader{svc: svc}
}

func (r *UserServiceReader) FindUserID(ctx context.Context, username string) (string, error) {
	u, err := r.svc.FindByUsername(ctx, username)
	if errors.Is(err, userapp.ErrUserNotFound) || errors.Is(err, userapp.ErrInvalidInput) {
		return "", orderapp.ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	return u.ID, nil
}
