package memory

import (
	"context"
	"sync"

	"github.com/dwikikusuma/storefront/internal/user/app"
	"github.com/dwikikusuma/storefront/internal/user/domain"
)

type UserRepo struct {
	mu     sync.RWMutex
	byID   map[string]domain.User
	byName map[string]string
}

var _ app.UserRepo = (*UserRepo)(nil)

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:   make(map[string]domain.User),
		byName: make(map[string]string),
	}
}

func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[u.Username]; taken {
		return domain.User{}, app.ErrUsernameTaken
	}
	r.byID[u.ID] = u
	r.byName[u.Username] = u.ID
	return u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, app.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[username]
	if !ok {
		return domain.User{}, app.ErrUserNotFound
	}
	return r.byID[id], nil
}
