package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/pkg/money"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("item not found")
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type Service struct {
	repo ItemRepo
}

func NewService(repo ItemRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) CreateItem(ctx context.Context, name, desc string, price money.Money) (domain.Item, error) {
	name = strings.TrimSpace(name)

	if name == "" || price.IsNegative() {
		return domain.Item{}, ErrInvalidInput
	}

	it := domain.Item{
		Name:        name,
		Description: desc,
		Price:       price,
	}

	item, err := s.repo.Create(ctx, it)
	if err != nil {
		return domain.Item{}, err
	}

	return item, nil
}

func (s *Service) GetItem(ctx context.Context, id string) (domain.Item, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Item{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

// FindByName returns every item whose name matches exactly. No match is an
// empty slice, not an error.
func (s *Service) FindByName(ctx context.Context, name string) ([]domain.Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.FindByName(ctx, name)
}

func (s *Service) ListItems(ctx context.Context, query string, limit int, cursor string) ([]domain.Item, string, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.repo.List(ctx, query, limit, cursor)
}
