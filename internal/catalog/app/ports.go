package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

type ItemRepo interface {
	Create(ctx context.Context, it domain.Item) (domain.Item, error)
	Get(ctx context.Context, id string) (domain.Item, error)
	FindByName(ctx context.Context, name string) ([]domain.Item, error)
	List(ctx context.Context, query string, limit int, cursor string) ([]domain.Item, string, error)
}
