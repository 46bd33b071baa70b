package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	goredis "github.com/go-redis/redis/v8"
)

const keyPrefix = "catalog:item:"

// Store is the part of *goredis.Client the cache needs.
type Store interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
}

// CachedRepo is a read-through cache in front of another ItemRepo. Only
// single-item lookups are cached; items never change, so entries are
// only evicted by TTL. Redis failures degrade to the inner repo.
type CachedRepo struct {
	inner app.ItemRepo
	store Store
	ttl   time.Duration
}

var _ app.ItemRepo = (*CachedRepo)(nil)

func NewCachedRepo(inner app.ItemRepo, store Store, ttl time.Duration) *CachedRepo {
	return &CachedRepo{inner: inner, store: store, ttl: ttl}
}

func (c *CachedRepo) Get(ctx context.Context, id string) (domain.Item, error) {
	key := keyPrefix + id

	data, err := c.store.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var it domain.Item
		if err := json.Unmarshal(data, &it); err == nil {
			return it, nil
		}
		slog.WarnContext(ctx, "dropping undecodable catalog cache entry", slog.String("key", key))
	case !errors.Is(err, goredis.Nil):
		slog.WarnContext(ctx, "catalog cache read failed", slog.String("key", key), slog.Any("err", err))
	}

	it, err := c.inner.Get(ctx, id)
	if err != nil {
		return domain.Item{}, err
	}
	c.put(ctx, it)
	return it, nil
}

func (c *CachedRepo) Create(ctx context.Context, it domain.Item) (domain.Item, error) {
	created, err := c.inner.Create(ctx, it)
	if err != nil {
		return domain.Item{}, err
	}
	c.put(ctx, created)
	return created, nil
}

func (c *CachedRepo) FindByName(ctx context.Context, name string) ([]domain.Item, error) {
	return c.inner.FindByName(ctx, name)
}

func (c *CachedRepo) List(ctx context.Context, query string, limit int, cursor string) ([]domain.Item, string, error) {
	return c.inner.List(ctx, query, limit, cursor)
}

func (c *CachedRepo) put(ctx context.Context, it domain.Item) {
	data, err := json.Marshal(it)
	if err != nil {
		return
	}
	if err := c.store.Set(ctx, keyPrefix+it.ID, data, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "catalog cache write failed", slog.String("item_id", it.ID), slog.Any("err", err))
	}
}
