package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/google/uuid"
)

// ItemRepo keeps the catalog in a map. Items are immutable, so values are
// handed out without copying.
type ItemRepo struct {
	mu    sync.RWMutex
	items map[string]domain.Item
}

var _ app.ItemRepo = (*ItemRepo)(nil)

func NewItemRepo(seed ...domain.Item) *ItemRepo {
	r := &ItemRepo{items: make(map[string]domain.Item, len(seed))}
	for _, it := range seed {
		r.items[it.ID] = it
	}
	return r
}

func (r *ItemRepo) Create(ctx context.Context, it domain.Item) (domain.Item, error) {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	it.CreatedAt, it.UpdatedAt = now, now

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[it.ID] = it
	return it, nil
}

func (r *ItemRepo) Get(ctx context.Context, id string) (domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[id]
	if !ok {
		return domain.Item{}, app.ErrNotFound
	}
	return it, nil
}

func (r *ItemRepo) FindByName(ctx context.Context, name string) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Item, 0)
	for _, it := range r.items {
		if it.Name == name {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// List orders by id, like the SQL repo, so cursors behave the same.
func (r *ItemRepo) List(ctx context.Context, query string, limit int, cursor string) ([]domain.Item, string, error) {
	cursor = strings.TrimSpace(cursor)
	if cursor != "" {
		if _, err := uuid.Parse(cursor); err != nil {
			return nil, "", app.ErrInvalidInput
		}
	}
	query = strings.ToLower(strings.TrimSpace(query))

	r.mu.RLock()
	all := make([]domain.Item, 0, len(r.items))
	for _, it := range r.items {
		if query != "" && !strings.Contains(strings.ToLower(it.Name), query) {
			continue
		}
		if cursor != "" && it.ID <= cursor {
			continue
		}
		all = append(all, it)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	if len(all) < limit {
		return all, "", nil
	}
	page := all[:limit]
	return page, page[len(page)-1].ID, nil
}
