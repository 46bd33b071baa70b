package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwikikusuma/storefront/internal/checkout/domain"
	"github.com/dwikikusuma/storefront/pkg/money"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrUserNotFound = errors.New("user not found")
	ErrCartNotFound = errors.New("cart not found")
	ErrItemNotFound = errors.New("item not found")
)

type CartReader interface {
	GetCart(ctx context.Context, username string) (CartView, error)
}

// CartView lists one item id per cart entry, in cart order.
type CartView struct {
	ItemIDs []string
	Total   money.Money
}

type CartItem struct {
	ItemID   string
	Quantity int64
}

type CatalogReader interface {
	GetItem(ctx context.Context, itemID string) (Item, error)
}

type Item struct {
	ID    string
	Name  string
	Price money.Money
}

type Service struct {
	Cart    CartReader
	Catalog CatalogReader

	maxConcurrent int
}

func NewService(cart CartReader, catalog CatalogReader, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		Cart:          cart,
		Catalog:       catalog,
		maxConcurrent: maxConcurrent,
	}
}

func (s *Service) Quote(ctx context.Context, username string) (domain.Quote, error) {
	cart, err := s.Cart.GetCart(ctx, username)
	if err != nil {
		return domain.Quote{}, err
	}

	items := group(cart.ItemIDs)
	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		g.Go(func() error {
			it := items[idx]

			item, err := s.Catalog.GetItem(ctx, it.ItemID)
			if err != nil {
				return fmt.Errorf("failed to get item %s: %w", it.ItemID, err)
			}

			lines[idx] = domain.QuoteLine{
				ItemID:    item.ID,
				Name:      item.Name,
				Quantity:  it.Quantity,
				UnitPrice: item.Price,
				LineTotal: item.Price.Mul(it.Quantity),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	total := money.Zero()
	for _, line := range lines {
		total = total.Add(line.LineTotal)
	}

	return domain.Quote{
		Lines:     lines,
		Total:     total,
		CartTotal: cart.Total,
	}, nil
}

// group counts entries per item, keeping first-appearance order.
func group(itemIDs []string) []CartItem {
	pos := make(map[string]int, len(itemIDs))
	var out []CartItem
	for _, id := range itemIDs {
		if i, ok := pos[id]; ok {
			out[i].Quantity++
			continue
		}
		pos[id] = len(out)
		out = append(out, CartItem{ItemID: id, Quantity: 1})
	}
	return out
}
