package adapter

import (
	"context"
	"errors"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	"github.com/dwikikusuma/storefront/internal/order/domain"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) GetCart(ctx context.Context, userID string) (domain.CartSnapshot, error) {
	cart, err := r.svc.GetCartByUserID(ctx, userID)
	if errors.Is(err, cartapp.ErrCartNotFound) {
		return domain.CartSnapshot{}, orderapp.ErrCartNotFound
	}
	if err != nil {
		return domain.CartSnapshot{}, err
	}

	entries := make([]domain.Entry, 0, len(cart.Entries))
	for _, e := range cart.Entries {
		entries = append(entries, domain.Entry{
			ItemID:    e.ItemID,
			Name:      e.Name,
			UnitPrice: e.UnitPrice,
		})
	}

	return domain.CartSnapshot{
		UserID:  cart.UserID,
		Entries: entries,
		Total:   cart.Total,
	}, nil
}
