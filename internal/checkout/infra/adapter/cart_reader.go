package adapter

import (
	"context"
	"errors"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) GetCart(ctx context.Context, username string) (checkoutapp.CartView, error) {
	cart, err := r.svc.GetCart(ctx, username)
	switch {
	case errors.Is(err, cartapp.ErrUserNotFound):
		return checkoutapp.CartView{}, checkoutapp.ErrUserNotFound
	case errors.Is(err, cartapp.ErrCartNotFound):
		return checkoutapp.CartView{}, checkoutapp.ErrCartNotFound
	case err != nil:
		return checkoutapp.CartView{}, err
	}

	ids := make([]string, 0, len(cart.Entries))
	for _, e := range cart.Entries {
		ids = append(ids, e.ItemID)
	}
	return checkoutapp.CartView{ItemIDs: ids, Total: cart.Total}, nil
}
