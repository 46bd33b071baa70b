package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
)

type CartServiceCreator struct {
	svc *cartapp.Service
}

func NewCartServiceCreator(svc *cartapp.Service) *CartServiceCreator {
	return &CartServiceCreator{svc: svc}
}

func (c *CartServiceCreator) CreateCart(ctx context.Context, userID string) (string, error) {
	cart, err := c.svc.CreateCart(ctx, userID)
	if err != nil {
		return "", err
	}
	return cart.ID, nil
}

func (c *CartServiceCreator) DeleteCart(ctx context.Context, cartID string) error {
	return c.svc.DeleteCart(ctx, cartID)
}
