package adapter

import (
	"context"
	"testing"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartmem "github.com/dwikikusuma/storefront/internal/cart/infra/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartServiceCreator(t *testing.T) {
	ctx := context.Background()
	repo := cartmem.NewCartRepo()
	c := NewCartServiceCreator(cartapp.NewService(repo, nil, nil, 1))

	id, err := c.CreateCart(ctx, "u-1")
	require.NoError(t, err)

	cart, err := repo.GetByUserID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, id, cart.ID)

	_, err = c.CreateCart(ctx, "u-1")
	assert.ErrorIs(t, err, cartapp.ErrCartExists)

	require.NoError(t, c.DeleteCart(ctx, id))
	_, err = repo.GetByUserID(ctx, "u-1")
	assert.ErrorIs(t, err, cartapp.ErrCartNotFound)
}
