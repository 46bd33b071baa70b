package adapter

import (
	"context"
	"testing"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	cartmem "github.com/dwikikusuma/storefront/internal/cart/infra/memory"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	userapp "github.com/dwikikusuma/storefront/internal/user/app"
	usermem "github.com/dwikikusuma/storefront/internal/user/infra/memory"
	"github.com/dwikikusuma/storefront/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type users map[string]string

func (u users) FindUserID(ctx context.Context, username string) (string, error) {
	if id, ok := u[username]; ok {
		return id, nil
	}
	return "", cartapp.ErrUserNotFound
}

type widgets struct{}

func (widgets) GetItem(ctx context.Context, id string) (cartdomain.Item, error) {
	return cartdomain.Item{ID: id, Name: "Round Widget", Price: money.MustParse("2.99")}, nil
}

type noCarts struct{}

func (noCarts) CreateCart(ctx context.Context, userID string) (string, error) {
	return "cart-" + userID, nil
}

func (noCarts) DeleteCart(ctx context.Context, cartID string) error { return nil }

type plainHasher struct{}

func (plainHasher) Hash(pw string) (string, error) { return pw, nil }

func (plainHasher) Compare(hash, pw string) error { return nil }

func TestCartServiceReader(t *testing.T) {
	ctx := context.Background()
	cartSvc := cartapp.NewService(cartmem.NewCartRepo(), users{"test": "u-1"}, widgets{}, 3)

	_, err := cartSvc.CreateCart(ctx, "u-1")
	require.NoError(t, err)
	_, err = cartSvc.AddToCart(ctx, "test", "i-1", 2)
	require.NoError(t, err)

	r := NewCartServiceReader(cartSvc)

	snap, err := r.GetCart(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", snap.UserID)
	require.Len(t, snap.Entries, 2)
	assert.Equal(t, "Round Widget", snap.Entries[0].Name)
	assert.Equal(t, "5.98", snap.Total.String())

	_, err = r.GetCart(ctx, "u-2")
	assert.ErrorIs(t, err, orderapp.ErrCartNotFound)
}

func TestUserServiceReader(t *testing.T) {
	ctx := context.Background()
	userSvc := userapp.NewService(usermem.NewUserRepo(), noCarts{}, plainHasher{})
	u, err := userSvc.Register(ctx, "test", "password", "password")
	require.NoError(t, err)

	r := NewUserServiceReader(userSvc)

	id, err := r.FindUserID(ctx, "test")
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)

	_, err = r.FindUserID(ctx, "ghost")
	assert.ErrorIs(t, err, orderapp.ErrUserNotFound)

	_, err = r.FindUserID(ctx, "")
	assert.ErrorIs(t, err, orderapp.ErrUserNotFound)
}
