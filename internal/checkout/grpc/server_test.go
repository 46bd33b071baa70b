package grpc

import (
	"context"
	"fmt"
	"testing"

	"github.com/dwikikusuma/storefront/internal/checkout/app"
	"github.com/dwikikusuma/storefront/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type carts map[string]app.CartView

func (c carts) GetCart(ctx context.Context, username string) (app.CartView, error) {
	if v, ok := c[username]; ok {
		return v, nil
	}
	return app.CartView{}, app.ErrUserNotFound
}

type catalog map[string]app.Item

func (c catalog) GetItem(ctx context.Context, id string) (app.Item, error) {
	if it, ok := c[id]; ok {
		return it, nil
	}
	return app.Item{}, app.ErrItemNotFound
}

func newServer() *Server {
	svc := app.NewService(
		carts{
			"test":  {ItemIDs: []string{"1", "1"}, Total: money.MustParse("20.00")},
			"empty": {Total: money.Zero()},
		},
		catalog{"1": {ID: "1", Name: "Test Item", Price: money.MustParse("10.00")}},
		2,
	)
	return NewServer(svc)
}

func TestQuote(t *testing.T) {
	s := newServer()

	resp, err := s.Quote(context.Background(), &QuoteRequest{Username: "test"})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, int32(2), resp.Lines[0].Quantity)
	assert.Equal(t, "20.00", resp.Total.String())
	assert.Equal(t, "20.00", resp.CartTotal.String())
}

func TestQuoteErrors(t *testing.T) {
	s := newServer()

	tests := []struct {
		username string
		want     codes.Code
	}{
		{"", codes.InvalidArgument},
		{"empty", codes.FailedPrecondition},
		{"ghost", codes.NotFound},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("user %q", tt.username), func(t *testing.T) {
			_, err := s.Quote(context.Background(), &QuoteRequest{Username: tt.username})
			assert.Equal(t, tt.want, status.Code(err))
		})
	}
}
