package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/internal/catalog/infra/memory"
	"github.com/dwikikusuma/storefront/pkg/grpcjson"
	"github.com/dwikikusuma/storefront/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const widgetID = "00000000-0000-4000-8000-000000000002"

func newClient(t *testing.T) *Client {
	t.Helper()
	repo := memory.NewItemRepo(domain.Item{ID: widgetID, Name: "Square Widget", Price: money.MustParse("1.99")})

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	RegisterCatalogServiceServer(srv, NewServer(app.NewService(repo)))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	cc, err := grpcjson.Dial("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)
	t.Cleanup(func() { cc.Close() })
	return NewClient(cc)
}

func TestCatalogServer(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	t.Run("get item", func(t *testing.T) {
		resp, err := client.GetItem(ctx, &GetItemRequest{ID: widgetID})
		require.NoError(t, err)
		assert.Equal(t, "Square Widget", resp.Item.Name)
		assert.Equal(t, "1.99", resp.Item.Price.String())
	})

	t.Run("missing item", func(t *testing.T) {
		_, err := client.GetItem(ctx, &GetItemRequest{ID: "404"})
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("blank id", func(t *testing.T) {
		_, err := client.GetItem(ctx, &GetItemRequest{})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("create then find by name", func(t *testing.T) {
		created, err := client.CreateItem(ctx, &CreateItemRequest{Name: "Test Item", Price: money.MustParse("10.00")})
		require.NoError(t, err)
		assert.NotEmpty(t, created.Item.ID)

		found, err := client.FindByName(ctx, &FindByNameRequest{Name: "Test Item"})
		require.NoError(t, err)
		require.Len(t, found.Items, 1)
		assert.Equal(t, created.Item.ID, found.Items[0].ID)

		none, err := client.FindByName(ctx, &FindByNameRequest{Name: "Nope"})
		require.NoError(t, err)
		assert.Empty(t, none.Items)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		_, err := client.CreateItem(ctx, &CreateItemRequest{Name: "Refund", Price: money.MustParse("-1.00")})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("list", func(t *testing.T) {
		resp, err := client.ListItems(ctx, &ListItemsRequest{Query: "widget"})
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Empty(t, resp.NextCursor)
	})
}

func TestMapErrHidesInternals(t *testing.T) {
	err := mapErr(assert.AnError)
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Equal(t, "internal error", status.Convert(err).Message())

	assert.Equal(t, codes.Canceled, status.Code(mapErr(context.Canceled)))
}
