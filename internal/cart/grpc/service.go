package grpc

import (
	"context"

	"github.com/dwikikusuma/storefront/pkg/grpcjson"
	"github.com/dwikikusuma/storefront/pkg/money"
	"google.golang.org/grpc"
)

const (
	ServiceName = "storefront.cart.v1.CartService"

	GetCartMethod        = "/" + ServiceName + "/GetCart"
	AddToCartMethod      = "/" + ServiceName + "/AddToCart"
	RemoveFromCartMethod = "/" + ServiceName + "/RemoveFromCart"
)

type Entry struct {
	ItemID    string      `json:"item_id"`
	Name      string      `json:"name"`
	UnitPrice money.Money `json:"unit_price"`
}

type Cart struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user_id"`
	Entries       []Entry     `json:"entries"`
	Total         money.Money `json:"total"`
	Version       int64       `json:"version"`
	CreatedAtUnix int64       `json:"created_at_unix"`
	UpdatedAtUnix int64       `json:"updated_at_unix"`
}

type GetCartRequest struct {
	Username string `json:"username"`
}

type UpdateCartRequest struct {
	Username string `json:"username"`
	ItemID   string `json:"item_id"`
	Quantity int32  `json:"quantity"`
}

type CartServiceServer interface {
	GetCart(context.Context, *GetCartRequest) (*Cart, error)
	AddToCart(context.Context, *UpdateCartRequest) (*Cart, error)
	RemoveFromCart(context.Context, *UpdateCartRequest) (*Cart, error)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CartServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetCart", Handler: grpcjson.Unary(GetCartMethod, CartServiceServer.GetCart)},
		{MethodName: "AddToCart", Handler: grpcjson.Unary(AddToCartMethod, CartServiceServer.AddToCart)},
		{MethodName: "RemoveFromCart", Handler: grpcjson.Unary(RemoveFromCartMethod, CartServiceServer.RemoveFromCart)},
	},
	Metadata: "storefront/cart/v1",
}

func RegisterCartServiceServer(s grpc.ServiceRegistrar, srv CartServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) GetCart(ctx context.Context, in *GetCartRequest) (*Cart, error) {
	return grpcjson.Invoke[Cart](ctx, c.cc, GetCartMethod, in)
}

func (c *Client) AddToCart(ctx context.Context, in *UpdateCartRequest) (*Cart, error) {
	return grpcjson.Invoke[Cart](ctx, c.cc, AddToCartMethod, in)
}

func (c *Client) RemoveFromCart(ctx context.Context, in *UpdateCartRequest) (*Cart, error) {
	return grpcjson.Invoke[Cart](ctx, c.cc, RemoveFromCartMethod, in)
}
