package grpc

import (
	"context"

	"github.com/dwikikusuma/storefront/pkg/grpcjson"
	"github.com/dwikikusuma/storefront/pkg/money"
	"google.golang.org/grpc"
)

const (
	ServiceName = "storefront.order.v1.OrderService"

	SubmitMethod  = "/" + ServiceName + "/Submit"
	HistoryMethod = "/" + ServiceName + "/History"
)

type Entry struct {
	ItemID    string      `json:"item_id"`
	Name      string      `json:"name"`
	UnitPrice money.Money `json:"unit_price"`
}

type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Status    string      `json:"status"`
	Entries   []Entry     `json:"entries"`
	Total     money.Money `json:"total"`
	CreatedAt string      `json:"created_at"`
}

type SubmitRequest struct {
	Username string `json:"username"`
}

type SubmitResponse struct {
	Order *Order `json:"order"`
}

type HistoryRequest struct {
	Username string `json:"username"`
}

type HistoryResponse struct {
	Orders []*Order `json:"orders"`
}

type OrderServiceServer interface {
	Submit(context.Context, *SubmitRequest) (*SubmitResponse, error)
	History(context.Context, *HistoryRequest) (*HistoryResponse, error)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*OrderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Submit", Handler: grpcjson.Unary(SubmitMethod, OrderServiceServer.Submit)},
		{MethodName: "History", Handler: grpcjson.Unary(HistoryMethod, OrderServiceServer.History)},
	},
	Metadata: "storefront/order/v1",
}

func RegisterOrderServiceServer(s grpc.ServiceRegistrar, srv OrderServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) Submit(ctx context.Context, in *SubmitRequest) (*SubmitResponse, error) {
	return grpcjson.Invoke[SubmitResponse](ctx, c.cc, SubmitMethod, in)
}

func (c *Client) History(ctx context.Context, in *HistoryRequest) (*HistoryResponse, error) {
	return grpcjson.Invoke[HistoryResponse](ctx, c.cc, HistoryMethod, in)
}
