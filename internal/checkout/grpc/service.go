package grpc

import (
	"context"

	"github.com/dwikikusuma/storefront/pkg/grpcjson"
	"github.com/dwikikusuma/storefront/pkg/money"
	"google.golang.org/grpc"
)

const (
	ServiceName = "storefront.checkout.v1.CheckoutService"

	QuoteMethod = "/" + ServiceName + "/Quote"
)

type QuoteLine struct {
	ItemID    string      `json:"item_id"`
	Name      string      `json:"name"`
	Quantity  int32       `json:"quantity"`
	UnitPrice money.Money `json:"unit_price"`
	LineTotal money.Money `json:"line_total"`
}

type QuoteRequest struct {
	Username string `json:"username"`
}

type QuoteResponse struct {
	Lines     []*QuoteLine `json:"lines"`
	Total     money.Money  `json:"total"`
	CartTotal money.Money  `json:"cart_total"`
}

type CheckoutServiceServer interface {
	Quote(context.Context, *QuoteRequest) (*QuoteResponse, error)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CheckoutServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Quote", Handler: grpcjson.Unary(QuoteMethod, CheckoutServiceServer.Quote)},
	},
	Metadata: "storefront/checkout/v1",
}

func RegisterCheckoutServiceServer(s grpc.ServiceRegistrar, srv CheckoutServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) Quote(ctx context.Context, in *QuoteRequest) (*QuoteResponse, error) {
	return grpcjson.Invoke[QuoteResponse](ctx, c.cc, QuoteMethod, in)
}
