package grpc

import (
	"context"

	"github.com/dwikikusuma/storefront/pkg/grpcjson"
	"github.com/dwikikusuma/storefront/pkg/money"
	"google.golang.org/grpc"
)

const (
	ServiceName = "storefront.catalog.v1.CatalogService"

	GetItemMethod    = "/" + ServiceName + "/GetItem"
	FindByNameMethod = "/" + ServiceName + "/FindByName"
	ListItemsMethod  = "/" + ServiceName + "/ListItems"
	CreateItemMethod = "/" + ServiceName + "/CreateItem"
)

type Item struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Price         money.Money `json:"price"`
	CreatedAtUnix int64       `json:"created_at_unix"`
	UpdatedAtUnix int64       `json:"updated_at_unix"`
}

type GetItemRequest struct {
	ID string `json:"id"`
}

type GetItemResponse struct {
	Item *Item `json:"item"`
}

type FindByNameRequest struct {
	Name string `json:"name"`
}

type FindByNameResponse struct {
	Items []*Item `json:"items"`
}

type ListItemsRequest struct {
	Query  string `json:"query"`
	Limit  int32  `json:"limit"`
	Cursor string `json:"cursor"`
}

type ListItemsResponse struct {
	Items      []*Item `json:"items"`
	NextCursor string  `json:"next_cursor"`
}

type CreateItemRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       money.Money `json:"price"`
}

type CreateItemResponse struct {
	Item *Item `json:"item"`
}

type CatalogServiceServer interface {
	GetItem(context.Context, *GetItemRequest) (*GetItemResponse, error)
	FindByName(context.Context, *FindByNameRequest) (*FindByNameResponse, error)
	ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error)
	CreateItem(context.Context, *CreateItemRequest) (*CreateItemResponse, error)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetItem", Handler: grpcjson.Unary(GetItemMethod, CatalogServiceServer.GetItem)},
		{MethodName: "FindByName", Handler: grpcjson.Unary(FindByNameMethod, CatalogServiceServer.FindByName)},
		{MethodName: "ListItems", Handler: grpcjson.Unary(ListItemsMethod, CatalogServiceServer.ListItems)},
		{MethodName: "CreateItem", Handler: grpcjson.Unary(CreateItemMethod, CatalogServiceServer.CreateItem)},
	},
	Metadata: "storefront/catalog/v1",
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) GetItem(ctx context.Context, in *GetItemRequest) (*GetItemResponse, error) {
	return grpcjson.Invoke[GetItemResponse](ctx, c.cc, GetItemMethod, in)
}

func (c *Client) FindByName(ctx context.Context, in *FindByNameRequest) (*FindByNameResponse, error) {
	return grpcjson.Invoke[FindByNameResponse](ctx, c.cc, FindByNameMethod, in)
}

func (c *Client) ListItems(ctx context.Context, in *ListItemsRequest) (*ListItemsResponse, error) {
	return grpcjson.Invoke[ListItemsResponse](ctx, c.cc, ListItemsMethod, in)
}

func (c *Client) CreateItem(ctx context.Context, in *CreateItemRequest) (*CreateItemResponse, error) {
	return grpcjson.Invoke[CreateItemResponse](ctx, c.cc, CreateItemMethod, in)
}
