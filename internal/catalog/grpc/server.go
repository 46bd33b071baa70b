package grpc

import (
	"context"
	"errors"

	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	svc *app.Service
}

var _ CatalogServiceServer = (*Server)(nil)

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) CreateItem(ctx context.Context, req *CreateItemRequest) (*CreateItemResponse, error) {
	item, err := s.svc.CreateItem(ctx, req.Name, req.Description, req.Price)
	if err != nil {
		return nil, mapErr(err)
	}
	return &CreateItemResponse{Item: toMessage(item)}, nil
}

func (s *Server) GetItem(ctx context.Context, req *GetItemRequest) (*GetItemResponse, error) {
	it, err := s.svc.GetItem(ctx, req.ID)
	if err != nil {
		return nil, mapErr(err)
	}
	return &GetItemResponse{Item: toMessage(it)}, nil
}

func (s *Server) FindByName(ctx context.Context, req *FindByNameRequest) (*FindByNameResponse, error) {
	items, err := s.svc.FindByName(ctx, req.Name)
	if err != nil {
		return nil, mapErr(err)
	}
	return &FindByNameResponse{Items: toMessages(items)}, nil
}

func (s *Server) ListItems(ctx context.Context, req *ListItemsRequest) (*ListItemsResponse, error) {
	items, next, err := s.svc.ListItems(ctx, req.Query, int(req.Limit), req.Cursor)
	if err != nil {
		return nil, mapErr(err)
	}
	return &ListItemsResponse{Items: toMessages(items), NextCursor: next}, nil
}

func toMessage(it domain.Item) *Item {
	return &Item{
		ID:            it.ID,
		Name:          it.Name,
		Description:   it.Description,
		Price:         it.Price,
		CreatedAtUnix: it.CreatedAt.Unix(),
		UpdatedAtUnix: it.UpdatedAt.Unix(),
	}
}

func toMessages(items []domain.Item) []*Item {
	out := make([]*Item, 0, len(items))
	for _, it := range items {
		out = append(out, toMessage(it))
	}
	return out
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	}
	return status.Error(codes.Internal, "internal error")
}
