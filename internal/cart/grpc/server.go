package grpc

import (
	"context"
	"errors"

	"github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	svc *app.Service
}

var _ CartServiceServer = (*Server)(nil)

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) GetCart(ctx context.Context, req *GetCartRequest) (*Cart, error) {
	if req.Username == "" {
		return nil, status.Error(codes.InvalidArgument, "username is required")
	}

	cart, err := s.svc.GetCart(ctx, req.Username)
	if err != nil {
		return nil, mapErr(err)
	}
	return toMessage(cart), nil
}

func (s *Server) AddToCart(ctx context.Context, req *UpdateCartRequest) (*Cart, error) {
	return s.mutate(ctx, req, domain.DirectionAdd)
}

func (s *Server) RemoveFromCart(ctx context.Context, req *UpdateCartRequest) (*Cart, error) {
	return s.mutate(ctx, req, domain.DirectionRemove)
}

func (s *Server) mutate(ctx context.Context, req *UpdateCartRequest, dir domain.Direction) (*Cart, error) {
	if req.Username == "" || req.ItemID == "" {
		return nil, status.Error(codes.InvalidArgument, "username and item_id are required")
	}

	cart, err := s.svc.MutateCart(ctx, req.Username, req.ItemID, int(req.Quantity), dir)
	if err != nil {
		return nil, mapErr(err)
	}
	return toMessage(cart), nil
}

func toMessage(cart domain.Cart) *Cart {
	entries := make([]Entry, 0, len(cart.Entries))
	for _, e := range cart.Entries {
		entries = append(entries, Entry{
			ItemID:    e.ItemID,
			Name:      e.Name,
			UnitPrice: e.UnitPrice,
		})
	}

	return &Cart{
		ID:            cart.ID,
		UserID:        cart.UserID,
		Entries:       entries,
		Total:         cart.Total,
		Version:       cart.Version,
		CreatedAtUnix: cart.CreatedAt.Unix(),
		UpdatedAtUnix: cart.UpdatedAt.Unix(),
	}
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrUserNotFound),
		errors.Is(err, app.ErrCartNotFound),
		errors.Is(err, domain.ErrItemNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidDirection),
		errors.Is(err, domain.ErrCartFull):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrVersionConflict):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	}
	return status.Error(codes.Internal, "internal error")
}
