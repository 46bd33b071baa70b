package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dwikikusuma/storefront/internal/order/app"
	"github.com/dwikikusuma/storefront/internal/order/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	svc *app.Service
}

var _ OrderServiceServer = (*Server)(nil)

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) Submit(ctx context.Context, req *SubmitRequest) (*SubmitResponse, error) {
	if req.Username == "" {
		return nil, status.Error(codes.InvalidArgument, "username is required")
	}

	order, err := s.svc.Submit(ctx, req.Username)
	if err != nil {
		return nil, mapErr(err)
	}
	return &SubmitResponse{Order: toMessage(order)}, nil
}

func (s *Server) History(ctx context.Context, req *HistoryRequest) (*HistoryResponse, error) {
	if req.Username == "" {
		return nil, status.Error(codes.InvalidArgument, "username is required")
	}

	orders, err := s.svc.History(ctx, req.Username)
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]*Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toMessage(o))
	}
	return &HistoryResponse{Orders: out}, nil
}

func toMessage(o domain.Order) *Order {
	entries := make([]Entry, 0, len(o.Entries))
	for _, e := range o.Entries {
		entries = append(entries, Entry{ItemID: e.ItemID, Name: e.Name, UnitPrice: e.UnitPrice})
	}

	return &Order{
		ID:        o.ID,
		UserID:    o.UserID,
		Status:    o.Status,
		Entries:   entries,
		Total:     o.Total,
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
	}
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrUserNotFound), errors.Is(err, app.ErrCartNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	}
	return status.Error(codes.Internal, "internal error")
}
