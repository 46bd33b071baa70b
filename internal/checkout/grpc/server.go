package grpc

import (
	"context"
	"errors"

	"github.com/dwikikusuma/storefront/internal/checkout/app"
	"github.com/dwikikusuma/storefront/internal/checkout/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	svc *app.Service
}

var _ CheckoutServiceServer = (*Server)(nil)

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) Quote(ctx context.Context, req *QuoteRequest) (*QuoteResponse, error) {
	if req.Username == "" {
		return nil, status.Error(codes.InvalidArgument, "username is required")
	}

	q, err := s.svc.Quote(ctx, req.Username)
	if err != nil {
		return nil, mapErr(err)
	}

	return toMessage(q), nil
}

func toMessage(q domain.Quote) *QuoteResponse {
	lines := make([]*QuoteLine, 0, len(q.Lines))
	for _, ln := range q.Lines {
		lines = append(lines, &QuoteLine{
			ItemID:    ln.ItemID,
			Name:      ln.Name,
			Quantity:  int32(ln.Quantity),
			UnitPrice: ln.UnitPrice,
			LineTotal: ln.LineTotal,
		})
	}

	return &QuoteResponse{
		Lines:     lines,
		Total:     q.Total,
		CartTotal: q.CartTotal,
	}
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrEmptyCart):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, app.ErrUserNotFound),
		errors.Is(err, app.ErrCartNotFound),
		errors.Is(err, app.ErrItemNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	}
	return status.Error(codes.Internal, "internal error")
}
