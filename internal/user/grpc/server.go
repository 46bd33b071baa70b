package grpc

import (
	"context"
	"errors"

	"github.com/dwikikusuma/storefront/internal/user/app"
	"github.com/dwikikusuma/storefront/internal/user/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	svc *app.Service
}

var _ UserServiceServer = (*Server)(nil)

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error) {
	u, err := s.svc.Register(ctx, req.Username, req.Password, req.ConfirmPassword)
	if err != nil {
		return nil, mapErr(err)
	}
	return &UserResponse{User: toMessage(u)}, nil
}

func (s *Server) GetUserByID(ctx context.Context, req *GetUserByIDRequest) (*UserResponse, error) {
	u, err := s.svc.FindByID(ctx, req.ID)
	if err != nil {
		return nil, mapErr(err)
	}
	return &UserResponse{User: toMessage(u)}, nil
}

func (s *Server) GetUserByUsername(ctx context.Context, req *GetUserByUsernameRequest) (*UserResponse, error) {
	u, err := s.svc.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, mapErr(err)
	}
	return &UserResponse{User: toMessage(u)}, nil
}

func (s *Server) Authenticate(ctx context.Context, req *AuthenticateRequest) (*UserResponse, error) {
	u, err := s.svc.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, mapErr(err)
	}
	return &UserResponse{User: toMessage(u)}, nil
}

func toMessage(u domain.User) *User {
	return &User{
		ID:            u.ID,
		Username:      u.Username,
		CartID:        u.CartID,
		CreatedAtUnix: u.CreatedAt.Unix(),
	}
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidInput), errors.Is(err, app.ErrInvalidPassword):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrUsernameTaken):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, app.ErrUserNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, app.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	}
	return status.Error(codes.Internal, "internal error")
}
