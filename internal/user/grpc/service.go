package grpc

import (
	"context"

	"github.com/dwikikusuma/storefront/pkg/grpcjson"
	"google.golang.org/grpc"
)

const (
	ServiceName = "storefront.user.v1.UserService"

	CreateUserMethod        = "/" + ServiceName + "/CreateUser"
	GetUserByIDMethod       = "/" + ServiceName + "/GetUserByID"
	GetUserByUsernameMethod = "/" + ServiceName + "/GetUserByUsername"
	AuthenticateMethod      = "/" + ServiceName + "/Authenticate"
)

type User struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	CartID        string `json:"cart_id"`
	CreatedAtUnix int64  `json:"created_at_unix"`
}

type CreateUserRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type GetUserByIDRequest struct {
	ID string `json:"id"`
}

type GetUserByUsernameRequest struct {
	Username string `json:"username"`
}

type AuthenticateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserResponse struct {
	User *User `json:"user"`
}

type UserServiceServer interface {
	CreateUser(context.Context, *CreateUserRequest) (*UserResponse, error)
	GetUserByID(context.Context, *GetUserByIDRequest) (*UserResponse, error)
	GetUserByUsername(context.Context, *GetUserByUsernameRequest) (*UserResponse, error)
	Authenticate(context.Context, *AuthenticateRequest) (*UserResponse, error)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*UserServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateUser", Handler: grpcjson.Unary(CreateUserMethod, UserServiceServer.CreateUser)},
		{MethodName: "GetUserByID", Handler: grpcjson.Unary(GetUserByIDMethod, UserServiceServer.GetUserByID)},
		{MethodName: "GetUserByUsername", Handler: grpcjson.Unary(GetUserByUsernameMethod, UserServiceServer.GetUserByUsername)},
		{MethodName: "Authenticate", Handler: grpcjson.Unary(AuthenticateMethod, UserServiceServer.Authenticate)},
	},
	Metadata: "storefront/user/v1",
}

func RegisterUserServiceServer(s grpc.ServiceRegistrar, srv UserServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) CreateUser(ctx context.Context, in *CreateUserRequest) (*UserResponse, error) {
	return grpcjson.Invoke[UserResponse](ctx, c.cc, CreateUserMethod, in)
}

func (c *Client) GetUserByID(ctx context.Context, in *GetUserByIDRequest) (*UserResponse, error) {
	return grpcjson.Invoke[UserResponse](ctx, c.cc, GetUserByIDMethod, in)
}

func (c *Client) GetUserByUsername(ctx context.Context, in *GetUserByUsernameRequest) (*UserResponse, error) {
	return grpcjson.Invoke[UserResponse](ctx, c.cc, GetUserByUsernameMethod, in)
}

func (c *Client) Authenticate(ctx context.Context, in *AuthenticateRequest) (*UserResponse, error) {
	return grpcjson.Invoke[UserResponse](ctx, c.cc, AuthenticateMethod, in)
}
