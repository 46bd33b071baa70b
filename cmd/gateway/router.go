package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	cartgrpc "github.com/dwikikusuma/storefront/internal/cart/grpc"
	cgrpc "github.com/dwikikusuma/storefront/internal/catalog/grpc"
	checkoutgrpc "github.com/dwikikusuma/storefront/internal/checkout/grpc"
	ordergrpc "github.com/dwikikusuma/storefront/internal/order/grpc"
	usergrpc "github.com/dwikikusuma/storefront/internal/user/grpc"
	"github.com/dwikikusuma/storefront/pkg/auth"
	"github.com/dwikikusuma/storefront/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type userClient interface {
	CreateUser(context.Context, *usergrpc.CreateUserRequest) (*usergrpc.UserResponse, error)
	GetUserByID(context.Context, *usergrpc.GetUserByIDRequest) (*usergrpc.UserResponse, error)
	GetUserByUsername(context.Context, *usergrpc.GetUserByUsernameRequest) (*usergrpc.UserResponse, error)
	Authenticate(context.Context, *usergrpc.AuthenticateRequest) (*usergrpc.UserResponse, error)
}

type catalogClient interface {
	GetItem(context.Context, *cgrpc.GetItemRequest) (*cgrpc.GetItemResponse, error)
	FindByName(context.Context, *cgrpc.FindByNameRequest) (*cgrpc.FindByNameResponse, error)
	ListItems(context.Context, *cgrpc.ListItemsRequest) (*cgrpc.ListItemsResponse, error)
}

type cartClient interface {
	GetCart(context.Context, *cartgrpc.GetCartRequest) (*cartgrpc.Cart, error)
	AddToCart(context.Context, *cartgrpc.UpdateCartRequest) (*cartgrpc.Cart, error)
	RemoveFromCart(context.Context, *cartgrpc.UpdateCartRequest) (*cartgrpc.Cart, error)
}

type orderClient interface {
	Submit(context.Context, *ordergrpc.SubmitRequest) (*ordergrpc.SubmitResponse, error)
	History(context.Context, *ordergrpc.HistoryRequest) (*ordergrpc.HistoryResponse, error)
}

type checkoutClient interface {
	Quote(context.Context, *checkoutgrpc.QuoteRequest) (*checkoutgrpc.QuoteResponse, error)
}

type gateway struct {
	log      *slog.Logger
	tokens   *auth.Tokens
	users    userClient
	catalog  catalogClient
	cart     cartClient
	orders   orderClient
	checkout checkoutClient

	// ready reports whether the backend connection is usable.
	ready   func() bool
	limiter *rateLimiter
	timeout time.Duration
}

func (g *gateway) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observe(g.log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", g.readyz)
	r.Handle("/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		if g.limiter != nil {
			r.Use(g.limiter.Handler)
		}
		if g.timeout > 0 {
			r.Use(middleware.Timeout(g.timeout))
		}

		r.Post("/login", g.login)

		r.Route("/api/user", func(r chi.Router) {
			r.Post("/create", g.createUser)
			r.Get("/id/{id}", g.getUserByID)
			r.Get("/{username}", g.getUserByUsername)
		})

		r.Route("/api/item", func(r chi.Router) {
			r.Get("/", g.listItems)
			r.Get("/{id}", g.getItem)
			r.Get("/name/{name}", g.findItemsByName)
		})

		r.Group(func(r chi.Router) {
			r.Use(requireToken(g.tokens))

			r.Post("/api/cart/addToCart", g.addToCart)
			r.Post("/api/cart/removeFromCart", g.removeFromCart)
			r.Get("/api/cart/{username}", g.getCart)

			r.Post("/api/order/submit/{username}", g.submitOrder)
			r.Get("/api/order/history/{username}", g.orderHistory)

			r.Get("/api/checkout/quote/{username}", g.quote)
		})
	})

	return r
}

func (g *gateway) readyz(w http.ResponseWriter, r *http.Request) {
	if g.ready != nil && !g.ready() {
		writeError(w, http.StatusServiceUnavailable, "UNAVAILABLE", "backend not ready")
		return
	}
	w.WriteHeader(http.StatusOK)
}
