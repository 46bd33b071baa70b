package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	cartgrpc "github.com/dwikikusuma/storefront/internal/cart/grpc"
	cgrpc "github.com/dwikikusuma/storefront/internal/catalog/grpc"
	checkoutgrpc "github.com/dwikikusuma/storefront/internal/checkout/grpc"
	ordergrpc "github.com/dwikikusuma/storefront/internal/order/grpc"
	usergrpc "github.com/dwikikusuma/storefront/internal/user/grpc"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

type createUserBody struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	User      *usergrpc.User `json:"user"`
}

type modifyCartBody struct {
	Username string `json:"username"`
	ItemID   string `json:"itemId"`
	Quantity int32  `json:"quantity"`
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "malformed request body")
		return false
	}
	return true
}

func (g *gateway) createUser(w http.ResponseWriter, r *http.Request) {
	var body createUserBody
	if !decode(w, r, &body) {
		return
	}

	resp, err := g.users.CreateUser(r.Context(), &usergrpc.CreateUserRequest{
		Username:        body.Username,
		Password:        body.Password,
		ConfirmPassword: body.ConfirmPassword,
	})
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.User)
}

func (g *gateway) getUserByID(w http.ResponseWriter, r *http.Request) {
	resp, err := g.users.GetUserByID(r.Context(), &usergrpc.GetUserByIDRequest{ID: chi.URLParam(r, "id")})
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.User)
}

func (g *gateway) getUserByUsername(w http.ResponseWriter, r *http.Request) {
	resp, err := g.users.GetUserByUsername(r.Context(), &usergrpc.GetUserByUsernameRequest{Username: chi.URLParam(r, "username")})
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.User)
}

func (g *gateway) login(w http.ResponseWriter, r *http.Request) {
	var body loginBody
	if !decode(w, r, &body) {
		return
	}

	resp, err := g.users.Authenticate(r.Context(), &usergrpc.AuthenticateRequest{
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		writeGRPCError(w, err)
		return
	}

	token, err := g.tokens.Issue(resp.User.ID, resp.User.Username)
	if err != nil {
		g.log.Error("token issue failed", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	claims, err := g.tokens.Parse(token)
	if err != nil {
		g.log.Error("token parse failed", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	writeJSON(w, http.StatusOK, loginResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      resp.User,
	})
}

func (g *gateway) listItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var limit int32
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "limit must be an integer")
			return
		}
		limit = int32(n)
	}

	resp, err := g.catalog.ListItems(r.Context(), &cgrpc.ListItemsRequest{
		Query:  q.Get("q"),
		Limit:  limit,
		Cursor: q.Get("cursor"),
	})
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (g *gateway) getItem(w http.ResponseWriter, r *http.Request) {
	resp, err := g.catalog.GetItem(r.Context(), &cgrpc.GetItemRequest{ID: chi.URLParam(r, "id")})
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.Item)
}

func (g *gateway) findItemsByName(w http.ResponseWriter, r *http.Request) {
	resp, err := g.catalog.FindByName(r.Context(), &cgrpc.FindByNameRequest{Name: chi.URLParam(r, "name")})
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	if len(resp.Items) == 0 {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "no items with that name")
		return
	}
	writeJSON(w, http.StatusOK, resp.Items)
}

func (g *gateway) addToCart(w http.ResponseWriter, r *http.Request) {
	g.modifyCart(w, r, g.cart.AddToCart)
}

func (g *gateway) removeFromCart(w http.ResponseWriter, r *http.Request) {
	g.modifyCart(w, r, g.cart.RemoveFromCart)
}

func (g *gateway) modifyCart(w http.ResponseWriter, r *http.Request, call func(context.Context, *cartgrpc.UpdateCartRequest) (*cartgrpc.Cart, error)) {
	var body modifyCartBody
	if !decode(w, r, &body) {
		return
	}
	if !authorized(w, r, body.Username) {
		return
	}

	cart, err := call(r.Context(), &cartgrpc.UpdateCartRequest{
		Username: body.Username,
		ItemID:   body.ItemID,
		Quantity: body.Quantity,
	})
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (g *gateway) getCart(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if !authorized(w, r, username) {
		return
	}

	cart, err := g.cart.GetCart(r.Context(), &cartgrpc.GetCartRequest{Username: username})
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (g *gateway) submitOrder(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if !authorized(w, r, username) {
		return
	}

	resp, err := g.orders.Submit(r.Context(), &ordergrpc.SubmitRequest{Username: username})
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.Order)
}

func (g *gateway) orderHistory(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if !authorized(w, r, username) {
		return
	}

	resp, err := g.orders.History(r.Context(), &ordergrpc.HistoryRequest{Username: username})
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.Orders)
}

func (g *gateway) quote(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if !authorized(w, r, username) {
		return
	}

	resp, err := g.checkout.Quote(r.Context(), &checkoutgrpc.QuoteRequest{Username: username})
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
