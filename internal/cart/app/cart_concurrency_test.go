package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/dwikikusuma/storefront/internal/cart/infra/memory"
	"github.com/dwikikusuma/storefront/pkg/money"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type staticUsers map[string]string

func (u staticUsers) FindUserID(ctx context.Context, username string) (string, error) {
	if id, ok := u[username]; ok {
		return id, nil
	}
	return "", app.ErrUserNotFound
}

type staticCatalog map[string]domain.Item

func (c staticCatalog) GetItem(ctx context.Context, itemID string) (domain.Item, error) {
	if it, ok := c[itemID]; ok {
		return it, nil
	}
	return domain.Item{}, domain.ErrItemNotFound
}

func newTestService(t *testing.T, users staticUsers, items staticCatalog) (*app.Service, *memory.CartRepo) {
	t.Helper()
	repo := memory.NewCartRepo()
	return app.NewService(repo, users, items, 3), repo
}

func TestCart_ConcurrentCreate_SingleCartPerUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, staticUsers{}, staticCatalog{})

	userID := uuid.NewString()

	const N = 50
	ids := make(map[string]struct{})
	var mu sync.Mutex
	var exists int

	var g errgroup.Group
	for i := 0; i < N; i++ {
		g.Go(func() error {
			cart, err := svc.CreateCart(ctx, userID)
			mu.Lock()
			defer mu.Unlock()
			if errors.Is(err, app.ErrCartExists) {
				exists++
				return nil
			}
			if err != nil {
				return err
			}
			ids[cart.ID] = struct{}{}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent CreateCart failed: %v", err)
	}
	if len(ids) != 1 || exists != N-1 {
		t.Fatalf("expected exactly 1 cart and %d ErrCartExists, got %d carts, %d rejections", N-1, len(ids), exists)
	}
}

func TestCart_ConcurrentAddItem_NoLostUpdates(t *testing.T) {
	ctx := context.Background()

	userID := uuid.NewString()
	itemID := uuid.NewString()
	price := money.MustParse("1.99")

	svc, _ := newTestService(t,
		staticUsers{"alice": userID},
		staticCatalog{itemID: {ID: itemID, Name: "Square Widget", Price: price}},
	)

	if _, err := svc.CreateCart(ctx, userID); err != nil {
		t.Fatalf("CreateCart failed: %v", err)
	}

	const N = 100
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < N; i++ {
		g.Go(func() error {
			_, err := svc.AddToCart(gctx, "alice", itemID, 1)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent AddToCart failed: %v", err)
	}

	updated, err := svc.GetCart(ctx, "alice")
	if err != nil {
		t.Fatalf("GetCart failed: %v", err)
	}

	if got := updated.Count(itemID); got != N {
		t.Fatalf("expected %d entries, got %d", N, got)
	}
	if want := price.Mul(N); !updated.Total.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, updated.Total)
	}
	if updated.Version != N+1 {
		t.Fatalf("expected version %d, got %d", N+1, updated.Version)
	}
}

func TestCart_ConcurrentUsersDoNotInterfere(t *testing.T) {
	ctx := context.Background()
	itemID := uuid.NewString()
	users := staticUsers{"a": uuid.NewString(), "b": uuid.NewString()}

	svc, _ := newTestService(t, users, staticCatalog{itemID: {ID: itemID, Price: money.MustParse("0.10")}})
	for _, id := range users {
		if _, err := svc.CreateCart(ctx, id); err != nil {
			t.Fatalf("CreateCart failed: %v", err)
		}
	}

	const N = 40
	var g errgroup.Group
	for i := 0; i < N; i++ {
		g.Go(func() error { _, err := svc.AddToCart(ctx, "a", itemID, 2); return err })
		g.Go(func() error { _, err := svc.AddToCart(ctx, "b", itemID, 1); return err })
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent AddToCart failed: %v", err)
	}

	a, _ := svc.GetCart(ctx, "a")
	b, _ := svc.GetCart(ctx, "b")
	if a.Count(itemID) != 2*N || a.Total.String() != "8.00" {
		t.Fatalf("cart a: %d entries, total %s", a.Count(itemID), a.Total)
	}
	if b.Count(itemID) != N || b.Total.String() != "4.00" {
		t.Fatalf("cart b: %d entries, total %s", b.Count(itemID), b.Total)
	}
}
