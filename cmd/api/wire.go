package main

import (
	"fmt"
	"log/slog"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartgrpc "github.com/dwikikusuma/storefront/internal/cart/grpc"
	cartadapter "github.com/dwikikusuma/storefront/internal/cart/infra/adapter"
	cartmem "github.com/dwikikusuma/storefront/internal/cart/infra/memory"
	cartpg "github.com/dwikikusuma/storefront/internal/cart/infra/postgres"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
	cgrpc "github.com/dwikikusuma/storefront/internal/catalog/grpc"
	catalogmem "github.com/dwikikusuma/storefront/internal/catalog/infra/memory"
	cpg "github.com/dwikikusuma/storefront/internal/catalog/infra/postgres"
	catalogredis "github.com/dwikikusuma/storefront/internal/catalog/infra/redis"

	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutgrpc "github.com/dwikikusuma/storefront/internal/checkout/grpc"
	checkoutadapter "github.com/dwikikusuma/storefront/internal/checkout/infra/adapter"

	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	ordergrpc "github.com/dwikikusuma/storefront/internal/order/grpc"
	orderadapter "github.com/dwikikusuma/storefront/internal/order/infra/adapter"
	ordermem "github.com/dwikikusuma/storefront/internal/order/infra/memory"
	orderpg "github.com/dwikikusuma/storefront/internal/order/infra/postgres"

	userapp "github.com/dwikikusuma/storefront/internal/user/app"
	usergrpc "github.com/dwikikusuma/storefront/internal/user/grpc"
	useradapter "github.com/dwikikusuma/storefront/internal/user/infra/adapter"
	usermem "github.com/dwikikusuma/storefront/internal/user/infra/memory"
	userpg "github.com/dwikikusuma/storefront/internal/user/infra/postgres"

	"github.com/dwikikusuma/storefront/pkg/auth"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/metrics"
	"github.com/dwikikusuma/storefront/pkg/money"
	"github.com/dwikikusuma/storefront/pkg/postgres"
	goredis "github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
)

// seedItems mirror the rows of the 000002_seed_items migration.
var seedItems = []catalogdomain.Item{
	{
		ID:          "6f1c2f0e-8a59-4c1b-9d0e-2b6f3a1e0001",
		Name:        "Round Widget",
		Description: "A widget that is round",
		Price:       money.MustParse("2.99"),
	},
	{
		ID:          "6f1c2f0e-8a59-4c1b-9d0e-2b6f3a1e0002",
		Name:        "Square Widget",
		Description: "A widget that is square",
		Price:       money.MustParse("1.99"),
	},
}

type stores struct {
	items  catalogapp.ItemRepo
	carts  cartapp.CartRepo
	users  userapp.UserRepo
	orders orderapp.OrderRepo

	closers []func() error
}

func (s stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		_ = s.closers[i]()
	}
}

func openStores(cfg config.Config, log *slog.Logger) (stores, error) {
	var st stores

	switch cfg.StoreDriver {
	case config.StoreMemory:
		st.items = catalogmem.NewItemRepo(seedItems...)
		st.carts = cartmem.NewCartRepo()
		st.users = usermem.NewUserRepo()
		st.orders = ordermem.NewOrderRepo()

	case config.StorePostgres:
		db, err := postgres.Open(cfg.Postgres)
		if err != nil {
			return stores{}, err
		}
		st.closers = append(st.closers, db.Close)

		if err := postgres.Migrate(db.DB); err != nil {
			st.Close()
			return stores{}, err
		}

		st.items = cpg.NewItemRepo(db)
		st.carts = cartpg.NewCartRepo(db)
		st.users = userpg.NewUserRepo(db)
		st.orders = orderpg.NewOrderRepo(db)

	default:
		return stores{}, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	if cfg.RedisAddr != "" {
		rdb := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
		st.closers = append(st.closers, rdb.Close)
		st.items = catalogredis.NewCachedRepo(st.items, rdb, cfg.CatalogCacheTTL)
		log.Info("catalog cache enabled", slog.String("addr", cfg.RedisAddr))
	}

	return st, nil
}

type services struct {
	catalog  *catalogapp.Service
	cart     *cartapp.Service
	users    *userapp.Service
	orders   *orderapp.Service
	checkout *checkoutapp.Service
}

func newServices(cfg config.Config, st stores) services {
	catalogSvc := catalogapp.NewService(st.items)

	cartSvc := cartapp.NewService(
		st.carts,
		cartadapter.NewUserDirectoryReader(st.users),
		cartadapter.NewCatalogServiceReader(catalogSvc),
		cfg.CartMaxRetries,
		cartapp.WithMaxEntries(cfg.MaxCartEntries),
	)

	userSvc := userapp.NewService(
		st.users,
		useradapter.NewCartServiceCreator(cartSvc),
		auth.NewBcryptHasher(bcrypt.DefaultCost),
	)

	orderSvc := orderapp.NewService(
		st.orders,
		orderadapter.NewUserServiceReader(userSvc),
		orderadapter.NewCartServiceReader(cartSvc),
	)

	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewCartServiceReader(cartSvc),
		checkoutadapter.NewCatalogServiceReader(catalogSvc),
		cfg.CheckoutConcurrency,
	)

	return services{
		catalog:  catalogSvc,
		cart:     cartSvc,
		users:    userSvc,
		orders:   orderSvc,
		checkout: checkoutSvc,
	}
}

func newGRPCServer(log *slog.Logger, svc services) *grpc.Server {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(
		logger.UnaryServerInterceptor(log),
		metrics.UnaryServerInterceptor(),
	))

	cgrpc.RegisterCatalogServiceServer(s, cgrpc.NewServer(svc.catalog))
	cartgrpc.RegisterCartServiceServer(s, cartgrpc.NewServer(svc.cart))
	usergrpc.RegisterUserServiceServer(s, usergrpc.NewServer(svc.users))
	ordergrpc.RegisterOrderServiceServer(s, ordergrpc.NewServer(svc.orders))
	checkoutgrpc.RegisterCheckoutServiceServer(s, checkoutgrpc.NewServer(svc.checkout))
	return s
}
