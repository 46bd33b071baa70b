package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	cartgrpc "github.com/dwikikusuma/storefront/internal/cart/grpc"
	cgrpc "github.com/dwikikusuma/storefront/internal/catalog/grpc"
	checkoutgrpc "github.com/dwikikusuma/storefront/internal/checkout/grpc"
	ordergrpc "github.com/dwikikusuma/storefront/internal/order/grpc"
	usergrpc "github.com/dwikikusuma/storefront/internal/user/grpc"
	"github.com/dwikikusuma/storefront/pkg/auth"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/grpcjson"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
	"google.golang.org/grpc/connectivity"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "gateway",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		AddSource: true,
	})

	root := context.Background()
	ctx, cancel := shutdown.WithSignals(root)
	defer cancel()

	cc, err := grpcjson.Dial(cfg.GRPCAddr)
	if err != nil {
		log.Error("grpc dial failed", slog.Any("err", err), slog.String("addr", cfg.GRPCAddr))
		os.Exit(1)
	}
	defer cc.Close()
	cc.Connect()

	gw := &gateway{
		log:      log,
		tokens:   auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL),
		users:    usergrpc.NewClient(cc),
		catalog:  cgrpc.NewClient(cc),
		cart:     cartgrpc.NewClient(cc),
		orders:   ordergrpc.NewClient(cc),
		checkout: checkoutgrpc.NewClient(cc),
		ready: func() bool {
			s := cc.GetState()
			return s != connectivity.TransientFailure && s != connectivity.Shutdown
		},
		limiter: newRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		timeout: 10 * time.Second,
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           gw.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr), slog.String("backend", cfg.GRPCAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	stop := func() {
		if err := server.Shutdown(context.Background()); err != nil {
			log.Error("http shutdown error", slog.Any("err", err))
		}
	}
	force := func() {
		if err := server.Close(); err != nil {
			log.Error("http close error", slog.Any("err", err))
		}
	}
	if !shutdown.Graceful(10*time.Second, stop, force) {
		log.Warn("graceful shutdown timeout, connections closed")
	}

	wg.Wait()
	log.Info("bye")
}
