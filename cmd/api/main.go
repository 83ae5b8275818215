package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/amborella-organics/storefront-backend/api/controllers"
	"github.com/amborella-organics/storefront-backend/api/routes"
	cartstore "github.com/amborella-organics/storefront-backend/internal/cart"
	"github.com/amborella-organics/storefront-backend/internal/checkout"
	"github.com/amborella-organics/storefront-backend/internal/content"
	"github.com/amborella-organics/storefront-backend/internal/products"
	"github.com/amborella-organics/storefront-backend/pkg/config"
	"github.com/amborella-organics/storefront-backend/pkg/logger"
	"github.com/amborella-organics/storefront-backend/pkg/metrics"
	"github.com/amborella-organics/storefront-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var (
		redisClient *redis.Client
		redisPinger controllers.Pinger
		factory     cartstore.PersistenceFactory
	)
	if cfg.Redis.Configured() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		redisPinger = redisClient
		factory = cartstore.RedisPersistenceFactory(redisClient, cfg.Cart.SessionTTL)
	} else {
		logg.Warn(context.Background(), "redis not configured, carts will not survive a restart")
		factory = cartstore.MemoryPersistenceFactory()
	}

	sessions := cartstore.NewSessions(factory, cfg.Cart, logg)
	catalog := products.NewCatalog()
	blog := content.NewBlog()
	checkoutService := checkout.NewService(logg)
	httpMetrics := metrics.NewHTTPMetrics()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			redisPinger,
			httpMetrics,
			catalog,
			blog,
			sessions,
			checkoutService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
