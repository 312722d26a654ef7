package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-storefront/config"
	"github.com/fekuna/omnipos-storefront/internal/cart"
	"github.com/fekuna/omnipos-storefront/internal/category"
	"github.com/fekuna/omnipos-storefront/internal/inventory"
	"github.com/fekuna/omnipos-storefront/internal/medicine"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/order"
	"github.com/fekuna/omnipos-storefront/internal/product"
	"github.com/fekuna/omnipos-storefront/internal/seed"
	"github.com/fekuna/omnipos-storefront/internal/shop"
	"github.com/fekuna/omnipos-storefront/pkg/broker"
	"github.com/fekuna/omnipos-storefront/pkg/cache"
	"github.com/fekuna/omnipos-storefront/pkg/database/postgres"
	"github.com/fekuna/omnipos-storefront/pkg/i18n"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/fekuna/omnipos-storefront/pkg/middleware"
	"github.com/fekuna/omnipos-storefront/pkg/search"

	cartH "github.com/fekuna/omnipos-storefront/internal/cart/handler"
	cartPubPkg "github.com/fekuna/omnipos-storefront/internal/cart/publisher"
	cartUCPkg "github.com/fekuna/omnipos-storefront/internal/cart/usecase"

	catH "github.com/fekuna/omnipos-storefront/internal/category/handler"
	catRepoPkg "github.com/fekuna/omnipos-storefront/internal/category/repository"
	catUCPkg "github.com/fekuna/omnipos-storefront/internal/category/usecase"

	invH "github.com/fekuna/omnipos-storefront/internal/inventory/handler"
	invListenerPkg "github.com/fekuna/omnipos-storefront/internal/inventory/listener"
	invRepoPkg "github.com/fekuna/omnipos-storefront/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-storefront/internal/inventory/usecase"

	medH "github.com/fekuna/omnipos-storefront/internal/medicine/handler"
	medRepoPkg "github.com/fekuna/omnipos-storefront/internal/medicine/repository"
	medUCPkg "github.com/fekuna/omnipos-storefront/internal/medicine/usecase"

	orderH "github.com/fekuna/omnipos-storefront/internal/order/handler"
	orderRepoPkg "github.com/fekuna/omnipos-storefront/internal/order/repository"
	orderUCPkg "github.com/fekuna/omnipos-storefront/internal/order/usecase"

	prodH "github.com/fekuna/omnipos-storefront/internal/product/handler"
	prodRepoPkg "github.com/fekuna/omnipos-storefront/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-storefront/internal/product/usecase"

	shopH "github.com/fekuna/omnipos-storefront/internal/shop/handler"
	shopRepoPkg "github.com/fekuna/omnipos-storefront/internal/shop/repository"
	shopUCPkg "github.com/fekuna/omnipos-storefront/internal/shop/usecase"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 2.5 Initialize i18n
	translator, err := i18n.New(cfg.Locale.Default)
	if err != nil {
		appLogger.Fatal("Could not load locales", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Catalog
	pricing := order.Pricing{
		ShippingFee: mustDecimal(appLogger, "ORDER_SHIPPING_FEE", cfg.Order.ShippingFee),
		TaxRate:     mustDecimal(appLogger, "ORDER_TAX_RATE", cfg.Order.TaxRate),
	}
	catalog := seed.Generate(cfg.Catalog.Seed, time.Now(), pricing.Total)

	var (
		prodRepo product.Repository   = prodRepoPkg.NewMemoryRepository(catalog.Products)
		invRepo  inventory.Repository = invRepoPkg.NewMemoryRepository()
	)
	if cfg.Catalog.Source == "postgres" {
		db, err := postgres.NewPostgres(&postgres.Config{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.Port,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			DBName:          cfg.Postgres.DBName,
			SSLMode:         cfg.Postgres.SSLMode,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
			ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to database", zap.Error(err))
		}
		defer db.Close()
		appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

		pgProducts := prodRepoPkg.NewPGRepository(db)
		pgLedger := invRepoPkg.NewPGRepository(db)
		if err := pgProducts.Migrate(ctx); err != nil {
			appLogger.Fatal("Could not migrate products", zap.Error(err))
		}
		if err := pgLedger.Migrate(ctx); err != nil {
			appLogger.Fatal("Could not migrate stock adjustments", zap.Error(err))
		}
		if err := seedProducts(ctx, pgProducts, catalog.Products); err != nil {
			appLogger.Fatal("Could not seed products", zap.Error(err))
		}
		prodRepo, invRepo = pgProducts, pgLedger
	}

	// 4. Initialize Redis
	var (
		store  cache.Store
		locker cache.Locker
	)
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		store, locker = redisClient, redisClient
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}
	listTTL := time.Duration(cfg.Redis.ListingCacheTTL) * time.Second

	// 5. Initialize Elasticsearch
	var index search.Index
	if cfg.Elastic.Enabled {
		esClient, err := search.NewClient(&search.Config{
			Addresses: cfg.Elastic.Addresses,
			Username:  cfg.Elastic.Username,
			Password:  cfg.Elastic.Password,
		})
		if err != nil {
			appLogger.Warn("Could not connect to Elasticsearch (search falls back to substring matching)", zap.Error(err))
		} else {
			index = esClient
			appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
		}
	}

	// 6. Initialize UseCases
	catUC := catUCPkg.NewCategoryUseCase(catRepoPkg.NewStaticRepository(category.Default), appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, product.NewPipeline(category.Default), store, index, listTTL, appLogger)
	medUC := medUCPkg.NewMedicineUseCase(medRepoPkg.NewMemoryRepository(catalog.Medicines), medicine.NewPipeline(), store, listTTL, appLogger)
	shopUC := shopUCPkg.NewShopUseCase(shopRepoPkg.NewMemoryRepository(catalog.Shops), shop.NewPipeline(), appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepoPkg.NewMemoryRepository(catalog.Orders), order.NewPipeline(), pricing, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, prodUC, medUC, locker, appLogger)

	var publisher cart.Publisher
	if cfg.Kafka.Enabled {
		producer := broker.NewProducer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.CartTopic,
		})
		defer producer.Close()
		publisher = cartPubPkg.NewKafkaPublisher(producer)

		// 6.5 Initialize Listeners
		consumer := broker.NewConsumer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.InventoryTopic,
			GroupID: cfg.Kafka.GroupID,
		})
		defer consumer.Close()
		go invListenerPkg.NewInventoryListener(consumer, invUC, appLogger).Start(ctx)
		appLogger.Info("Connected to Kafka", zap.Strings("brokers", cfg.Kafka.Brokers))
	}

	cartUC := cartUCPkg.NewCartUseCase(prodUC, medUC, publisher, translator, cartUCPkg.Config{
		Shipping: cart.ShippingPolicy{
			FreeOver: mustDecimal(appLogger, "CART_FREE_SHIPPING_THRESHOLD", cfg.Cart.FreeShippingThreshold),
			Fee:      mustDecimal(appLogger, "CART_SHIPPING_FEE", cfg.Cart.ShippingFee),
		},
		MedicineMaxPerAdd: cfg.Cart.MedicineMaxPerAdd,
	}, appLogger)

	if index != nil {
		go func() {
			if err := prodUC.Reindex(ctx); err != nil {
				appLogger.Warn("Initial product reindex failed", zap.Error(err))
			}
		}()
	}

	// 7. Initialize Handlers
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Session)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Route("/api/v1", func(r chi.Router) {
		catH.NewCategoryHandler(catUC, appLogger).RegisterRoutes(r)
		prodH.NewProductHandler(prodUC, appLogger).RegisterRoutes(r)
		medH.NewMedicineHandler(medUC, appLogger).RegisterRoutes(r)
		shopH.NewShopHandler(shopUC, appLogger).RegisterRoutes(r)
		orderH.NewOrderHandler(orderUC, appLogger).RegisterRoutes(r)
		cartH.NewCartHandler(cartUC, appLogger).RegisterRoutes(r)
		invH.NewInventoryHandler(invUC, appLogger).RegisterRoutes(r)
	})

	httpServer := &http.Server{
		Addr:              normalizePort(cfg.Server.HTTPPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// 8. Start gRPC Server
	port := normalizePort(cfg.Server.GRPCPort)
	lis, err := net.Listen("tcp", port)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(middleware.ContextInterceptor()),
	)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	appLogger.Info("Starting gRPC server", zap.String("port", port))
	appLogger.Info("Starting HTTP server", zap.String("addr", httpServer.Addr))

	// Graceful Shutdown
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve grpc", zap.Error(err))
		}
	}()
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve http", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	healthServer.Shutdown()
	cancel()

	shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
	defer done()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP shutdown failed", zap.Error(err))
	}
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}

func normalizePort(port string) string {
	if !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}

func mustDecimal(l logger.ZapLogger, name, value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		l.Fatal("Invalid decimal setting", zap.String("name", name), zap.String("value", value), zap.Error(err))
	}
	return d
}

// seedProducts fills an empty products table with the generated catalog.
func seedProducts(ctx context.Context, repo product.Repository, products []model.Product) error {
	n, err := repo.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	for i := range products {
		if err := repo.Create(ctx, &products[i]); err != nil {
			return err
		}
	}
	return nil
}
