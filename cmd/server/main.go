package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/restockd/inventory-service/config"
	"github.com/restockd/inventory-service/pkg/broker"
	"github.com/restockd/inventory-service/pkg/cache"
	"github.com/restockd/inventory-service/pkg/database/postgres"
	"github.com/restockd/inventory-service/pkg/logger"

	prodH "github.com/restockd/inventory-service/internal/product/handler"
	prodRepoPkg "github.com/restockd/inventory-service/internal/product/repository"
	prodUCPkg "github.com/restockd/inventory-service/internal/product/usecase"

	reorderH "github.com/restockd/inventory-service/internal/reorder/handler"
	reorderRepoPkg "github.com/restockd/inventory-service/internal/reorder/repository"
	reorderUCPkg "github.com/restockd/inventory-service/internal/reorder/usecase"

	reportH "github.com/restockd/inventory-service/internal/report/handler"
	reportRepoPkg "github.com/restockd/inventory-service/internal/report/repository"
	reportUCPkg "github.com/restockd/inventory-service/internal/report/usecase"

	stockH "github.com/restockd/inventory-service/internal/stock/handler"
	stockListenerPkg "github.com/restockd/inventory-service/internal/stock/listener"
	stockRepoPkg "github.com/restockd/inventory-service/internal/stock/repository"
	stockUCPkg "github.com/restockd/inventory-service/internal/stock/usecase"

	supH "github.com/restockd/inventory-service/internal/supplier/handler"
	supRepoPkg "github.com/restockd/inventory-service/internal/supplier/repository"
	supUCPkg "github.com/restockd/inventory-service/internal/supplier/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     false,
		DisableStacktrace: false,
	}

	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
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

	// 4. Initialize Repositories
	supRepo := supRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)
	reorderRepo := reorderRepoPkg.NewPGRepository(db)
	stockRepo := stockRepoPkg.NewPGRepository(db)
	reportRepo := reportRepoPkg.NewPGRepository(db)

	// 5. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 5.5 Initialize Kafka Consumer
	kafkaConsumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer kafkaConsumer.Close()
	appLogger.Info("Connected to Kafka Consumer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	// 6. Initialize UseCases
	supUC := supUCPkg.NewSupplierUseCase(supRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, redisClient, appLogger)
	reorderUC := reorderUCPkg.NewReorderUseCase(reorderRepo, redisClient, appLogger)
	stockUC := stockUCPkg.NewStockUseCase(stockRepo, redisClient, appLogger)
	reportUC := reportUCPkg.NewReportUseCase(reportRepo, redisClient, appLogger)

	// 6.5 Initialize Listeners
	saleListener := stockListenerPkg.NewSaleListener(kafkaConsumer, stockUC, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go saleListener.Start(ctx)

	// 7. Initialize Handlers and Router
	supHandler := supH.NewSupplierHandler(supUC, appLogger)
	prodHandler := prodH.NewProductHandler(prodUC, appLogger)
	reorderHandler := reorderH.NewReorderHandler(reorderUC, appLogger)
	stockHandler := stockH.NewStockHandler(stockUC, appLogger)
	reportHandler := reportH.NewReportHandler(reportUC, appLogger)

	if cfg.Server.AppEnv != "development" && cfg.Server.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	v1 := router.Group("/api/v1")
	{
		v1.GET("/dashboard/metrics", reportHandler.DashboardMetrics)

		v1.GET("/suppliers", supHandler.ListContacts)
		v1.GET("/suppliers/options", supHandler.ListOptions)

		v1.POST("/products", prodHandler.AddProduct)
		v1.GET("/products", prodHandler.ListWithSupplierStock)
		v1.GET("/products/options", prodHandler.ListOptions)
		v1.GET("/products/needing-reorder", prodHandler.ListNeedingReorder)
		v1.GET("/products/categories", prodHandler.ListCategories)
		v1.GET("/products/:id/history", stockHandler.ProductHistory)

		v1.POST("/reorders", reorderHandler.PlaceReorder)
		v1.GET("/reorders/pending", reorderHandler.ListPending)
		v1.POST("/reorders/:id/receive", reorderHandler.MarkAsReceived)
	}

	// 8. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:    port,
		Handler: router,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
