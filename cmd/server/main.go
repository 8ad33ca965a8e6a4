package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	catalogapp "github.com/bizflow/backend/internal/application/catalog"
	debtapp "github.com/bizflow/backend/internal/application/debt"
	draftapp "github.com/bizflow/backend/internal/application/draft"
	inventoryapp "github.com/bizflow/backend/internal/application/inventory"
	orderapp "github.com/bizflow/backend/internal/application/order"
	partnerapp "github.com/bizflow/backend/internal/application/partner"
	"github.com/bizflow/backend/internal/infrastructure/ai"
	"github.com/bizflow/backend/internal/infrastructure/config"
	"github.com/bizflow/backend/internal/infrastructure/event"
	"github.com/bizflow/backend/internal/infrastructure/logger"
	"github.com/bizflow/backend/internal/infrastructure/persistence"
	"github.com/bizflow/backend/internal/interfaces/http/handler"
	"github.com/bizflow/backend/internal/interfaces/http/middleware"
	"github.com/bizflow/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting BizFlow Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection, SQL logs go through zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)

	// Transaction scopes run each use case inside one database
	// transaction with row locks on the aggregates it touches
	inventoryScope := persistence.NewGormInventoryTransactionScope(db.DB)
	orderScope := persistence.NewGormOrderTransactionScope(db.DB)
	debtScope := persistence.NewGormDebtTransactionScope(db.DB)
	draftScope := persistence.NewGormDraftTransactionScope(db.DB)

	// Order text parser (rule-based mock or OpenAI, per config)
	parser := ai.NewParser(cfg.AI.Provider, cfg.AI.APIKey, cfg.AI.Model, log)
	log.Info("Order text parser initialized", zap.String("provider", cfg.AI.Provider))

	// Initialize application services and use cases
	productService := catalogapp.NewProductService(productRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)
	inventoryService := inventoryapp.NewInventoryService(inventoryScope)
	createOrderUC := orderapp.NewCreateOrderUseCase(orderScope)
	orderQueries := orderapp.NewOrderQueries(orderScope)
	repayDebtUC := debtapp.NewRepayDebtUseCase(debtScope)
	debtQueries := debtapp.NewDebtQueries(debtScope)
	createDraftUC := draftapp.NewCreateDraftOrderUseCase(parser, draftScope)
	confirmDraftUC := draftapp.NewConfirmDraftOrderUseCase(draftScope, createOrderUC)
	draftQueries := draftapp.NewDraftQueries(draftScope)

	// Initialize event bus
	eventBus := event.NewInMemoryEventBus(log)
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Redis fan-out: every domain event is also published to the
	// owner's pub/sub channel for external consumers and the SSE feed
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing redis client", zap.Error(err))
		}
	}()
	redisPublisher := event.NewRedisEventPublisher(redisClient, log)
	eventBus.Subscribe(redisPublisher)
	eventSubscriber := event.NewRedisEventSubscriber(redisClient, log)
	log.Info("Redis event fan-out enabled", zap.String("addr", cfg.Redis.Addr()))

	// Inject event bus into services that publish events
	productService.SetEventPublisher(eventBus)
	customerService.SetEventPublisher(eventBus)
	inventoryService.SetEventPublisher(eventBus)
	createOrderUC.SetEventPublisher(eventBus)
	repayDebtUC.SetEventPublisher(eventBus)
	createDraftUC.SetEventPublisher(eventBus)
	confirmDraftUC.SetEventPublisher(eventBus)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService)
	customerHandler := handler.NewCustomerHandler(customerService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	orderHandler := handler.NewOrderHandler(createOrderUC, orderQueries)
	debtHandler := handler.NewDebtHandler(repayDebtUC, debtQueries)
	draftHandler := handler.NewDraftHandler(createDraftUC, confirmDraftUC, draftQueries)
	eventHandler := handler.NewEventHandler(eventSubscriber)
	healthHandler := handler.NewHealthHandler(cfg.App.Name)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID, panic recovery, request logging,
	// CORS, then owner resolution for everything behind the API
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Secure())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	ownerConfig := middleware.DefaultOwnerConfig()
	ownerConfig.Logger = log
	engine.Use(middleware.OwnerMiddlewareWithConfig(ownerConfig))

	// Liveness endpoint outside API versioning, checks the database
	engine.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	})

	// Register API routes
	r := router.New(engine, "v1")
	r.Register(healthHandler, productHandler, customerHandler,
		inventoryHandler, orderHandler, debtHandler, draftHandler, eventHandler)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
