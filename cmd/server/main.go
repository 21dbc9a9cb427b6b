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
	gormlogger "gorm.io/gorm/logger"

	catalogapp "github.com/stockdesk/backend/internal/application/catalog"
	identityapp "github.com/stockdesk/backend/internal/application/identity"
	inventoryapp "github.com/stockdesk/backend/internal/application/inventory"
	reportapp "github.com/stockdesk/backend/internal/application/report"
	salesapp "github.com/stockdesk/backend/internal/application/sales"
	"github.com/stockdesk/backend/internal/infrastructure/auth"
	"github.com/stockdesk/backend/internal/infrastructure/config"
	"github.com/stockdesk/backend/internal/infrastructure/logger"
	"github.com/stockdesk/backend/internal/infrastructure/persistence"
	"github.com/stockdesk/backend/internal/interfaces/http/handler"
	"github.com/stockdesk/backend/internal/interfaces/http/middleware"
	"github.com/stockdesk/backend/internal/interfaces/http/router"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", version),
	)

	gormLogLevel := gormlogger.Warn
	if cfg.Log.Level == "debug" {
		gormLogLevel = gormlogger.Info
	}

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, logger.NewGormLogger(log, gormLogLevel))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Redis backs the token blacklist. When unreachable at boot the server
	// still comes up with the in-process blacklist so a single node works.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	var tokenBlacklist auth.TokenBlacklist
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Warn("Redis unavailable, falling back to in-memory token blacklist", zap.Error(err))
		redisClient = nil
		tokenBlacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		log.Info("Redis connected successfully", zap.String("addr", cfg.Redis.Addr()))
		tokenBlacklist = auth.NewRedisTokenBlacklist(redisClient)
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing redis client", zap.Error(err))
			}
		}()
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	movementRepo := persistence.NewGormStockMovementRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	salesReportRepo := persistence.NewGormSalesReportRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	roleRepo := persistence.NewGormRoleRepository(db.DB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, roleRepo, jwtService, tokenBlacklist)
	userService := identityapp.NewUserService(userRepo, roleRepo)
	roleService := identityapp.NewRoleService(roleRepo, userRepo)
	productService := catalogapp.NewProductService(productRepo, categoryRepo, supplierRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	supplierService := catalogapp.NewSupplierService(supplierRepo)
	movementService := inventoryapp.NewMovementService(movementRepo, persistence.NewGormInventoryTransactionScope(db.DB))
	saleService := salesapp.NewSaleService(saleRepo, persistence.NewGormSaleTransactionScope(db.DB))
	reportService := reportapp.NewReportService(salesReportRepo, productRepo)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Tighter bucket on the credential endpoints to slow brute force attempts
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authLimit := middleware.RateLimit(authLimiter)
		authPaths := map[string]struct{}{
			"/api/v1/auth/signup": {},
			"/api/v1/auth/login":  {},
		}
		engine.Use(func(c *gin.Context) {
			if _, ok := authPaths[c.Request.URL.Path]; ok {
				authLimit(c)
				return
			}
			c.Next()
		})
	}

	engine.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: tokenBlacklist,
		SkipPaths: []string{
			"/health",
			"/api/v1/auth/signup",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
		},
		Logger: log,
	}))

	systemHandler := handler.NewSystemHandler(db, redisClient, cfg.App.Name, version)

	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(handler.NewAuthHandler(authService)).
		Register(handler.NewUserHandler(userService)).
		Register(handler.NewRoleHandler(roleService)).
		Register(handler.NewProductHandler(productService)).
		Register(handler.NewCategoryHandler(categoryService)).
		Register(handler.NewSupplierHandler(supplierService)).
		Register(handler.NewStockMovementHandler(movementService)).
		Register(handler.NewSaleHandler(saleService)).
		Register(handler.NewReportHandler(reportService)).
		RegisterRoot(func(e *gin.Engine) {
			e.GET("/health", systemHandler.Health)
		}).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

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
