package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/bistro/backend/internal/application/catalog"
	identityapp "github.com/bistro/backend/internal/application/identity"
	orderingapp "github.com/bistro/backend/internal/application/ordering"
	"github.com/bistro/backend/internal/domain/access"
	"github.com/bistro/backend/internal/infrastructure/auth"
	"github.com/bistro/backend/internal/infrastructure/config"
	"github.com/bistro/backend/internal/infrastructure/logger"
	"github.com/bistro/backend/internal/infrastructure/persistence"
	"github.com/bistro/backend/internal/interfaces/http/handler"
	"github.com/bistro/backend/internal/interfaces/http/middleware"
	"github.com/bistro/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

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
	log.Info("Database connected")

	// Repositories
	menuRepo := persistence.NewGormMenuItemRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWT)
	menuService := catalogapp.NewMenuItemService(menuRepo)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	groupService := identityapp.NewGroupService(userRepo, log)
	cartService := orderingapp.NewCartService(cartRepo, menuRepo)
	orderService := orderingapp.NewOrderService(orderRepo, userRepo, log)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	menuHandler := handler.NewMenuItemHandler(menuService)
	groupHandler := handler.NewGroupHandler(groupService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)
	systemHandler := handler.NewSystemHandler(db, version)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
	}))

	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuth(jwtService))

	authRoutes := router.NewGroup("/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)

	menuRoutes := router.NewGroup("/menu-items")
	menuRoutes.GET("", menuHandler.List)
	menuRoutes.GET("/:id", menuHandler.GetByID)
	menuRoutes.POST("", middleware.RequireAction(access.ActionManageMenu), menuHandler.Create)
	menuRoutes.PUT("/:id", middleware.RequireAction(access.ActionManageMenu), menuHandler.Update)
	menuRoutes.PATCH("/:id", middleware.RequireAction(access.ActionManageMenu), menuHandler.Update)
	menuRoutes.DELETE("/:id", middleware.RequireAction(access.ActionManageMenu), menuHandler.Delete)

	groupRoutes := router.NewGroup("/groups")
	groupRoutes.Use(middleware.RequireManager())
	groupRoutes.GET("/:group/users", groupHandler.ListMembers)
	groupRoutes.POST("/:group/users", groupHandler.AddMember)
	groupRoutes.DELETE("/:group/users/:id", groupHandler.RemoveMember)

	cartRoutes := router.NewGroup("/cart")
	cartRoutes.Use(middleware.RequireAction(access.ActionUseCart))
	cartRoutes.GET("/menu-items", cartHandler.View)
	cartRoutes.POST("/menu-items", cartHandler.AddItem)
	cartRoutes.DELETE("/menu-items", cartHandler.Clear)

	orderRoutes := router.NewGroup("/orders")
	orderRoutes.GET("", orderHandler.List)
	orderRoutes.POST("", middleware.RequireAction(access.ActionPlaceOrder), orderHandler.Place)
	orderRoutes.GET("/:id", orderHandler.GetByID)
	orderRoutes.PUT("/:id", middleware.RequireAction(access.ActionFulfillOrder), orderHandler.Update)
	orderRoutes.PATCH("/:id", middleware.RequireAction(access.ActionFulfillOrder), orderHandler.Update)
	orderRoutes.DELETE("/:id", middleware.RequireAction(access.ActionDeleteOrder), orderHandler.Delete)

	r.Register(authRoutes).
		Register(menuRoutes).
		Register(groupRoutes).
		Register(cartRoutes).
		Register(orderRoutes)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
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
