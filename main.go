package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopbay/backend/config"
	"github.com/shopbay/backend/controllers"
	"github.com/shopbay/backend/database"
	"github.com/shopbay/backend/logger"
	"github.com/shopbay/backend/middleware"
	"github.com/shopbay/backend/repository"
	"github.com/shopbay/backend/routes"
	"github.com/shopbay/backend/services"
)

func main() {
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.JWTSecret == "" {
		zapLogger.Fatal("JWT_SECRET must be set")
	}

	client, db, err := database.Connect(cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		zapLogger.Fatal("could not connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := database.Close(client); err != nil {
			zapLogger.Error("mongo disconnect failed", zap.Error(err))
		}
	}()
	zapLogger.Info("connected to MongoDB", zap.String("database", cfg.MongoDB))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)

	// Services
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := services.NewAuthService(userRepo, tokenService)
	catalogService := services.NewCatalogService(productRepo)
	cartService := services.NewCartService(cartRepo, productRepo, userRepo)

	// Controllers
	authController := controllers.NewAuthController(authService, zapLogger)
	productController := controllers.NewProductController(catalogService, zapLogger)
	cartController := controllers.NewCartController(cartService, zapLogger)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	routes.Register(router, authController, productController, cartController, authService)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zapLogger.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zapLogger.Info("shutting down gracefully")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("shutdown error", zap.Error(err))
	}
	zapLogger.Info("server shutdown complete")
}
