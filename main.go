package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dhanushvel123/PetShop-Server/config"
	"github.com/Dhanushvel123/PetShop-Server/controllers"
	"github.com/Dhanushvel123/PetShop-Server/database"
	"github.com/Dhanushvel123/PetShop-Server/middleware"
	"github.com/Dhanushvel123/PetShop-Server/pkg/logger"
	"github.com/Dhanushvel123/PetShop-Server/repository"
	"github.com/Dhanushvel123/PetShop-Server/routes"
	"github.com/Dhanushvel123/PetShop-Server/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if err := database.ConnectWithConfig(cfg.MongoURI, cfg.MongoDB); err != nil {
		logger.Log.Fatal("Could not connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Log.Warn("MongoDB disconnect failed", zap.Error(err))
		}
	}()
	logger.Log.Info("Connected to MongoDB", zap.String("database", cfg.MongoDB))

	// Repositories
	users := repository.NewUserRepository(database.DB)
	petFoods := repository.NewProductRepository(database.DB, database.PetFoodsCollection)
	accessories := repository.NewProductRepository(database.DB, database.AccessoriesCollection)
	foodCarts := repository.NewCartRepository(database.DB, database.FoodCartsCollection)
	accessoryCarts := repository.NewCartRepository(database.DB, database.AccessoryCartsCollection)
	orders := repository.NewOrderRepository(database.DB)

	// Services
	tokens := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	auth := services.NewAuthService(users, tokens, cfg.AdminPassword)
	foodCatalog := services.NewCatalogService(petFoods)
	accessoryCatalog := services.NewCatalogService(accessories)
	foodCart := services.NewCartService(petFoods, foodCarts)
	accessoryCart := services.NewCartService(accessories, accessoryCarts)
	orderService := services.NewOrderService(orders, petFoods, accessories, foodCarts, accessoryCarts)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Register(r, routes.Controllers{
		Auth:          controllers.NewAuthController(auth),
		PetFoods:      controllers.NewProductController(foodCatalog),
		Accessories:   controllers.NewProductController(accessoryCatalog),
		FoodCart:      controllers.NewCartController(foodCart),
		AccessoryCart: controllers.NewCartController(accessoryCart),
		Orders:        controllers.NewOrderController(orderService),
	}, middleware.RequireAuth(tokens), middleware.RateLimit())

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Log.Info("Server started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Error starting server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Forced shutdown", zap.Error(err))
	}
}
