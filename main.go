package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ecommerce-backend/config"
	"ecommerce-backend/gateway"
	"ecommerce-backend/models"
	"ecommerce-backend/routes"
	"ecommerce-backend/services"
	"ecommerce-backend/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	setupLogger(cfg)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	db := initDatabase(cfg)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		slog.Error("auto-migrate failed", "error", err)
		os.Exit(1)
	}

	// Stores, gateway client and services are built once here and injected
	// everywhere; no package-level shared state.
	userStore := store.NewUserStore(db)
	productStore := store.NewProductStore(db)
	cartStore := store.NewCartStore(db)
	orderStore := store.NewOrderStore(db)

	midtrans := gateway.NewClient(cfg.MidtransServerKey, cfg.MidtransIsProduction)

	authService := services.NewAuthService(userStore, cfg.JWTSecret, time.Duration(cfg.JWTExpiresHour)*time.Hour)
	catalogService := services.NewCatalogService(productStore)
	cartService := services.NewCartService(cartStore, productStore)
	orderService := services.NewOrderService(orderStore, productStore, cartService, cfg.FreeShippingMin, cfg.ShippingFlatFee)
	paymentService := services.NewPaymentService(midtrans, orderStore)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, routes.Deps{
		Auth:        authService,
		Catalog:     catalogService,
		Cart:        cartService,
		Orders:      orderService,
		Payments:    paymentService,
		JWTSecret:   cfg.JWTSecret,
		AdminAPIKey: cfg.AdminAPIKey,
	})

	slog.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(cfg config.Config) {
	handler := slog.NewJSONHandler(os.Stdout, nil)
	slog.SetDefault(slog.New(handler).With("service", "ecommerce-backend", "env", cfg.AppEnv))
}

// initDatabase opens the GORM connection, preferring DATABASE_URL over the
// individual DB_* parts.
func initDatabase(cfg config.Config) *gorm.DB {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	return db
}
