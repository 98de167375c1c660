package app

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/pkg/events"
)

// Backend bundles the database, services, and event publisher behind
// the HTTP API. It exists so the server command and the offline client
// can share one wiring path.
type Backend struct {
	Config Config
	DB     *gorm.DB

	Products *services.ProductService
	Carts    *services.CartService
	Orders   *services.OrderService
	Reviews  *services.ReviewService
	Auth     *services.AuthService

	Publisher *events.Publisher
}

// NewBackend opens the database, runs migrations, wires the service
// graph, and seeds demo data when the store is empty.
func NewBackend(cfg Config) (*Backend, error) {
	db, err := openDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.User{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	var publisher *events.Publisher
	if cfg.RabbitMQURL != "" {
		publisher, err = events.NewPublisher(events.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
	}

	productRepo := repositories.NewGORMProductRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	orderService := services.NewOrderService(orderRepo, cartRepo, productRepo, publisher)
	reviewService := services.NewReviewService(reviewRepo, orderService)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)

	backend := &Backend{
		Config:    cfg,
		DB:        db,
		Products:  productService,
		Carts:     cartService,
		Orders:    orderService,
		Reviews:   reviewService,
		Auth:      authService,
		Publisher: publisher,
	}

	if err := backend.seedIfEmpty(); err != nil {
		return nil, fmt.Errorf("failed to seed demo data: %w", err)
	}
	return backend, nil
}

func openDatabase(cfg Config) (*gorm.DB, error) {
	switch cfg.DatabaseDriver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	case "sqlite", "":
		return gorm.Open(sqlite.Open(cfg.DatabaseDSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.DatabaseDriver)
	}
}

// Router assembles the Fiber app serving the storefront API.
func (b *Backend) Router() *fiber.App {
	app := fiber.New()
	app.Use(logger.New())

	productHandler := handlers.NewProductHandler(b.Products)
	cartHandler := handlers.NewCartHandler(b.Carts)
	orderHandler := handlers.NewOrderHandler(b.Orders)
	reviewHandler := handlers.NewReviewHandler(b.Reviews)
	authHandler := handlers.NewAuthHandler(b.Auth)
	adminHandler := handlers.NewAdminHandler(b.Products, b.Orders)

	api := app.Group("/api")

	// Public routes: the catalog and login.
	authHandler.RegisterPublicRoutes(api)
	productHandler.RegisterRoutes(api)
	reviewHandler.RegisterPublicRoutes(api)

	// Routes behind a session cookie.
	session := api.Group("", middleware.SessionRequired(b.Auth))
	authHandler.RegisterSessionRoutes(session)
	cartHandler.RegisterRoutes(session)
	orderHandler.RegisterRoutes(session)
	reviewHandler.RegisterSessionRoutes(session)

	// Admin routes on top of the session check.
	admin := session.Group("/admin", middleware.AdminOnly())
	adminHandler.RegisterRoutes(admin)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}

// Close releases the backend's external resources.
func (b *Backend) Close() {
	if b.Publisher != nil {
		if err := b.Publisher.Close(); err != nil {
			log.Printf("error closing event publisher: %v", err)
		}
	}
	if sqlDB, err := b.DB.DB(); err == nil {
		sqlDB.Close()
	}
}
