package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("JWT_SECRET", "change-me")
	viper.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	viper.SetDefault("ORDER_CLEAR_CART", true)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.AutomaticEnv()

	if level, err := log.ParseLevel(viper.GetString("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	// --- Repositories ---
	// Postgres when DATABASE_URL is set, in-memory stores otherwise.
	var (
		itemRepo  repositories.ItemRepository
		userRepo  repositories.UserRepository
		cartRepo  repositories.CartRepository
		orderRepo repositories.OrderRepository
	)
	if dsn := viper.GetString("DATABASE_URL"); dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(&models.Item{}, &models.User{}, &models.Cart{}, &models.CartEntry{}, &models.UserOrder{}, &models.OrderItem{}); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
		itemRepo = repositories.NewGORMItemRepository(db)
		userRepo = repositories.NewGORMUserRepository(db)
		cartRepo = repositories.NewGORMCartRepository(db)
		orderRepo = repositories.NewGORMOrderRepository(db)
	} else {
		log.Warn("DATABASE_URL not set, using in-memory stores")
		itemRepo = repositories.NewMockItemRepository()
		userRepo = repositories.NewMockUserRepository()
		cartRepo = repositories.NewMockCartRepository()
		orderRepo = repositories.NewMockOrderRepository()
		seedItems(itemRepo)
	}

	// --- RabbitMQ ---
	var publisher services.EventPublisher
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Fatalf("failed to initialize RabbitMQ client: %v", err)
		}
		defer client.Close()
		mqClient = client
		publisher = client
	} else {
		log.Warn("RABBITMQ_URL not set, order events will not be published")
	}

	// --- Services ---
	itemService := services.NewItemService(itemRepo)
	userService := services.NewUserService(userRepo, cartRepo, viper.GetInt("BCRYPT_COST"))
	cartService := services.NewCartService(userRepo, itemRepo, cartRepo)
	orderService := services.NewOrderService(orderRepo, userRepo, cartRepo, publisher, viper.GetBool("ORDER_CLEAR_CART"))
	authService := services.NewAuthService(userRepo, viper.GetString("JWT_SECRET"))

	// --- Handlers ---
	itemHandler := handlers.NewItemHandler(itemService)
	userHandler := handlers.NewUserHandler(userService, authService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// --- Fiber app and routes ---
	app := fiber.New()
	app.Use(fiberlogger.New())

	api := app.Group("/api")

	// Catalog browsing and registration are public.
	itemHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)

	// Cart and order operations require a credential.
	protected := api.Group("", middleware.AuthRequired(authService))
	cartHandler.RegisterRoutes(protected)
	orderHandler.RegisterRoutes(protected)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Order event consumer ---
	if mqClient != nil {
		go func() {
			log.Info("starting order event consumer")
			err := mqClient.ConsumeOrderEvents(func(msg amqp.Delivery) error {
				log.Infof("received order event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			})
			if err != nil {
				log.WithError(err).Error("order event consumer stopped")
			}
		}()
	}

	// --- Start HTTP server ---
	appPort := viper.GetString("APP_PORT")
	log.Infof("starting server on %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("server failed to start: %v", err)
		}
	}()

	<-quit
	log.Info("shutting down server")

	if err := app.Shutdown(); err != nil {
		log.WithError(err).Error("error during shutdown")
	}
	log.Info("server stopped")
}

// seedItems populates the in-memory catalog so the API is usable without a
// database.
func seedItems(repo repositories.ItemRepository) {
	items := []models.Item{
		{Name: "Round Widget", Description: "A widget that is round", Price: 2.99},
		{Name: "Square Widget", Description: "A widget that is square", Price: 1.99},
	}
	for i := range items {
		if err := repo.Create(&items[i]); err != nil {
			log.WithError(err).Warnf("failed to seed item %s", items[i].Name)
		}
	}
}
