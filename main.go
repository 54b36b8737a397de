package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"chefbook/internal/handlers"
	"chefbook/internal/middleware"
	"chefbook/internal/models"
	"chefbook/internal/repositories"
	"chefbook/internal/services"
	"chefbook/internal/session"
	"chefbook/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "chefbook.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Initialize Repositories ---
	chefRepo, recipeRepo, ingredientRepo := buildRepositories(
		viper.GetString("DATABASE_DRIVER"),
		viper.GetString("DATABASE_DSN"),
	)

	// --- Initialize RabbitMQ Client (optional) ---
	// Recipe lifecycle events are skipped entirely when no broker is
	// configured; the service tolerates a nil client.
	var mqClient *rabbitmq.Client
	if rabbitMQURL := viper.GetString("RABBITMQ_URL"); rabbitMQURL != "" {
		var err error
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	}

	// --- Initialize Session Store ---
	// In-memory registry by default; Redis when REDIS_ADDR is set, so
	// sessions survive restarts and can be shared between instances.
	var sessions session.Store = session.NewRegistry()
	if redisAddr := viper.GetString("REDIS_ADDR"); redisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: viper.GetString("REDIS_PASSWORD"),
		})
		sessions = session.NewRedisStore(client)
	}

	// --- Initialize Services ---
	chefService := services.NewChefService(chefRepo)
	authService := services.NewAuthService(chefService, sessions, nil)
	recipeService := services.NewRecipeService(recipeRepo, mqClient)
	ingredientService := services.NewIngredientService(ingredientRepo)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	chefHandler := handlers.NewChefHandler(chefService)
	recipeHandler := handlers.NewRecipeHandler(recipeService)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService)

	// --- Initialize Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	authHandler.RegisterRoutes(app)
	chefHandler.RegisterRoutes(app)
	recipeHandler.RegisterRoutes(app, middleware.TokenRequired(authService))
	ingredientHandler.RegisterRoutes(app)

	// --- Start RabbitMQ Consumer in a Goroutine ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for recipe events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received recipe event %s (Tag: %d): %s", msg.Type, msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeRecipeEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// buildRepositories opens the configured database and returns the three
// repositories. DATABASE_DRIVER=memory skips the database entirely and
// serves from in-memory repositories, which is handy for demos.
func buildRepositories(driver, dsn string) (
	repositories.ChefRepository,
	repositories.RecipeRepository,
	repositories.IngredientRepository,
) {
	if driver == "memory" {
		return repositories.NewMockChefRepository(),
			repositories.NewMockRecipeRepository(),
			repositories.NewMockIngredientRepository()
	}

	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Chef{}, &models.Recipe{}, &models.Ingredient{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return repositories.NewGORMChefRepository(db),
		repositories.NewGORMRecipeRepository(db),
		repositories.NewGORMIngredientRepository(db)
}
