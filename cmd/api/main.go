package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/config"
	"pocketledger/internal/database"
	"pocketledger/internal/handlers"
	"pocketledger/internal/logger"
	"pocketledger/internal/middleware"
	"pocketledger/internal/notify"
	"pocketledger/internal/services"
	"pocketledger/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	categoryService := services.NewCategoryService(db)
	cardService := services.NewCardService(db)
	transactionService := services.NewTransactionService(db)
	summaryService := services.NewSummaryService(db)
	budgetService := services.NewBudgetService(db)

	// Seed built-in categories on first start. A failed seed is a startup
	// error, not something to swallow.
	seeded, err := categoryService.CreateDefaultCategories()
	if err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}
	if seeded > 0 {
		log.Infof("Seeded %d default categories", seeded)
	}

	// Notification feed shared by all handlers
	feed := notify.NewFeed(appConfig.NotificationFeedSize)

	// Initialize handlers
	categoryHandler := handlers.NewCategoryHandler(categoryService, feed)
	cardHandler := handlers.NewCardHandler(cardService, feed)
	transactionHandler := handlers.NewTransactionHandler(transactionService, feed)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, feed)
	notificationHandler := handlers.NewNotificationHandler(feed)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	categories := v1.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	cards := v1.Group("/cards")
	cards.POST("", cardHandler.CreateCard)
	cards.GET("", cardHandler.GetCards)
	cards.GET("/:id", cardHandler.GetCardByID)
	cards.PUT("/:id", cardHandler.UpdateCard)
	cards.DELETE("/:id", cardHandler.DeleteCard)
	cards.POST("/:id/perks", cardHandler.AddPerk)
	cards.GET("/:id/perks", cardHandler.GetPerks)
	cards.DELETE("/:id/perks/:perkId", cardHandler.DeletePerk)
	cards.GET("/:id/rewards", summaryHandler.GetCardRewards)

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.GET("/:id/reward", transactionHandler.GetTransactionReward)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	summary := v1.Group("/summary")
	summary.GET("/monthly", summaryHandler.GetMonthlySummary)
	summary.GET("/categories", summaryHandler.GetCategoryBreakdown)

	budget := v1.Group("/budget")
	budget.GET("", budgetHandler.GetBudget)
	budget.PUT("", budgetHandler.SetBudget)
	budget.GET("/status", budgetHandler.GetBudgetStatus)

	notifications := v1.Group("/notifications")
	notifications.GET("", notificationHandler.GetNotifications)
	notifications.DELETE("/:id", notificationHandler.DismissNotification)

	log.Infof("Starting PocketLedger backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
