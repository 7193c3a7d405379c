package main

import (
	"fmt"
	"net/http"
	"os"

	"finabiz/internal/config"
	"finabiz/internal/database"
	"finabiz/internal/handlers"
	"finabiz/internal/logger"
	"finabiz/internal/middleware"
	"finabiz/internal/services"
	"finabiz/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Finabiz API
// @version         1.0
// @description     Finabiz is a personal finance backend: accounts, expense/income ledger, achievement badges, and savings goals.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

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

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	ledgerService := services.NewLedgerService(db)
	goalService := services.NewGoalService(db)
	achievementService := services.NewAchievementService(db)
	seedService := services.NewSeedService(db)

	// Reconcile bootstrap data; safe on every start
	if err := runSeeds(seedService); err != nil {
		return fmt.Errorf("failed to seed bootstrap data: %w", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)
	goalHandler := handlers.NewGoalHandler(goalService)
	achievementHandler := handlers.NewAchievementHandler(achievementService)

	// Register custom validators
	validator.Register()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Legacy API consumed by the existing client application
	api := router.Group("/api")
	api.POST("/registrar/", authHandler.Register)
	api.POST("/login/", authHandler.Login)
	api.GET("/health/", authHandler.Health)
	api.GET("/usuarios/", middleware.AuthMiddleware(), authHandler.ListUsers)

	// API v1 group
	v1 := router.Group("/api/v1")
	v1.POST("/auth/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Ledger routes
	expenses := protected.Group("/expenses")
	expenses.POST("", ledgerHandler.CreateExpense)
	expenses.GET("", ledgerHandler.ListExpenses)

	incomes := protected.Group("/incomes")
	incomes.POST("", ledgerHandler.CreateIncome)
	incomes.GET("", ledgerHandler.ListIncomes)

	protected.GET("/categories", ledgerHandler.ListCategories)

	// Savings goal routes
	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.ListGoals)
	goals.PATCH("/:id/amount", goalHandler.AddToGoal)

	// Achievement routes
	protected.GET("/achievements", achievementHandler.ListAchievements)

	log.Infof("Starting Finabiz backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

// runSeeds reconciles the category catalog and achievement-type definitions.
func runSeeds(seedService services.SeedServicer) error {
	log := logger.Get()

	if _, err := seedService.EnsureCategories(); err != nil {
		return err
	}

	results, err := seedService.EnsureAchievementTypes()
	if err != nil {
		return err
	}
	for _, result := range results {
		if result.Created {
			log.Infof("Created achievement type: %s", result.Name)
		}
	}
	return nil
}
