package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"finabiz/internal/handlers"
	"finabiz/internal/logger"
	"finabiz/internal/middleware"
	"finabiz/internal/models"
	"finabiz/internal/services"
	"finabiz/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.SocialLink{},
		&models.Category{},
		&models.Expense{},
		&models.Income{},
		&models.AchievementType{},
		&models.AchievementProgress{},
		&models.SavingsGoal{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite,
// with the category catalog and achievement types seeded.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	ledgerService := services.NewLedgerService(db)
	goalService := services.NewGoalService(db)
	achievementService := services.NewAchievementService(db)
	seedService := services.NewSeedService(db)

	if _, err := seedService.EnsureCategories(); err != nil {
		t.Fatalf("failed to seed categories: %v", err)
	}
	if _, err := seedService.EnsureAchievementTypes(); err != nil {
		t.Fatalf("failed to seed achievement types: %v", err)
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)
	goalHandler := handlers.NewGoalHandler(goalService)
	achievementHandler := handlers.NewAchievementHandler(achievementService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	// Legacy routes
	api := router.Group("/api")
	api.POST("/registrar/", authHandler.Register)
	api.POST("/login/", authHandler.Login)
	api.GET("/health/", authHandler.Health)
	api.GET("/usuarios/", middleware.AuthMiddleware(), authHandler.ListUsers)

	v1 := router.Group("/api/v1")
	v1.POST("/auth/refresh", authHandler.Refresh)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	expenses := protected.Group("/expenses")
	expenses.POST("", ledgerHandler.CreateExpense)
	expenses.GET("", ledgerHandler.ListExpenses)

	incomes := protected.Group("/incomes")
	incomes.POST("", ledgerHandler.CreateIncome)
	incomes.GET("", ledgerHandler.ListIncomes)

	protected.GET("/categories", ledgerHandler.ListCategories)

	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.ListGoals)
	goals.PATCH("/:id/amount", goalHandler.AddToGoal)

	protected.GET("/achievements", achievementHandler.ListAchievements)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user through the legacy endpoint and returns the user ID.
func (app *testApp) registerUser(t *testing.T, name, email, password string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"nombre":%q,"correo":%q,"password":%q}`, name, email, password)
	rec := app.request("POST", "/api/registrar/", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return user["id"].(float64)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"correo":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/login/", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	tokens := result["tokens"].(map[string]interface{})
	return tokens["access"].(string), tokens["refresh"].(string)
}

// registerAndLogin registers a user and immediately logs them in.
func (app *testApp) registerAndLogin(t *testing.T, name, email string) (accessToken string) {
	t.Helper()
	app.registerUser(t, name, email, "password123")
	access, _ := app.loginUser(t, email, "password123")
	return access
}
