package services

import (
	"time"

	"github.com/shopspring/decimal"

	"finabiz/internal/models"
	"finabiz/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(name, email, password string) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	ListUsers() ([]models.User, error)
	GetUserByID(id uint) (*models.User, error)
	StoreRefreshTokenHash(userID uint, tokenHash string) error
	GetRefreshTokenHash(userID uint) (string, error)
}

// LedgerFilter holds optional filter parameters for listing ledger entries.
type LedgerFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	CategoryID *uint
}

// LedgerServicer defines the contract for expense and income bookkeeping.
type LedgerServicer interface {
	CreateExpense(userID uint, amount decimal.Decimal, paymentMethod string, date time.Time, categoryID *uint, note *string) (*models.Expense, error)
	GetUserExpenses(userID uint, page pagination.PageRequest, filter LedgerFilter) (*pagination.PageResponse[models.Expense], error)
	CreateIncome(userID uint, amount decimal.Decimal, paymentMethod string, date time.Time, note *string) (*models.Income, error)
	GetUserIncomes(userID uint, page pagination.PageRequest, filter LedgerFilter) (*pagination.PageResponse[models.Income], error)
	ListCategories() ([]models.Category, error)
}

// GoalServicer defines the contract for savings-goal business logic.
type GoalServicer interface {
	CreateGoal(userID uint, name string, description *string, target decimal.Decimal, icon string, targetDate *time.Time) (*models.SavingsGoal, error)
	GetUserGoals(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.SavingsGoal], error)
	GetGoalByID(userID, goalID uint) (*models.SavingsGoal, error)
	AddToGoal(userID, goalID uint, amount decimal.Decimal) (*models.SavingsGoal, error)
}

// UserAchievement pairs an achievement type with one user's progress.
// Users without a progress row report zero progress.
type UserAchievement struct {
	Type        models.AchievementType `json:"type"`
	Progress    decimal.Decimal        `json:"progress"`
	Completed   bool                   `json:"completed"`
	CompletedAt *time.Time             `json:"completed_at,omitempty"`
}

// AchievementServicer defines the contract for achievement reads.
// Progress accrual is an unimplemented extension point.
type AchievementServicer interface {
	GetUserAchievements(userID uint) ([]UserAchievement, error)
}

// SeedResult reports whether one canonical row was inserted or already present.
type SeedResult struct {
	Name    string `json:"name"`
	Created bool   `json:"created"`
}

// SeedServicer defines the contract for the idempotent bootstrap data.
type SeedServicer interface {
	EnsureCategories() ([]SeedResult, error)
	EnsureAchievementTypes() ([]SeedResult, error)
}
