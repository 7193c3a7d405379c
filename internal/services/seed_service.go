package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "finabiz/internal/errors"
	"finabiz/internal/models"
)

// canonicalAchievementTypes is the fixed set of milestone definitions.
var canonicalAchievementTypes = []models.AchievementType{
	{
		Name:        "First Expense",
		Code:        models.AchievementFirstExpense,
		Description: "Record your first expense",
		Icon:        "shopping-cart",
		Color:       "#ef4444",
		Target:      decimal.NewFromInt(1),
	},
	{
		Name:        "First Income",
		Code:        models.AchievementFirstIncome,
		Description: "Record your first income",
		Icon:        "dollar-sign",
		Color:       "#10b981",
		Target:      decimal.NewFromInt(1),
	},
	{
		Name:        "Spending Control",
		Code:        models.AchievementMonthlyExpenseCap,
		Description: "Keep your monthly spending below your target",
		Icon:        "trending-down",
		Color:       "#f59e0b",
		Target:      decimal.NewFromInt(1000),
	},
	{
		Name:        "Monthly Saver",
		Code:        models.AchievementMonthlySavings,
		Description: "Save more than $500 in one month",
		Icon:        "piggy-bank",
		Color:       "#06b6d4",
		Target:      decimal.NewFromInt(500),
	},
	{
		Name:        "Financial Consistency",
		Code:        models.AchievementConsistencyStreak,
		Description: "Record transactions for 7 consecutive days",
		Icon:        "calendar",
		Color:       "#8b5cf6",
		Target:      decimal.NewFromInt(7),
	},
	{
		Name:        "Savings Goal",
		Code:        models.AchievementSavingsGoal,
		Description: "Reach your first savings goal of $1000",
		Icon:        "target",
		Color:       "#4f46e5",
		Target:      decimal.NewFromInt(1000),
	},
}

// seedService reconciles the canonical bootstrap data against the store.
// Inserts go through ON CONFLICT DO NOTHING, so repeated or concurrent runs
// converge on the same rows; the unique indexes carry the idempotence.
type seedService struct {
	db *gorm.DB
}

// NewSeedService creates a new SeedServicer.
func NewSeedService(db *gorm.DB) SeedServicer {
	return &seedService{db: db}
}

// EnsureCategories inserts any missing canonical categories, reporting
// per-name whether a row was created. Existing rows are left untouched.
func (s *seedService) EnsureCategories() ([]SeedResult, error) {
	results := make([]SeedResult, 0, len(models.SeedCategories))
	for _, name := range models.SeedCategories {
		category := models.Category{Name: name}
		res := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&category)
		if res.Error != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		results = append(results, SeedResult{Name: name, Created: res.RowsAffected > 0})
	}
	return results, nil
}

// EnsureAchievementTypes inserts any missing canonical achievement types,
// reporting per-code whether a row was created.
func (s *seedService) EnsureAchievementTypes() ([]SeedResult, error) {
	results := make([]SeedResult, 0, len(canonicalAchievementTypes))
	for _, canonical := range canonicalAchievementTypes {
		row := canonical
		res := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
		if res.Error != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		results = append(results, SeedResult{Name: string(canonical.Code), Created: res.RowsAffected > 0})
	}
	return results, nil
}
