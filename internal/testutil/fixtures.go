package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finabiz/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
// The password is always "password123".
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     fmt.Sprintf("Test User %d", nextID()),
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()

	category := &models.Category{Name: fmt.Sprintf("Test Category %d", nextID())}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestExpense creates an expense for the given user.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID uint, amount decimal.Decimal) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:        userID,
		Amount:        amount,
		PaymentMethod: "cash",
		Date:          time.Now().Truncate(24 * time.Hour),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestIncome creates an income for the given user.
func CreateTestIncome(t *testing.T, db *gorm.DB, userID uint, amount decimal.Decimal) *models.Income {
	t.Helper()

	income := &models.Income{
		UserID:        userID,
		Amount:        amount,
		PaymentMethod: "transfer",
		Date:          time.Now().Truncate(24 * time.Hour),
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestGoal creates an active savings goal for the given user.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID uint, target decimal.Decimal) *models.SavingsGoal {
	t.Helper()

	goal := &models.SavingsGoal{
		UserID:        userID,
		Name:          fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
		Icon:          "🎯",
		Status:        models.GoalStatusActive,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestAchievementProgress creates a progress row for the given user and type.
func CreateTestAchievementProgress(t *testing.T, db *gorm.DB, userID, typeID uint, progress decimal.Decimal, completed bool) *models.AchievementProgress {
	t.Helper()

	row := &models.AchievementProgress{
		UserID:            userID,
		AchievementTypeID: typeID,
		Progress:          progress,
		Completed:         completed,
	}
	if completed {
		now := time.Now()
		row.CompletedAt = &now
	}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to create test achievement progress: %v", err)
	}
	return row
}
