package testutil_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"finabiz/internal/errors"
	"finabiz/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"usuarios", "usuarios_social", "categorias", "gastos", "ingresos", "tipos_logros", "logros_usuarios", "metas"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == 0 {
		t.Fatal("user should have a non-zero ID")
	}
	if !user.IsActive {
		t.Error("test user should be active")
	}

	category := testutil.CreateTestCategory(t, db)
	if category.ID == 0 {
		t.Fatal("category should have a non-zero ID")
	}

	expense := testutil.CreateTestExpense(t, db, user.ID, decimal.NewFromInt(50))
	if !expense.Amount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected amount 50, got %s", expense.Amount)
	}

	income := testutil.CreateTestIncome(t, db, user.ID, decimal.NewFromInt(1200))
	if !income.Amount.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected amount 1200, got %s", income.Amount)
	}

	goal := testutil.CreateTestGoal(t, db, user.ID, decimal.NewFromInt(1000))
	if !goal.CurrentAmount.IsZero() {
		t.Errorf("expected zero current amount, got %s", goal.CurrentAmount)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrGoalNotFound, "custom message")
	testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
