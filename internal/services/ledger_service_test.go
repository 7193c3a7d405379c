package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"finabiz/internal/models"
	"finabiz/internal/pagination"
	"finabiz/internal/testutil"
)

func TestCreateExpense(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db)

		note := "groceries"
		expense, err := svc.CreateExpense(user.ID, decimal.NewFromFloat(42.50), "card", time.Now(), &category.ID, &note)
		testutil.AssertNoError(t, err)

		if expense.ID == 0 {
			t.Fatal("expected non-zero expense ID")
		}
		if !expense.Amount.Equal(decimal.NewFromFloat(42.50)) {
			t.Errorf("expected amount 42.50, got %s", expense.Amount)
		}
		if expense.CategoryID == nil || *expense.CategoryID != category.ID {
			t.Error("expected category reference to be stored")
		}
	})

	t.Run("without_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		user := testutil.CreateTestUser(t, db)

		expense, err := svc.CreateExpense(user.ID, decimal.NewFromInt(10), "cash", time.Now(), nil, nil)
		testutil.AssertNoError(t, err)
		if expense.CategoryID != nil {
			t.Error("expected nil category reference")
		}
	})

	t.Run("unknown_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		user := testutil.CreateTestUser(t, db)

		missing := uint(999)
		_, err := svc.CreateExpense(user.ID, decimal.NewFromInt(10), "cash", time.Now(), &missing, nil)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateExpense(user.ID, decimal.Zero, "cash", time.Now(), nil, nil)
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")

		_, err = svc.CreateExpense(user.ID, decimal.NewFromInt(-5), "cash", time.Now(), nil, nil)
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("missing_payment_method", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateExpense(user.ID, decimal.NewFromInt(10), "", time.Now(), nil, nil)
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestCategoryDeletionClearsExpenseReference(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewLedgerService(db)

	user := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategory(t, db)

	expense, err := svc.CreateExpense(user.ID, decimal.NewFromInt(20), "card", time.Now(), &category.ID, nil)
	testutil.AssertNoError(t, err)

	if err := db.Delete(&models.Category{}, category.ID).Error; err != nil {
		t.Fatalf("failed to delete category: %v", err)
	}

	var reloaded models.Expense
	if err := db.First(&reloaded, expense.ID).Error; err != nil {
		t.Fatalf("expected expense to survive category deletion: %v", err)
	}
	if reloaded.CategoryID != nil {
		t.Errorf("expected category reference to be cleared, got %d", *reloaded.CategoryID)
	}
}

func TestGetUserExpenses(t *testing.T) {
	t.Run("scoped_to_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		testutil.CreateTestExpense(t, db, owner.ID, decimal.NewFromInt(10))
		testutil.CreateTestExpense(t, db, owner.ID, decimal.NewFromInt(20))
		testutil.CreateTestExpense(t, db, other.ID, decimal.NewFromInt(30))

		result, err := svc.GetUserExpenses(owner.ID, pagination.PageRequest{}, LedgerFilter{})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Errorf("expected 2 expenses, got %d", result.TotalItems)
		}
	})

	t.Run("date_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		user := testutil.CreateTestUser(t, db)
		old := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		recent := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

		_, err := svc.CreateExpense(user.ID, decimal.NewFromInt(10), "cash", old, nil, nil)
		testutil.AssertNoError(t, err)
		_, err = svc.CreateExpense(user.ID, decimal.NewFromInt(20), "cash", recent, nil, nil)
		testutil.AssertNoError(t, err)

		from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		result, err := svc.GetUserExpenses(user.ID, pagination.PageRequest{}, LedgerFilter{FromDate: &from})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 1 {
			t.Fatalf("expected 1 expense after date filter, got %d", result.TotalItems)
		}
		if !result.Data[0].Amount.Equal(decimal.NewFromInt(20)) {
			t.Errorf("expected the recent expense, got amount %s", result.Data[0].Amount)
		}
	})

	t.Run("category_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db)

		_, err := svc.CreateExpense(user.ID, decimal.NewFromInt(10), "cash", time.Now(), &category.ID, nil)
		testutil.AssertNoError(t, err)
		_, err = svc.CreateExpense(user.ID, decimal.NewFromInt(20), "cash", time.Now(), nil, nil)
		testutil.AssertNoError(t, err)

		result, err := svc.GetUserExpenses(user.ID, pagination.PageRequest{}, LedgerFilter{CategoryID: &category.ID})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 {
			t.Errorf("expected 1 categorized expense, got %d", result.TotalItems)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		user := testutil.CreateTestUser(t, db)
		for i := 0; i < 5; i++ {
			testutil.CreateTestExpense(t, db, user.ID, decimal.NewFromInt(int64(i+1)))
		}

		result, err := svc.GetUserExpenses(user.ID, pagination.PageRequest{Page: 2, PageSize: 2}, LedgerFilter{})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 5 {
			t.Errorf("expected 5 total items, got %d", result.TotalItems)
		}
		if result.TotalPages != 3 {
			t.Errorf("expected 3 total pages, got %d", result.TotalPages)
		}
		if len(result.Data) != 2 {
			t.Errorf("expected 2 items on page 2, got %d", len(result.Data))
		}
	})
}

func TestCreateIncome(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		user := testutil.CreateTestUser(t, db)

		income, err := svc.CreateIncome(user.ID, decimal.NewFromFloat(1500.00), "transfer", time.Now(), nil)
		testutil.AssertNoError(t, err)

		if income.ID == 0 {
			t.Fatal("expected non-zero income ID")
		}
		if !income.Amount.Equal(decimal.NewFromFloat(1500.00)) {
			t.Errorf("expected amount 1500.00, got %s", income.Amount)
		}
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateIncome(user.ID, decimal.Zero, "transfer", time.Now(), nil)
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestGetUserIncomes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewLedgerService(db)

	owner := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	testutil.CreateTestIncome(t, db, owner.ID, decimal.NewFromInt(100))
	testutil.CreateTestIncome(t, db, other.ID, decimal.NewFromInt(200))

	result, err := svc.GetUserIncomes(owner.ID, pagination.PageRequest{}, LedgerFilter{})
	testutil.AssertNoError(t, err)

	if result.TotalItems != 1 {
		t.Errorf("expected 1 income, got %d", result.TotalItems)
	}
}

func TestListCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewLedgerService(db)

	seed := NewSeedService(db)
	_, err := seed.EnsureCategories()
	testutil.AssertNoError(t, err)

	categories, err := svc.ListCategories()
	testutil.AssertNoError(t, err)

	if len(categories) != 10 {
		t.Errorf("expected 10 categories, got %d", len(categories))
	}
}
