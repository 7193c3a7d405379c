package services

import (
	"testing"

	"finabiz/internal/models"
	"finabiz/internal/testutil"
)

func TestEnsureCategories(t *testing.T) {
	t.Run("seeds_fixed_set", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeedService(db)

		results, err := svc.EnsureCategories()
		testutil.AssertNoError(t, err)

		if len(results) != 10 {
			t.Fatalf("expected 10 seed results, got %d", len(results))
		}
		for _, result := range results {
			if !result.Created {
				t.Errorf("expected %s to be created on first run", result.Name)
			}
		}

		var names []string
		db.Model(&models.Category{}).Order("id").Pluck("categoria", &names)
		if len(names) != 10 {
			t.Fatalf("expected 10 categories, got %d", len(names))
		}
		if names[0] != "Food" || names[9] != "Other" {
			t.Errorf("unexpected seed order: %v", names)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeedService(db)

		_, err := svc.EnsureCategories()
		testutil.AssertNoError(t, err)

		results, err := svc.EnsureCategories()
		testutil.AssertNoError(t, err)
		for _, result := range results {
			if result.Created {
				t.Errorf("expected %s to already exist on second run", result.Name)
			}
		}

		var count int64
		db.Model(&models.Category{}).Count(&count)
		if count != 10 {
			t.Errorf("expected exactly 10 categories after two runs, got %d", count)
		}
	})

	t.Run("leaves_extra_categories_untouched", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeedService(db)

		if err := db.Create(&models.Category{Name: "Subscriptions"}).Error; err != nil {
			t.Fatalf("failed to create extra category: %v", err)
		}

		_, err := svc.EnsureCategories()
		testutil.AssertNoError(t, err)

		var count int64
		db.Model(&models.Category{}).Count(&count)
		if count != 11 {
			t.Errorf("expected 11 categories, got %d", count)
		}
	})
}

func TestEnsureAchievementTypes(t *testing.T) {
	t.Run("seeds_six_types", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeedService(db)

		results, err := svc.EnsureAchievementTypes()
		testutil.AssertNoError(t, err)

		if len(results) != 6 {
			t.Fatalf("expected 6 seed results, got %d", len(results))
		}
		for _, result := range results {
			if !result.Created {
				t.Errorf("expected %s to be created on first run", result.Name)
			}
		}
	})

	t.Run("second_run_reports_all_present", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeedService(db)

		_, err := svc.EnsureAchievementTypes()
		testutil.AssertNoError(t, err)

		results, err := svc.EnsureAchievementTypes()
		testutil.AssertNoError(t, err)
		for _, result := range results {
			if result.Created {
				t.Errorf("expected %s to already exist on second run", result.Name)
			}
		}

		var count int64
		db.Model(&models.AchievementType{}).Count(&count)
		if count != 6 {
			t.Errorf("expected exactly 6 achievement types after two runs, got %d", count)
		}
	})

	t.Run("codes_are_the_closed_set", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeedService(db)

		_, err := svc.EnsureAchievementTypes()
		testutil.AssertNoError(t, err)

		var codes []string
		db.Model(&models.AchievementType{}).Order("id").Pluck("tipo", &codes)

		want := []string{
			"first-expense",
			"first-income",
			"monthly-expense-cap",
			"monthly-savings",
			"consistency-streak",
			"savings-goal-reached",
		}
		if len(codes) != len(want) {
			t.Fatalf("expected %d codes, got %d", len(want), len(codes))
		}
		for i, code := range want {
			if codes[i] != code {
				t.Errorf("expected code %s at position %d, got %s", code, i, codes[i])
			}
		}
	})
}
