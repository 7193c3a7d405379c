// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"finabiz/internal/models"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// goalIcons is the closed icon set for savings goals, keyed for lookup.
var goalIcons = func() map[string]bool {
	m := make(map[string]bool, len(models.GoalIcons))
	for _, icon := range models.GoalIcons {
		m[icon] = true
	}
	return m
}()

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hex_color", validateHexColor)
		_ = v.RegisterValidation("goal_icon", validateGoalIcon)
		_ = v.RegisterValidation("goal_status", validateGoalStatus)
		_ = v.RegisterValidation("achievement_code", validateAchievementCode)
	}
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateGoalIcon(fl validator.FieldLevel) bool {
	return goalIcons[fl.Field().String()]
}

func validateGoalStatus(fl validator.FieldLevel) bool {
	switch models.GoalStatus(fl.Field().String()) {
	case models.GoalStatusActive, models.GoalStatusCompleted, models.GoalStatusExpired:
		return true
	}
	return false
}

func validateAchievementCode(fl validator.FieldLevel) bool {
	switch models.AchievementCode(fl.Field().String()) {
	case models.AchievementFirstExpense,
		models.AchievementFirstIncome,
		models.AchievementMonthlyExpenseCap,
		models.AchievementMonthlySavings,
		models.AchievementConsistencyStreak,
		models.AchievementSavingsGoal:
		return true
	}
	return false
}
