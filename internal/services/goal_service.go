package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finabiz/internal/errors"
	"finabiz/internal/models"
	"finabiz/internal/pagination"
)

// goalService handles savings-goal business logic.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// CreateGoal creates a new savings goal for a user.
func (s *goalService) CreateGoal(
	userID uint,
	name string,
	description *string,
	target decimal.Decimal,
	icon string,
	targetDate *time.Time,
) (*models.SavingsGoal, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "Goal name is required")
	}
	if !target.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "Target amount must be positive")
	}
	if icon == "" {
		icon = "🎯"
	}

	goal := &models.SavingsGoal{
		UserID:        userID,
		Name:          name,
		Description:   description,
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
		Icon:          icon,
		TargetDate:    targetDate,
		Status:        models.GoalStatusActive,
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// GetUserGoals returns a paginated list of a user's savings goals.
func (s *goalService) GetUserGoals(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.SavingsGoal], error) {
	page.Defaults()

	base := s.db.Model(&models.SavingsGoal{}).Where("usuario_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.SavingsGoal
	if err := base.Order("fecha_creacion DESC, id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(goals, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetGoalByID retrieves one of the user's goals.
func (s *goalService) GetGoalByID(userID, goalID uint) (*models.SavingsGoal, error) {
	var goal models.SavingsGoal
	if err := s.db.Where("id = ? AND usuario_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// AddToGoal increases the saved amount of a goal. When the saved amount
// reaches the target the goal is marked completed. Status is otherwise
// never changed here; expiry needs a scheduled job outside this scope.
func (s *goalService) AddToGoal(userID, goalID uint, amount decimal.Decimal) (*models.SavingsGoal, error) {
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "Amount must be positive")
	}

	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.CurrentAmount = goal.CurrentAmount.Add(amount)
	updates := map[string]interface{}{"monto_actual": goal.CurrentAmount}
	if goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount) && goal.Status == models.GoalStatusActive {
		goal.Status = models.GoalStatusCompleted
		updates["estado"] = goal.Status
	}

	if err := s.db.Model(&models.SavingsGoal{}).Where("id = ?", goal.ID).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}
