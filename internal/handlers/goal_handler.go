package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finabiz/internal/errors"
	"finabiz/internal/models"
	"finabiz/internal/pagination"
	"finabiz/internal/services"
)

// GoalHandler handles savings-goal requests
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoalRequest represents the request payload for creating a savings goal
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required,max=200"`
	Description  *string         `json:"description"`
	TargetAmount decimal.Decimal `json:"target_amount" binding:"required"`
	Icon         string          `json:"icon" binding:"omitempty,goal_icon"`
	TargetDate   *string         `json:"target_date" binding:"omitempty,datetime=2006-01-02"`
}

// AddToGoalRequest represents the request payload for adding to a goal
type AddToGoalRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// goalPayload maps a savings goal to its response payload, including the
// computed progress percentage and days remaining.
func goalPayload(goal *models.SavingsGoal, now time.Time) gin.H {
	payload := gin.H{
		"id":             goal.ID,
		"name":           goal.Name,
		"description":    goal.Description,
		"target_amount":  goal.TargetAmount,
		"current_amount": goal.CurrentAmount,
		"icon":           goal.Icon,
		"status":         goal.Status,
		"created_at":     goal.CreatedAt,
		"progress":       goal.Progress(),
	}
	if goal.TargetDate != nil {
		payload["target_date"] = goal.TargetDate.Format(dateLayout)
		payload["days_remaining"] = goal.DaysRemaining(now)
	}
	return payload
}

// CreateGoal creates a new savings goal
// @Summary     Create a savings goal
// @Description Create a new savings goal for the authenticated user
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateGoalRequest true "Goal data"
// @Success     201 {object} map[string]interface{} "Created goal"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /api/v1/goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	var targetDate *time.Time
	if req.TargetDate != nil {
		parsed, _ := time.Parse(dateLayout, *req.TargetDate)
		targetDate = &parsed
	}

	goal, err := h.goalService.CreateGoal(userID, req.Name, req.Description, req.TargetAmount, req.Icon, targetDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": goalPayload(goal, time.Now())})
}

// ListGoals returns the user's savings goals
// @Summary     List savings goals
// @Description List the authenticated user's savings goals with computed progress
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} map[string]interface{} "Paginated goals"
// @Router      /api/v1/goals [get]
func (h *GoalHandler) ListGoals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	goals, err := h.goalService.GetUserGoals(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	now := time.Now()
	payloads := make([]gin.H, 0, len(goals.Data))
	for i := range goals.Data {
		payloads = append(payloads, goalPayload(&goals.Data[i], now))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":        payloads,
		"page":        goals.Page,
		"page_size":   goals.PageSize,
		"total_items": goals.TotalItems,
		"total_pages": goals.TotalPages,
	})
}

// AddToGoal adds to a goal's saved amount
// @Summary     Add to a savings goal
// @Description Increase the saved amount of one of the user's goals
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Goal ID"
// @Param       request body AddToGoalRequest true "Amount to add"
// @Success     200 {object} map[string]interface{} "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Router      /api/v1/goals/{id}/amount [patch]
func (h *GoalHandler) AddToGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddToGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	goal, err := h.goalService.AddToGoal(userID, goalID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goalPayload(goal, time.Now())})
}
