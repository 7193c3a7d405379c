package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finabiz/internal/services"
)

// AchievementHandler handles achievement read requests
type AchievementHandler struct {
	achievementService services.AchievementServicer
}

// NewAchievementHandler creates a new AchievementHandler
func NewAchievementHandler(achievementService services.AchievementServicer) *AchievementHandler {
	return &AchievementHandler{achievementService: achievementService}
}

// ListAchievements returns all achievement types with the caller's progress
// @Summary     List achievements
// @Description List every achievement type with the authenticated user's progress
// @Tags        achievements
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Achievements with progress"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /api/v1/achievements [get]
func (h *AchievementHandler) ListAchievements(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	achievements, err := h.achievementService.GetUserAchievements(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"achievements": achievements})
}
