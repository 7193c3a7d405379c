package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finabiz/internal/errors"
	"finabiz/internal/models"
)

// achievementService handles achievement reads. Nothing here accrues
// progress; rows in logros_usuarios are the source of truth.
type achievementService struct {
	db *gorm.DB
}

// NewAchievementService creates a new AchievementServicer.
func NewAchievementService(db *gorm.DB) AchievementServicer {
	return &achievementService{db: db}
}

// GetUserAchievements returns every achievement type joined with the user's
// progress. Types the user has no row for report zero progress.
func (s *achievementService) GetUserAchievements(userID uint) ([]UserAchievement, error) {
	var types []models.AchievementType
	if err := s.db.Order("id").Find(&types).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var rows []models.AchievementProgress
	if err := s.db.Where("usuario_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	progressByType := make(map[uint]models.AchievementProgress, len(rows))
	for _, row := range rows {
		progressByType[row.AchievementTypeID] = row
	}

	achievements := make([]UserAchievement, 0, len(types))
	for _, t := range types {
		entry := UserAchievement{Type: t, Progress: decimal.Zero}
		if row, ok := progressByType[t.ID]; ok {
			entry.Progress = row.Progress
			entry.Completed = row.Completed
			entry.CompletedAt = row.CompletedAt
		}
		achievements = append(achievements, entry)
	}

	return achievements, nil
}
