package repository

import (
	"context"

	"github.com/Archi44444/NeuroSaathi/internal/database"
	"github.com/Archi44444/NeuroSaathi/internal/models"
)

// HistoryLimit caps how many results are retained per user; older
// entries are evicted FIFO.
const HistoryLimit = 20

// GetHistory returns a user's retained results in chronological
// order, oldest first.
func GetHistory(ctx context.Context, userID uint) ([]models.AssessmentResult, error) {
	var results []models.AssessmentResult
	err := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Limit(HistoryLimit).
		Find(&results).Error
	return results, err
}

// SaveResult appends a new result to the user's history and silently
// evicts everything beyond the newest HistoryLimit entries.
func SaveResult(ctx context.Context, result *models.AssessmentResult) error {
	if err := database.DB.WithContext(ctx).Create(result).Error; err != nil {
		return err
	}

	trim := `DELETE FROM assessment_results
	         WHERE user_id = ?
	           AND id NOT IN (
	               SELECT id FROM assessment_results
	               WHERE user_id = ?
	               ORDER BY created_at DESC, id DESC
	               LIMIT ?
	           );`
	return database.DB.WithContext(ctx).Exec(trim, result.UserID, result.UserID, HistoryLimit).Error
}
