package repository

import (
	"time"

	"github.com/BuyMeAnIcecream/chapter-a-day/internal/models"
	"gorm.io/gorm"
)

type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) Create(progress *models.Progress) error {
	return r.db.Create(progress).Error
}

func (r *ProgressRepository) FindByUserID(userID uint) (*models.Progress, error) {
	var progress models.Progress
	err := r.db.Where("user_id = ?", userID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// AdvanceIfStale is the one write that can race: two first-of-the-day
// requests may both see a stale row. The date guard in the WHERE clause
// makes the second update a no-op, so the write happens at most once per
// delivery day regardless of interleaving.
func (r *ProgressRepository) AdvanceIfStale(userID uint, index int, deliveredAt time.Time) (bool, error) {
	res := r.db.Exec(`
		UPDATE progress
		SET current_chapter_index = ?, last_delivered_date = ?, updated_at = NOW()
		WHERE user_id = ? AND (last_delivered_date IS NULL OR last_delivered_date < ?)
	`, index, deliveredAt, userID, deliveredAt)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
