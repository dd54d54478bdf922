package repository

import (
	"github.com/BuyMeAnIcecream/chapter-a-day/internal/models"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepository) FindByID(id uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, id).Error
	return &notification, err
}

func (r *NotificationRepository) ListByUser(userID uint, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Preload("Comment").
		Preload("Comment.User").
		Preload("Comment.Chapter").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

// FindCommentContents fetches content for the given comment ids. Ids with no
// surviving row are simply absent from the map; callers render a deleted
// placeholder for those.
func (r *NotificationRepository) FindCommentContents(ids []uint) (map[uint]string, error) {
	contents := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return contents, nil
	}

	var rows []models.Comment
	err := r.db.Select("id", "content").Where("id IN ?", ids).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		contents[row.ID] = row.Content
	}
	return contents, nil
}

func (r *NotificationRepository) MarkRead(id uint) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", id).
		Update("read", true).Error
}

func (r *NotificationRepository) MarkAllRead(userID uint) (int64, error) {
	res := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	return res.RowsAffected, res.Error
}
