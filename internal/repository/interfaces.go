package repository

import (
	"time"

	"github.com/BuyMeAnIcecream/chapter-a-day/internal/models"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	FindByUsername(username string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
}

// ChapterRepositoryInterface defines the contract for chapter repository operations
type ChapterRepositoryInterface interface {
	Count() (int64, error)
	FindByID(id uint) (*models.Chapter, error)
	FindBySequence(sequence uint) (*models.Chapter, error)
}

// ProgressRepositoryInterface defines the contract for progress repository operations
type ProgressRepositoryInterface interface {
	Create(progress *models.Progress) error
	FindByUserID(userID uint) (*models.Progress, error)
	// AdvanceIfStale moves the stored pointer to index and records
	// deliveredAt, but only when the stored delivery instant predates
	// deliveredAt. Returns whether a row was written.
	AdvanceIfStale(userID uint, index int, deliveredAt time.Time) (bool, error)
}

// CommentRepositoryInterface defines the contract for comment repository operations
type CommentRepositoryInterface interface {
	Create(comment *models.Comment) error
	FindByID(id uint) (*models.Comment, error)
	FindByChapter(chapterID uint) ([]models.Comment, error)
	Delete(id uint) error
}

// NotificationRepositoryInterface defines the contract for notification repository operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	FindByID(id uint) (*models.Notification, error)
	ListByUser(userID uint, limit int) ([]models.Notification, error)
	FindCommentContents(ids []uint) (map[uint]string, error)
	MarkRead(id uint) error
	MarkAllRead(userID uint) (int64, error)
}

// ConfigRepositoryInterface defines the contract for app config operations
type ConfigRepositoryInterface interface {
	GetValue(key string) (string, error)
	SetValue(key, value string) error
}
