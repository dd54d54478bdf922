package models

import (
	"time"
)

// Progress tracks a user's pointer into the reading plan.
// current_chapter_index is monotonically non-decreasing and advanced at most
// once per calendar day (in the reference timezone) by a conditional update.
type Progress struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID              uint       `gorm:"uniqueIndex;not null" json:"userId"`
	CurrentChapterIndex int        `gorm:"not null;default:1" json:"currentChapterIndex"`
	LastDeliveredDate   *time.Time `json:"lastDeliveredDate"`
}

// TableName specifies the table name for GORM
func (Progress) TableName() string {
	return "progress"
}
