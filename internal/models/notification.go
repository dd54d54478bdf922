package models

import (
	"time"
)

// Notification is created when someone replies to a comment written by a
// different user. CommentID points at the reply and cascades with it;
// ParentCommentID is a plain id (no constraint) so the notification can
// still render a "[Comment deleted]" fallback if the parent disappears.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID uint `gorm:"not null;index" json:"userId"`

	CommentID uint    `gorm:"not null;index" json:"commentId"`
	Comment   Comment `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"-"`

	ParentCommentID uint `gorm:"not null" json:"parentCommentId"`

	Read bool `gorm:"not null;default:false" json:"read"`
}
