package models

import (
	"time"
)

// Comment is a flat adjacency-list row: ParentID is nil for root comments
// and references another comment on the same chapter for replies. The reply
// tree is rebuilt on read; rows never store tree position. Deleting a
// comment removes its whole subtree through the ON DELETE CASCADE
// constraint, so the cascade is atomic at the database.
type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Content string `gorm:"type:text;not null" json:"content"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `gorm:"foreignKey:UserID" json:"user"`

	ChapterID uint    `gorm:"not null;index" json:"chapterId"`
	Chapter   Chapter `gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE" json:"-"`

	ParentID *uint     `gorm:"index" json:"parentId"`
	Replies  []Comment `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`
}

// CommentAuthor is the author identity embedded in comment payloads.
type CommentAuthor struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func (c *Comment) Author() CommentAuthor {
	return CommentAuthor{
		ID:       c.User.ID,
		Username: c.User.Username,
	}
}
