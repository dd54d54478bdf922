package models

import (
	"time"
)

// Chapter is one entry in the fixed reading plan. Sequence is the 1-based
// global position; content holds newline-separated "verse-number verse-text"
// lines once real text has been imported.
type Chapter struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Sequence      uint   `gorm:"uniqueIndex;not null" json:"sequence"`
	Book          string `gorm:"type:varchar(40);not null" json:"book"`
	ChapterNumber int    `gorm:"not null" json:"chapterNumber"`
	Content       string `gorm:"type:text;not null" json:"content"`
}

type ChapterResponse struct {
	ID            uint   `json:"id"`
	Book          string `json:"book"`
	ChapterNumber int    `json:"chapterNumber"`
	Content       string `json:"content"`
}

func (c *Chapter) ToResponse() ChapterResponse {
	return ChapterResponse{
		ID:            c.ID,
		Book:          c.Book,
		ChapterNumber: c.ChapterNumber,
		Content:       c.Content,
	}
}
