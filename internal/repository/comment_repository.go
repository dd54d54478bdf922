package repository

import (
	"github.com/BuyMeAnIcecream/chapter-a-day/internal/models"
	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) FindByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("User").First(&comment, id).Error
	return &comment, err
}

// FindByChapter returns the chapter's comments oldest-first; id breaks
// creation-time ties so the ordering contract the tree builder relies on is
// stable.
func (r *CommentRepository) FindByChapter(chapterID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").
		Where("chapter_id = ?", chapterID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

// Delete removes the comment row; descendant replies and their
// notifications go with it through the ON DELETE CASCADE foreign keys.
func (r *CommentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}
