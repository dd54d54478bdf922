package repository

import (
	"github.com/BuyMeAnIcecream/chapter-a-day/internal/models"
	"gorm.io/gorm"
)

type ChapterRepository struct {
	db *gorm.DB
}

func NewChapterRepository(db *gorm.DB) *ChapterRepository {
	return &ChapterRepository{db: db}
}

func (r *ChapterRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Chapter{}).Count(&count).Error
	return count, err
}

func (r *ChapterRepository) FindByID(id uint) (*models.Chapter, error) {
	var chapter models.Chapter
	err := r.db.First(&chapter, id).Error
	return &chapter, err
}

func (r *ChapterRepository) FindBySequence(sequence uint) (*models.Chapter, error) {
	var chapter models.Chapter
	err := r.db.Where("sequence = ?", sequence).First(&chapter).Error
	return &chapter, err
}
