package seed

import (
	"fmt"
	"log"

	"github.com/BuyMeAnIcecream/chapter-a-day/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// appVersion is written to app_config on every seed run.
const appVersion = "1.2.0"

type bookEntry struct {
	Name     string
	Chapters int
}

// newTestamentBooks lists the reading plan in canonical order, 260 chapters
// in total.
var newTestamentBooks = []bookEntry{
	{"Matthew", 28},
	{"Mark", 16},
	{"Luke", 24},
	{"John", 21},
	{"Acts", 28},
	{"Romans", 16},
	{"1 Corinthians", 16},
	{"2 Corinthians", 13},
	{"Galatians", 6},
	{"Ephesians", 6},
	{"Philippians", 4},
	{"Colossians", 4},
	{"1 Thessalonians", 5},
	{"2 Thessalonians", 3},
	{"1 Timothy", 6},
	{"2 Timothy", 4},
	{"Titus", 3},
	{"Philemon", 1},
	{"Hebrews", 13},
	{"James", 5},
	{"1 Peter", 5},
	{"2 Peter", 3},
	{"1 John", 5},
	{"2 John", 1},
	{"3 John", 1},
	{"Jude", 1},
	{"Revelation", 22},
}

func placeholderContent(book string, chapterNumber int) string {
	return fmt.Sprintf("%s %d\n\nThis is placeholder content for %s chapter %d.",
		book, chapterNumber, book, chapterNumber)
}

// Run populates the version row and the chapter table. Chapters are only
// inserted when the table is empty, so re-running against a populated
// database is safe.
func Run(db *gorm.DB) error {
	version := models.AppConfig{Key: "version", Value: appVersion}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&version).Error; err != nil {
		return fmt.Errorf("seed version: %w", err)
	}

	var count int64
	if err := db.Model(&models.Chapter{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count chapters: %w", err)
	}
	if count > 0 {
		log.Printf("Chapters already seeded (%d rows), skipping", count)
		return nil
	}

	chapters := make([]models.Chapter, 0, 260)
	sequence := uint(1)
	for _, book := range newTestamentBooks {
		for n := 1; n <= book.Chapters; n++ {
			chapters = append(chapters, models.Chapter{
				Sequence:      sequence,
				Book:          book.Name,
				ChapterNumber: n,
				Content:       placeholderContent(book.Name, n),
			})
			sequence++
		}
	}

	if err := db.CreateInBatches(chapters, 100).Error; err != nil {
		return fmt.Errorf("seed chapters: %w", err)
	}

	log.Printf("Seeded %d chapters and version %s", len(chapters), appVersion)
	return nil
}
