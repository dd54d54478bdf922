package service

import (
	"errors"
	"time"

	"github.com/BuyMeAnIcecream/chapter-a-day/internal/cache"
	"github.com/BuyMeAnIcecream/chapter-a-day/internal/models"
	"github.com/BuyMeAnIcecream/chapter-a-day/internal/repository"
	"github.com/BuyMeAnIcecream/chapter-a-day/internal/verse"
	"gorm.io/gorm"
)

// DeliveryStartDate is the calendar day the reading plan began. Day 1 of
// the plan is this date in the reference timezone.
const DeliveryStartDate = "2026-01-01"

// All calendar-day boundaries are evaluated in Pacific time so every user
// sees the same chapter on the same day regardless of their own timezone.
const referenceTimezone = "America/Los_Angeles"

var referenceLocation = mustLoadLocation(referenceTimezone)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic("failed to load reference timezone: " + err.Error())
	}
	return loc
}

type ChapterService struct {
	chapterRepo  repository.ChapterRepositoryInterface
	progressRepo repository.ProgressRepositoryInterface
	chapterCache *cache.ChapterCache
}

func NewChapterService(
	chapterRepo repository.ChapterRepositoryInterface,
	progressRepo repository.ProgressRepositoryInterface,
	chapterCache *cache.ChapterCache,
) *ChapterService {
	return &ChapterService{
		chapterRepo:  chapterRepo,
		progressRepo: progressRepo,
		chapterCache: chapterCache,
	}
}

type ProgressSummary struct {
	CurrentChapterIndex int   `json:"currentChapterIndex"`
	TotalChapters       int64 `json:"totalChapters"`
}

type TodayResponse struct {
	Date     string                 `json:"date"`
	Progress ProgressSummary        `json:"progress"`
	Chapter  models.ChapterResponse `json:"chapter"`
}

// DateKey returns the YYYY-MM-DD calendar day of t in the reference
// timezone.
func DateKey(t time.Time) string {
	return t.In(referenceLocation).Format("2006-01-02")
}

// dayStamp reduces a date key to a timezone-free instant for whole-day
// arithmetic.
func dayStamp(key string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", key, time.UTC)
}

// DaysSinceStart returns the number of whole calendar days between the
// delivery start date and t, both evaluated in the reference timezone.
// Never negative: dates before the start count as day zero.
func DaysSinceStart(t time.Time) int {
	current, err := dayStamp(DateKey(t))
	if err != nil {
		return 0
	}
	start, _ := dayStamp(DeliveryStartDate)

	days := int(current.Sub(start).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// TodayIndex maps an instant to the 1-based chapter sequence everyone is
// shown that day. The schedule saturates at the last chapter; there is no
// wraparound.
func TodayIndex(t time.Time, totalChapters int64) int {
	index := DaysSinceStart(t) + 1
	if int64(index) > totalChapters {
		index = int(totalChapters)
	}
	return index
}

// DeliveredAtFor returns the canonical instant stored for a delivery on the
// given date key: noon UTC of that day, which is unambiguous and inside the
// Pacific calendar day year-round.
func DeliveredAtFor(dateKey string) time.Time {
	day, err := dayStamp(dateKey)
	if err != nil {
		return time.Time{}
	}
	return day.Add(12 * time.Hour)
}

// Today resolves the chapter for the current calendar day and, for
// authenticated callers, records the delivery on their progress row at most
// once per day.
func (s *ChapterService) Today(userID *uint, now time.Time) (*TodayResponse, error) {
	todayKey := DateKey(now)

	total, err := s.chapterRepo.Count()
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, ErrNotSeeded
	}

	todayIndex := TodayIndex(now, total)

	if userID != nil {
		if err := s.recordDelivery(*userID, todayKey, todayIndex); err != nil {
			return nil, err
		}
	}

	chapter, err := s.chapterBySequence(uint(todayIndex))
	if err != nil {
		return nil, ErrChapterMissing
	}

	return &TodayResponse{
		Date: todayKey,
		Progress: ProgressSummary{
			CurrentChapterIndex: todayIndex,
			TotalChapters:       total,
		},
		Chapter: chapter.ToResponse(),
	}, nil
}

// recordDelivery ensures a progress row exists and advances it if today's
// chapter has not been delivered yet. The conditional update in the
// repository keeps concurrent first-of-the-day requests idempotent.
func (s *ChapterService) recordDelivery(userID uint, todayKey string, todayIndex int) error {
	if _, err := s.progressRepo.FindByUserID(userID); err != nil {
		// Accounts normally get their row at registration; recreate it
		// here for accounts that predate that behavior.
		if err := s.progressRepo.Create(&models.Progress{
			UserID:              userID,
			CurrentChapterIndex: 1,
		}); err != nil {
			return err
		}
	}

	_, err := s.progressRepo.AdvanceIfStale(userID, todayIndex, DeliveredAtFor(todayKey))
	return err
}

func (s *ChapterService) chapterBySequence(sequence uint) (*models.Chapter, error) {
	if chapter, ok := s.chapterCache.GetChapter(sequence); ok {
		return chapter, nil
	}

	chapter, err := s.chapterRepo.FindBySequence(sequence)
	if err != nil {
		return nil, err
	}

	_ = s.chapterCache.SetChapter(sequence, chapter)
	return chapter, nil
}

// GetProgress returns the caller's stored progress row (nil if the account
// has none yet) alongside the plan length.
func (s *ChapterService) GetProgress(userID uint) (*models.Progress, int64, error) {
	total, err := s.chapterRepo.Count()
	if err != nil {
		return nil, 0, err
	}

	progress, err := s.progressRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, total, nil
		}
		return nil, 0, err
	}
	return progress, total, nil
}

// GetVerse resolves verse verseNumber of the given chapter to its literal
// text line.
func (s *ChapterService) GetVerse(chapterID uint, verseNumber int) (string, error) {
	chapter, err := s.chapterRepo.FindByID(chapterID)
	if err != nil {
		return "", ErrChapterNotFound
	}

	text := verse.GetVerseText(chapter.Content, verseNumber)
	if text == "" {
		return "", ErrVerseNotFound
	}
	return text, nil
}
