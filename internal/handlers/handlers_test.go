package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/BuyMeAnIcecream/chapter-a-day/internal/models"
	"github.com/BuyMeAnIcecream/chapter-a-day/internal/service"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type stubChapterRepo struct {
	chapters map[uint]*models.Chapter
}

func (s *stubChapterRepo) Count() (int64, error) {
	return int64(len(s.chapters)), nil
}

func (s *stubChapterRepo) FindByID(id uint) (*models.Chapter, error) {
	if chapter, ok := s.chapters[id]; ok {
		return chapter, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubChapterRepo) FindBySequence(sequence uint) (*models.Chapter, error) {
	for _, chapter := range s.chapters {
		if chapter.Sequence == sequence {
			return chapter, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type stubProgressRepo struct {
	rows map[uint]*models.Progress
}

func (s *stubProgressRepo) Create(progress *models.Progress) error {
	s.rows[progress.UserID] = progress
	return nil
}

func (s *stubProgressRepo) FindByUserID(userID uint) (*models.Progress, error) {
	if progress, ok := s.rows[userID]; ok {
		return progress, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubProgressRepo) AdvanceIfStale(userID uint, index int, deliveredAt time.Time) (bool, error) {
	return false, nil
}

type stubCommentRepo struct {
	comments map[uint]*models.Comment
}

func (s *stubCommentRepo) Create(comment *models.Comment) error {
	comment.ID = uint(len(s.comments) + 1)
	s.comments[comment.ID] = comment
	return nil
}

func (s *stubCommentRepo) FindByID(id uint) (*models.Comment, error) {
	if comment, ok := s.comments[id]; ok {
		return comment, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCommentRepo) FindByChapter(chapterID uint) ([]models.Comment, error) {
	return nil, nil
}

func (s *stubCommentRepo) Delete(id uint) error {
	delete(s.comments, id)
	return nil
}

type stubNotificationRepo struct{}

func (stubNotificationRepo) Create(*models.Notification) error { return nil }
func (stubNotificationRepo) FindByID(uint) (*models.Notification, error) {
	return nil, gorm.ErrRecordNotFound
}
func (stubNotificationRepo) ListByUser(uint, int) ([]models.Notification, error) { return nil, nil }
func (stubNotificationRepo) FindCommentContents([]uint) (map[uint]string, error) {
	return map[uint]string{}, nil
}
func (stubNotificationRepo) MarkRead(uint) error           { return nil }
func (stubNotificationRepo) MarkAllRead(uint) (int64, error) { return 0, nil }

func asUser(id uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", id)
		return c.Next()
	}
}

func TestCreateCommentMissingParentIs404(t *testing.T) {
	chapterRepo := &stubChapterRepo{chapters: map[uint]*models.Chapter{
		1: {ID: 1, Sequence: 1, Book: "Matthew", ChapterNumber: 1, Content: "Matthew 1\n1 First."},
	}}
	commentRepo := &stubCommentRepo{comments: map[uint]*models.Comment{}}
	commentService := service.NewCommentService(commentRepo, chapterRepo, stubNotificationRepo{}, nil)
	handler := NewCommentHandler(commentService)

	app := fiber.New()
	app.Post("/api/chapters/:chapterId/comments", asUser(1), handler.CreateComment)

	req := httptest.NewRequest("POST", "/api/chapters/1/comments",
		strings.NewReader(`{"content":"hello","parentId":999}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body["code"] != "parent_not_found" {
		t.Errorf("code = %v, want parent_not_found", body["code"])
	}
	if len(commentRepo.comments) != 0 {
		t.Errorf("rejected comment was persisted")
	}
}

func TestGetProgressNestsProgressRow(t *testing.T) {
	last := time.Date(2026, time.January, 4, 12, 0, 0, 0, time.UTC)
	chapterRepo := &stubChapterRepo{chapters: map[uint]*models.Chapter{
		1: {ID: 1, Sequence: 1}, 2: {ID: 2, Sequence: 2}, 3: {ID: 3, Sequence: 3},
	}}
	progressRepo := &stubProgressRepo{rows: map[uint]*models.Progress{
		7: {ID: 1, UserID: 7, CurrentChapterIndex: 4, LastDeliveredDate: &last},
	}}
	chapterService := service.NewChapterService(chapterRepo, progressRepo, nil)
	handler := NewChapterHandler(chapterService)

	app := fiber.New()
	app.Get("/api/progress", asUser(7), handler.GetProgress)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/progress", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	progress, ok := body["progress"].(map[string]interface{})
	if !ok {
		t.Fatalf("progress is not a nested object: %v", body["progress"])
	}
	if progress["currentChapterIndex"] != float64(4) {
		t.Errorf("progress.currentChapterIndex = %v, want 4", progress["currentChapterIndex"])
	}
	if progress["lastDeliveredDate"] == nil {
		t.Errorf("progress.lastDeliveredDate missing")
	}
	if body["totalChapters"] != float64(3) {
		t.Errorf("totalChapters = %v, want 3", body["totalChapters"])
	}
}

func TestGetProgressNullWithoutRow(t *testing.T) {
	chapterRepo := &stubChapterRepo{chapters: map[uint]*models.Chapter{1: {ID: 1, Sequence: 1}}}
	progressRepo := &stubProgressRepo{rows: map[uint]*models.Progress{}}
	chapterService := service.NewChapterService(chapterRepo, progressRepo, nil)
	handler := NewChapterHandler(chapterService)

	app := fiber.New()
	app.Get("/api/progress", asUser(99), handler.GetProgress)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/progress", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body["progress"] != nil {
		t.Errorf("progress = %v, want null", body["progress"])
	}
	if body["totalChapters"] != float64(1) {
		t.Errorf("totalChapters = %v, want 1", body["totalChapters"])
	}
}
