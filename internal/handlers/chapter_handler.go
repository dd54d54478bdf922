package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/BuyMeAnIcecream/chapter-a-day/internal/httpx"
	"github.com/BuyMeAnIcecream/chapter-a-day/internal/service"
	"github.com/gofiber/fiber/v2"
)

type ChapterHandler struct {
	chapterService *service.ChapterService
}

func NewChapterHandler(chapterService *service.ChapterService) *ChapterHandler {
	return &ChapterHandler{chapterService: chapterService}
}

// Today serves the chapter scheduled for the current calendar day. Works for
// anonymous callers; authenticated callers also get their delivery recorded.
func (h *ChapterHandler) Today(c *fiber.Ctx) error {
	var userID *uint
	if id, err := httpx.LocalUint(c, "userID"); err == nil {
		userID = &id
	}

	result, err := h.chapterService.Today(userID, time.Now())
	if err != nil {
		if errors.Is(err, service.ErrNotSeeded) {
			log.Printf("Today request failed: no chapters seeded")
			return httpx.Internal(c, "not_seeded")
		}
		if errors.Is(err, service.ErrChapterMissing) {
			log.Printf("Today request failed: scheduled chapter missing")
			return httpx.Internal(c, "chapter_missing")
		}
		return httpx.Internal(c, "fetch_today_failed")
	}

	return c.JSON(result)
}

func (h *ChapterHandler) GetProgress(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	progress, total, err := h.chapterService.GetProgress(userID)
	if err != nil {
		return httpx.Internal(c, "fetch_progress_failed")
	}

	// progress is null for accounts without a row yet
	return c.JSON(fiber.Map{
		"progress":      progress,
		"totalChapters": total,
	})
}

func (h *ChapterHandler) GetVerse(c *fiber.Ctx) error {
	chapterID, err := c.ParamsInt("chapterId")
	if err != nil || chapterID < 1 {
		return httpx.BadRequest(c, "invalid_chapter_id", "Invalid chapter id")
	}

	verseNumber, err := c.ParamsInt("verseNumber")
	if err != nil || verseNumber < 1 {
		return httpx.BadRequest(c, "invalid_verse_number", "Invalid verse number")
	}

	text, err := h.chapterService.GetVerse(uint(chapterID), verseNumber)
	if err != nil {
		if errors.Is(err, service.ErrChapterNotFound) {
			return httpx.NotFound(c, "chapter_not_found", "Chapter not found")
		}
		if errors.Is(err, service.ErrVerseNotFound) {
			return httpx.NotFound(c, "verse_not_found", "Verse not found")
		}
		return httpx.Internal(c, "fetch_verse_failed")
	}

	return c.JSON(fiber.Map{
		"chapterId": chapterID,
		"verse":     verseNumber,
		"text":      text,
	})
}
