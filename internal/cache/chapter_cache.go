package cache

import (
	"fmt"
	"time"

	"github.com/BuyMeAnIcecream/chapter-a-day/internal/models"
	"github.com/vmihailenco/msgpack/v5"
)

// TTL constants for different cache types
const (
	ChapterTTL  = 5 * time.Minute
	CommentsTTL = 2 * time.Minute
)

// ChapterCache handles chapter and comment caching. A nil receiver (no
// Redis configured) degrades to cache misses, so callers never branch on
// whether caching is enabled.
type ChapterCache struct {
	redis *RedisCache
}

// NewChapterCache creates a new chapter cache
func NewChapterCache(redis *RedisCache) *ChapterCache {
	return &ChapterCache{redis: redis}
}

func chapterKey(sequence uint) string {
	return fmt.Sprintf("chapter:seq:%d", sequence)
}

func commentsKey(chapterID uint) string {
	return fmt.Sprintf("comments:chapter:%d", chapterID)
}

// GetChapter retrieves a cached chapter by plan sequence
func (cc *ChapterCache) GetChapter(sequence uint) (*models.Chapter, bool) {
	if cc == nil || cc.redis == nil {
		return nil, false
	}
	data, err := cc.redis.Get(chapterKey(sequence))
	if err != nil || data == nil {
		return nil, false
	}

	var chapter models.Chapter
	if err := msgpack.Unmarshal(data, &chapter); err != nil {
		return nil, false
	}

	return &chapter, true
}

// SetChapter caches a chapter under its plan sequence
func (cc *ChapterCache) SetChapter(sequence uint, chapter *models.Chapter) error {
	if cc == nil || cc.redis == nil {
		return nil
	}
	data, err := msgpack.Marshal(chapter)
	if err != nil {
		return err
	}

	return cc.redis.Set(chapterKey(sequence), data, ChapterTTL)
}

// GetCommentRows retrieves the cached flat comment rows for a chapter
func (cc *ChapterCache) GetCommentRows(chapterID uint) ([]models.Comment, bool) {
	if cc == nil || cc.redis == nil {
		return nil, false
	}
	data, err := cc.redis.Get(commentsKey(chapterID))
	if err != nil || data == nil {
		return nil, false
	}

	var comments []models.Comment
	if err := msgpack.Unmarshal(data, &comments); err != nil {
		return nil, false
	}

	return comments, true
}

// SetCommentRows caches the flat comment rows for a chapter
func (cc *ChapterCache) SetCommentRows(chapterID uint, comments []models.Comment) error {
	if cc == nil || cc.redis == nil {
		return nil
	}
	data, err := msgpack.Marshal(comments)
	if err != nil {
		return err
	}

	return cc.redis.Set(commentsKey(chapterID), data, CommentsTTL)
}

// InvalidateCommentTree removes a chapter's cached comments
func (cc *ChapterCache) InvalidateCommentTree(chapterID uint) error {
	if cc == nil || cc.redis == nil {
		return nil
	}
	return cc.redis.Delete(commentsKey(chapterID))
}
