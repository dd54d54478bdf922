package service

import (
	"log"
	"strings"
	"time"

	"github.com/BuyMeAnIcecream/chapter-a-day/internal/cache"
	"github.com/BuyMeAnIcecream/chapter-a-day/internal/models"
	"github.com/BuyMeAnIcecream/chapter-a-day/internal/repository"
	"github.com/BuyMeAnIcecream/chapter-a-day/internal/validation"
	"github.com/BuyMeAnIcecream/chapter-a-day/internal/verse"
)

type CommentService struct {
	commentRepo      repository.CommentRepositoryInterface
	chapterRepo      repository.ChapterRepositoryInterface
	notificationRepo repository.NotificationRepositoryInterface
	chapterCache     *cache.ChapterCache
}

func NewCommentService(
	commentRepo repository.CommentRepositoryInterface,
	chapterRepo repository.ChapterRepositoryInterface,
	notificationRepo repository.NotificationRepositoryInterface,
	chapterCache *cache.ChapterCache,
) *CommentService {
	return &CommentService{
		commentRepo:      commentRepo,
		chapterRepo:      chapterRepo,
		notificationRepo: notificationRepo,
		chapterCache:     chapterCache,
	}
}

type CreateCommentInput struct {
	Content  string `json:"content"`
	ParentID *uint  `json:"parentId"`
}

// CommentNode is one comment in the rendered reply tree. Replies nest
// recursively: a reply to a reply appears under that reply's node, bounded
// only by the data.
type CommentNode struct {
	ID        uint                 `json:"id"`
	Content   string               `json:"content"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
	User      models.CommentAuthor `json:"user"`
	ParentID  *uint                `json:"parentId"`
	Segments  []verse.Segment      `json:"segments"`
	Replies   []*CommentNode       `json:"replies"`
}

func newCommentNode(comment *models.Comment) *CommentNode {
	return &CommentNode{
		ID:        comment.ID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
		User:      comment.Author(),
		ParentID:  comment.ParentID,
		Segments:  verse.SplitContent(comment.Content),
		Replies:   []*CommentNode{},
	}
}

// CreateComment validates and persists a comment, fanning out a reply
// notification to the parent's author when someone else replies to them.
func (s *CommentService) CreateComment(chapterID, authorID uint, input CreateCommentInput) (*CommentNode, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if len(content) > validation.MaxCommentLength() {
		return nil, ErrContentTooLong
	}

	if _, err := s.chapterRepo.FindByID(chapterID); err != nil {
		return nil, ErrChapterNotFound
	}

	var parent *models.Comment
	if input.ParentID != nil {
		found, err := s.commentRepo.FindByID(*input.ParentID)
		if err != nil {
			return nil, ErrParentNotFound
		}
		if found.ChapterID != chapterID {
			return nil, ErrParentChapterMismatch
		}
		parent = found
	}

	comment := &models.Comment{
		Content:   content,
		UserID:    authorID,
		ChapterID: chapterID,
		ParentID:  input.ParentID,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	// Reload to embed the author identity
	created, err := s.commentRepo.FindByID(comment.ID)
	if err != nil {
		return nil, err
	}

	// Notify the parent's author, unless they replied to themselves. The
	// comment is already committed at this point: a failed insert here is
	// an operator problem, not a client error.
	if parent != nil && parent.UserID != authorID {
		notification := &models.Notification{
			UserID:          parent.UserID,
			CommentID:       created.ID,
			ParentCommentID: parent.ID,
		}
		if err := s.notificationRepo.Create(notification); err != nil {
			log.Printf("Failed to create reply notification for comment %d: %v", created.ID, err)
		}
	}

	s.chapterCache.InvalidateCommentTree(chapterID)

	return newCommentNode(created), nil
}

// GetComments returns the chapter's comments as an ordered forest of root
// nodes with nested replies.
func (s *CommentService) GetComments(chapterID uint) ([]*CommentNode, error) {
	if _, err := s.chapterRepo.FindByID(chapterID); err != nil {
		return nil, ErrChapterNotFound
	}

	rows, ok := s.chapterCache.GetCommentRows(chapterID)
	if !ok {
		var err error
		rows, err = s.commentRepo.FindByChapter(chapterID)
		if err != nil {
			return nil, err
		}
		_ = s.chapterCache.SetCommentRows(chapterID, rows)
	}

	return BuildTree(rows), nil
}

// BuildTree reconstructs the reply forest from flat rows ordered by
// creation time. First pass: one node per row, roots collected in order.
// Second pass: each child appends to its parent's replies, so reply chains
// of any depth nest naturally. A child whose parent is missing from the set
// is dropped rather than surfaced; the foreign keys make that a
// should-not-happen.
func BuildTree(rows []models.Comment) []*CommentNode {
	nodes := make(map[uint]*CommentNode, len(rows))
	roots := []*CommentNode{}

	for i := range rows {
		node := newCommentNode(&rows[i])
		nodes[node.ID] = node
		if node.ParentID == nil {
			roots = append(roots, node)
		}
	}

	for i := range rows {
		parentID := rows[i].ParentID
		if parentID == nil {
			continue
		}
		if parent, ok := nodes[*parentID]; ok {
			parent.Replies = append(parent.Replies, nodes[rows[i].ID])
		}
	}

	return roots
}

// DeleteComment removes the requester's own comment. Descendant replies and
// their notifications disappear with it via the database cascade, so
// concurrent readers never observe a half-deleted subtree.
func (s *CommentService) DeleteComment(commentID, requesterID uint) error {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		return ErrCommentNotFound
	}

	if comment.UserID != requesterID {
		return ErrNotCommentAuthor
	}

	if err := s.commentRepo.Delete(commentID); err != nil {
		return err
	}

	s.chapterCache.InvalidateCommentTree(comment.ChapterID)
	return nil
}
