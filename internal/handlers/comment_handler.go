package handlers

import (
	"errors"

	"github.com/BuyMeAnIcecream/chapter-a-day/internal/httpx"
	"github.com/BuyMeAnIcecream/chapter-a-day/internal/service"
	"github.com/gofiber/fiber/v2"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) CreateComment(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	chapterID, err := c.ParamsInt("chapterId")
	if err != nil || chapterID < 1 {
		return httpx.BadRequest(c, "invalid_chapter_id", "Invalid chapter id")
	}

	var input service.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}

	comment, err := h.commentService.CreateComment(uint(chapterID), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyContent):
			return httpx.BadRequest(c, "missing_content", "Content is required")
		case errors.Is(err, service.ErrContentTooLong):
			return httpx.BadRequest(c, "content_too_long", "Content exceeds maximum length")
		case errors.Is(err, service.ErrChapterNotFound):
			return httpx.NotFound(c, "chapter_not_found", "Chapter not found")
		case errors.Is(err, service.ErrParentNotFound):
			return httpx.NotFound(c, "parent_not_found", "Parent comment not found")
		case errors.Is(err, service.ErrParentChapterMismatch):
			return httpx.BadRequest(c, "parent_chapter_mismatch", "Parent comment belongs to a different chapter")
		}
		return httpx.Internal(c, "create_comment_failed")
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *CommentHandler) GetComments(c *fiber.Ctx) error {
	chapterID, err := c.ParamsInt("chapterId")
	if err != nil || chapterID < 1 {
		return httpx.BadRequest(c, "invalid_chapter_id", "Invalid chapter id")
	}

	comments, err := h.commentService.GetComments(uint(chapterID))
	if err != nil {
		if errors.Is(err, service.ErrChapterNotFound) {
			return httpx.NotFound(c, "chapter_not_found", "Chapter not found")
		}
		return httpx.Internal(c, "fetch_comments_failed")
	}

	return c.JSON(fiber.Map{
		"comments": comments,
	})
}

func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	commentID, err := c.ParamsInt("commentId")
	if err != nil || commentID < 1 {
		return httpx.BadRequest(c, "invalid_comment_id", "Invalid comment id")
	}

	if err := h.commentService.DeleteComment(uint(commentID), userID); err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			return httpx.NotFound(c, "comment_not_found", "Comment not found")
		}
		if errors.Is(err, service.ErrNotCommentAuthor) {
			return httpx.Forbidden(c, "not_comment_author", "You can only delete your own comments")
		}
		return httpx.Internal(c, "delete_comment_failed")
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}
