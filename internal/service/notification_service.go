package service

import (
	"time"

	"github.com/BuyMeAnIcecream/chapter-a-day/internal/repository"
)

// notificationPageSize caps how many notifications a single list call
// returns (newest first).
const notificationPageSize = 50

// deletedCommentFallback is rendered when a notification's parent comment
// no longer exists.
const deletedCommentFallback = "[Comment deleted]"

type NotificationService struct {
	notificationRepo repository.NotificationRepositoryInterface
}

func NewNotificationService(notificationRepo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

type NotificationComment struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
	User    struct {
		Username string `json:"username"`
	} `json:"user"`
	Chapter struct {
		Book          string `json:"book"`
		ChapterNumber int    `json:"chapterNumber"`
	} `json:"chapter"`
}

type ParentCommentRef struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
}

type NotificationResponse struct {
	ID              uint                `json:"id"`
	CommentID       uint                `json:"commentId"`
	ParentCommentID uint                `json:"parentCommentId"`
	Read            bool                `json:"read"`
	CreatedAt       time.Time           `json:"createdAt"`
	Comment         NotificationComment `json:"comment"`
	ParentComment   ParentCommentRef    `json:"parentComment"`
}

type NotificationList struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}

// List returns the newest notifications for the user, each embedding the
// reply that triggered it and the content of the comment that was replied
// to. The unread count covers the returned page.
func (s *NotificationService) List(userID uint) (*NotificationList, error) {
	notifications, err := s.notificationRepo.ListByUser(userID, notificationPageSize)
	if err != nil {
		return nil, err
	}

	parentIDs := make([]uint, 0, len(notifications))
	seen := make(map[uint]bool, len(notifications))
	for _, n := range notifications {
		if !seen[n.ParentCommentID] {
			seen[n.ParentCommentID] = true
			parentIDs = append(parentIDs, n.ParentCommentID)
		}
	}

	parentContents, err := s.notificationRepo.FindCommentContents(parentIDs)
	if err != nil {
		return nil, err
	}

	list := &NotificationList{
		Notifications: make([]NotificationResponse, 0, len(notifications)),
	}

	for _, n := range notifications {
		if !n.Read {
			list.UnreadCount++
		}

		resp := NotificationResponse{
			ID:              n.ID,
			CommentID:       n.CommentID,
			ParentCommentID: n.ParentCommentID,
			Read:            n.Read,
			CreatedAt:       n.CreatedAt,
			ParentComment: ParentCommentRef{
				ID:      n.ParentCommentID,
				Content: deletedCommentFallback,
			},
		}

		resp.Comment.ID = n.Comment.ID
		resp.Comment.Content = n.Comment.Content
		resp.Comment.User.Username = n.Comment.User.Username
		resp.Comment.Chapter.Book = n.Comment.Chapter.Book
		resp.Comment.Chapter.ChapterNumber = n.Comment.Chapter.ChapterNumber

		if content, ok := parentContents[n.ParentCommentID]; ok {
			resp.ParentComment.Content = content
		}

		list.Notifications = append(list.Notifications, resp)
	}

	return list, nil
}

// MarkRead flags one of the user's own notifications as read. Already-read
// notifications are a no-op.
func (s *NotificationService) MarkRead(notificationID, userID uint) error {
	notification, err := s.notificationRepo.FindByID(notificationID)
	if err != nil {
		return ErrNotificationNotFound
	}

	if notification.UserID != userID {
		return ErrNotNotificationOwner
	}

	return s.notificationRepo.MarkRead(notificationID)
}

// MarkAllRead flags every unread notification of the user as read.
func (s *NotificationService) MarkAllRead(userID uint) error {
	_, err := s.notificationRepo.MarkAllRead(userID)
	return err
}
