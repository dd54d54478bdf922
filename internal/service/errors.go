package service

import "errors"

// Domain errors returned by services. Handlers translate these into HTTP
// statuses; anything not listed here surfaces as a 500.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")

	ErrNotSeeded      = errors.New("chapter data not seeded")
	ErrChapterMissing = errors.New("no chapter at today's sequence")

	ErrChapterNotFound       = errors.New("chapter not found")
	ErrEmptyContent          = errors.New("comment content is required")
	ErrContentTooLong        = errors.New("comment content is too long")
	ErrParentNotFound        = errors.New("parent comment not found")
	ErrParentChapterMismatch = errors.New("parent comment must belong to the same chapter")
	ErrCommentNotFound       = errors.New("comment not found")
	ErrNotCommentAuthor      = errors.New("you can only delete your own comments")

	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotNotificationOwner = errors.New("not authorized")

	ErrVerseNotFound = errors.New("verse not found")
)
