package service

import (
	"sort"
	"time"

	"github.com/BuyMeAnIcecream/chapter-a-day/internal/models"
	"gorm.io/gorm"
)

// MockUserRepository is an in-memory implementation for testing
type MockUserRepository struct {
	users  map[uint]*models.User
	nextID uint
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:  make(map[uint]*models.User),
		nextID: 1,
	}
}

func (m *MockUserRepository) Create(user *models.User) error {
	for _, existing := range m.users {
		if existing.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == 0 {
		user.ID = m.nextID
		m.nextID++
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

// MockChapterRepository is an in-memory implementation for testing
type MockChapterRepository struct {
	chapters map[uint]*models.Chapter
}

func NewMockChapterRepository() *MockChapterRepository {
	return &MockChapterRepository{chapters: make(map[uint]*models.Chapter)}
}

func (m *MockChapterRepository) Add(chapter *models.Chapter) {
	m.chapters[chapter.ID] = chapter
}

func (m *MockChapterRepository) Count() (int64, error) {
	return int64(len(m.chapters)), nil
}

func (m *MockChapterRepository) FindByID(id uint) (*models.Chapter, error) {
	chapter, ok := m.chapters[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return chapter, nil
}

func (m *MockChapterRepository) FindBySequence(sequence uint) (*models.Chapter, error) {
	for _, chapter := range m.chapters {
		if chapter.Sequence == sequence {
			return chapter, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// MockProgressRepository is an in-memory implementation for testing. Its
// AdvanceIfStale mirrors the conditional update the real repository issues.
type MockProgressRepository struct {
	rows    map[uint]*models.Progress
	findErr error
}

func NewMockProgressRepository() *MockProgressRepository {
	return &MockProgressRepository{rows: make(map[uint]*models.Progress)}
}

func (m *MockProgressRepository) FailFinds(err error) {
	m.findErr = err
}

func (m *MockProgressRepository) Create(progress *models.Progress) error {
	if _, ok := m.rows[progress.UserID]; ok {
		return gorm.ErrDuplicatedKey
	}
	if progress.ID == 0 {
		progress.ID = uint(len(m.rows) + 1)
	}
	m.rows[progress.UserID] = progress
	return nil
}

func (m *MockProgressRepository) FindByUserID(userID uint) (*models.Progress, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	progress, ok := m.rows[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return progress, nil
}

func (m *MockProgressRepository) AdvanceIfStale(userID uint, index int, deliveredAt time.Time) (bool, error) {
	progress, ok := m.rows[userID]
	if !ok {
		return false, nil
	}
	if progress.LastDeliveredDate != nil && !progress.LastDeliveredDate.Before(deliveredAt) {
		return false, nil
	}
	progress.CurrentChapterIndex = index
	stamp := deliveredAt
	progress.LastDeliveredDate = &stamp
	progress.UpdatedAt = time.Now()
	return true, nil
}

// MockCommentRepository is an in-memory implementation for testing. Delete
// removes descendant replies the way the database cascade does.
type MockCommentRepository struct {
	comments map[uint]*models.Comment
	nextID   uint
	users    map[uint]*models.User
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		comments: make(map[uint]*models.Comment),
		nextID:   1,
		users:    make(map[uint]*models.User),
	}
}

// RegisterUser makes FindByID and FindByChapter embed the author the way
// the real repository preloads it.
func (m *MockCommentRepository) RegisterUser(user *models.User) {
	m.users[user.ID] = user
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	if comment.ID == 0 {
		comment.ID = m.nextID
		m.nextID++
	}
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	stored := *comment
	m.comments[comment.ID] = &stored
	return nil
}

func (m *MockCommentRepository) FindByID(id uint) (*models.Comment, error) {
	comment, ok := m.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	result := *comment
	if user, ok := m.users[comment.UserID]; ok {
		result.User = *user
	}
	return &result, nil
}

func (m *MockCommentRepository) FindByChapter(chapterID uint) ([]models.Comment, error) {
	var results []models.Comment
	for _, comment := range m.comments {
		if comment.ChapterID != chapterID {
			continue
		}
		row := *comment
		if user, ok := m.users[comment.UserID]; ok {
			row.User = *user
		}
		results = append(results, row)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].ID < results[j].ID
		}
		return results[i].CreatedAt.Before(results[j].CreatedAt)
	})
	return results, nil
}

func (m *MockCommentRepository) Delete(id uint) error {
	if _, ok := m.comments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	doomed := map[uint]bool{id: true}
	for changed := true; changed; {
		changed = false
		for _, comment := range m.comments {
			if comment.ParentID == nil || doomed[comment.ID] {
				continue
			}
			if doomed[*comment.ParentID] {
				doomed[comment.ID] = true
				changed = true
			}
		}
	}
	for commentID := range doomed {
		delete(m.comments, commentID)
	}
	return nil
}

func (m *MockCommentRepository) Count() int {
	return len(m.comments)
}

// MockNotificationRepository is an in-memory implementation for testing
type MockNotificationRepository struct {
	notifications map[uint]*models.Notification
	nextID        uint
	commentRepo   *MockCommentRepository
	createErr     error
}

func NewMockNotificationRepository(commentRepo *MockCommentRepository) *MockNotificationRepository {
	return &MockNotificationRepository{
		notifications: make(map[uint]*models.Notification),
		nextID:        1,
		commentRepo:   commentRepo,
	}
}

func (m *MockNotificationRepository) FailCreates(err error) {
	m.createErr = err
}

func (m *MockNotificationRepository) Create(notification *models.Notification) error {
	if m.createErr != nil {
		return m.createErr
	}
	if notification.ID == 0 {
		notification.ID = m.nextID
		m.nextID++
	}
	notification.CreatedAt = time.Now()
	m.notifications[notification.ID] = notification
	return nil
}

func (m *MockNotificationRepository) FindByID(id uint) (*models.Notification, error) {
	notification, ok := m.notifications[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return notification, nil
}

func (m *MockNotificationRepository) ListByUser(userID uint, limit int) ([]models.Notification, error) {
	var results []models.Notification
	for _, notification := range m.notifications {
		if notification.UserID != userID {
			continue
		}
		row := *notification
		if m.commentRepo != nil {
			if comment, err := m.commentRepo.FindByID(notification.CommentID); err == nil {
				row.Comment = *comment
			}
		}
		results = append(results, row)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].ID > results[j].ID
		}
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (m *MockNotificationRepository) FindCommentContents(ids []uint) (map[uint]string, error) {
	contents := make(map[uint]string, len(ids))
	if m.commentRepo == nil {
		return contents, nil
	}
	for _, id := range ids {
		if comment, err := m.commentRepo.FindByID(id); err == nil {
			contents[id] = comment.Content
		}
	}
	return contents, nil
}

func (m *MockNotificationRepository) MarkRead(id uint) error {
	notification, ok := m.notifications[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	notification.Read = true
	return nil
}

func (m *MockNotificationRepository) MarkAllRead(userID uint) (int64, error) {
	var updated int64
	for _, notification := range m.notifications {
		if notification.UserID == userID && !notification.Read {
			notification.Read = true
			updated++
		}
	}
	return updated, nil
}

func (m *MockNotificationRepository) CountFor(userID uint) int {
	count := 0
	for _, notification := range m.notifications {
		if notification.UserID == userID {
			count++
		}
	}
	return count
}

// MockConfigRepository is an in-memory implementation for testing
type MockConfigRepository struct {
	values map[string]string
	getErr error
}

func NewMockConfigRepository() *MockConfigRepository {
	return &MockConfigRepository{values: make(map[string]string)}
}

func (m *MockConfigRepository) FailGets(err error) {
	m.getErr = err
}

func (m *MockConfigRepository) GetValue(key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	value, ok := m.values[key]
	if !ok {
		return "", gorm.ErrRecordNotFound
	}
	return value, nil
}

func (m *MockConfigRepository) SetValue(key, value string) error {
	m.values[key] = value
	return nil
}
