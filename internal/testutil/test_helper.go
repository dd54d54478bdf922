package testutil

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/BuyMeAnIcecream/chapter-a-day/internal/models"
	"gorm.io/gorm"
)

// TestHelper provides utility functions for tests
type TestHelper struct {
	t *testing.T
}

func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{t: t}
}

// CreateTestUser creates a test user with default values
func (h *TestHelper) CreateTestUser(id uint, username string) *models.User {
	if id == 0 {
		id = 1
	}
	if username == "" {
		username = "testuser"
	}

	return &models.User{
		ID:           id,
		Username:     username,
		PasswordHash: "hashed_password_123",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

// CreateTestChapter creates a test chapter whose content carries numbered
// verse lines, e.g. "1 In the beginning...".
func (h *TestHelper) CreateTestChapter(sequence uint, book string, chapterNumber, verses int) *models.Chapter {
	if sequence == 0 {
		sequence = 1
	}
	if book == "" {
		book = "Matthew"
	}
	if chapterNumber == 0 {
		chapterNumber = 1
	}
	if verses == 0 {
		verses = 5
	}

	content := fmt.Sprintf("%s %d\n", book, chapterNumber)
	for v := 1; v <= verses; v++ {
		content += fmt.Sprintf("%d Verse %d of %s chapter %d.\n", v, v, book, chapterNumber)
	}

	return &models.Chapter{
		ID:            sequence,
		Sequence:      sequence,
		Book:          book,
		ChapterNumber: chapterNumber,
		Content:       content,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

// CreateTestComment creates a test comment with default values
func (h *TestHelper) CreateTestComment(id, userID, chapterID uint, content string) *models.Comment {
	if id == 0 {
		id = 1
	}
	if userID == 0 {
		userID = 1
	}
	if chapterID == 0 {
		chapterID = 1
	}
	if content == "" {
		content = "Test comment"
	}

	return &models.Comment{
		ID:        id,
		Content:   content,
		UserID:    userID,
		ChapterID: chapterID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		User: models.User{
			ID:       userID,
			Username: fmt.Sprintf("user%d", userID),
		},
	}
}

// SetupTestEnv sets up required environment variables for testing
func (h *TestHelper) SetupTestEnv() {
	os.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")
	os.Setenv("PASSWORD_MIN_LENGTH", "8")
}

// TeardownTestEnv cleans up environment variables after testing
func (h *TestHelper) TeardownTestEnv() {
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("PASSWORD_MIN_LENGTH")
}

// AssertError checks if an error occurred when it should (or shouldn't)
func (h *TestHelper) AssertError(err error, shouldErr bool, testName string) {
	if (err != nil) != shouldErr {
		if shouldErr {
			h.t.Errorf("%s: expected error but got nil", testName)
		} else {
			h.t.Errorf("%s: unexpected error: %v", testName, err)
		}
	}
}

// AssertEqual checks if two values are equal
func (h *TestHelper) AssertEqual(got, want interface{}, testName string) {
	if got != want {
		h.t.Errorf("%s: got %v, want %v", testName, got, want)
	}
}

// AssertNotNil checks if a value is not nil
func (h *TestHelper) AssertNotNil(value interface{}, testName string) {
	if value == nil {
		h.t.Errorf("%s: expected non-nil value", testName)
	}
}

// GetRecordNotFoundError returns the error repositories surface for a miss
func GetRecordNotFoundError() error {
	return gorm.ErrRecordNotFound
}
