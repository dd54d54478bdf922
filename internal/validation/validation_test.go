package validation

import (
	"os"
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		username string
		want     bool
	}{
		{"john_doe", true},
		{"abc", true},
		{"  padded_name  ", true},
		{strings.Repeat("a", 32), true},
		{"ab", false},
		{strings.Repeat("a", 33), false},
		{"has space", false},
		{"bad-dash", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			if got := ValidateUsername(tt.username); got != tt.want {
				t.Errorf("ValidateUsername(%q) = %v, want %v", tt.username, got, tt.want)
			}
		})
	}
}

func TestPasswordMinLength(t *testing.T) {
	os.Unsetenv("PASSWORD_MIN_LENGTH")
	if got := PasswordMinLength(); got != 8 {
		t.Errorf("default PasswordMinLength = %d, want 8", got)
	}

	os.Setenv("PASSWORD_MIN_LENGTH", "12")
	if got := PasswordMinLength(); got != 12 {
		t.Errorf("PasswordMinLength = %d, want 12", got)
	}

	// Values below the floor are ignored
	os.Setenv("PASSWORD_MIN_LENGTH", "4")
	if got := PasswordMinLength(); got != 8 {
		t.Errorf("PasswordMinLength with low env = %d, want 8", got)
	}

	os.Setenv("PASSWORD_MIN_LENGTH", "not-a-number")
	if got := PasswordMinLength(); got != 8 {
		t.Errorf("PasswordMinLength with bad env = %d, want 8", got)
	}

	os.Unsetenv("PASSWORD_MIN_LENGTH")
}

func TestValidatePassword(t *testing.T) {
	os.Unsetenv("PASSWORD_MIN_LENGTH")

	if ValidatePassword("short") {
		t.Error("ValidatePassword accepted a 5-char password")
	}
	if !ValidatePassword("longenough") {
		t.Error("ValidatePassword rejected a valid password")
	}
}

func TestMaxCommentLength(t *testing.T) {
	os.Unsetenv("MAX_COMMENT_LENGTH")
	if got := MaxCommentLength(); got != 4000 {
		t.Errorf("default MaxCommentLength = %d, want 4000", got)
	}

	os.Setenv("MAX_COMMENT_LENGTH", "500")
	if got := MaxCommentLength(); got != 500 {
		t.Errorf("MaxCommentLength = %d, want 500", got)
	}

	os.Setenv("MAX_COMMENT_LENGTH", "0")
	if got := MaxCommentLength(); got != 4000 {
		t.Errorf("MaxCommentLength with zero env = %d, want 4000", got)
	}

	os.Unsetenv("MAX_COMMENT_LENGTH")
}
