package models

import (
	"time"

	"gorm.io/gorm"
)

// DateLayout is the calendar-date format used for streaks and the
// challenge completion log.
const DateLayout = "2006-01-02"

// UserProgress is the per-user gamification record. The JSON field
// names are the wire format of the stored record and must not change.
type UserProgress struct {
	Username            string   `json:"username"`
	XP                  int      `json:"xp"`
	Level               int      `json:"level"`
	Streak              int      `json:"streak"`
	LastLoginDate       string   `json:"lastLoginDate"`
	CompletedChallenges []string `json:"completedChallenges"`
	CurrentChallenges   []string `json:"currentChallenges"`
}

// NewUserProgress returns the zero-state record for a username.
func NewUserProgress(username, today string) *UserProgress {
	return &UserProgress{
		Username:            username,
		XP:                  0,
		Level:               1,
		Streak:              0,
		LastLoginDate:       today,
		CompletedChallenges: []string{},
		CurrentChallenges:   []string{},
	}
}

// Completed reports whether a challenge ID is already in the record.
func (p *UserProgress) Completed(challengeID string) bool {
	for _, id := range p.CompletedChallenges {
		if id == challengeID {
			return true
		}
	}
	return false
}

// ProgressRecord is the key-value row a UserProgress is persisted as,
// keyed "progress_<username>" with the JSON document as payload.
type ProgressRecord struct {
	Key       string `gorm:"primaryKey;size:255"`
	Data      string
	UpdatedAt time.Time
}

// ChallengeCompletion is one entry in the per-day completion log. The
// daily challenges d1/d2 count these entries, not raw submissions.
type ChallengeCompletion struct {
	gorm.Model
	Username    string `gorm:"index:idx_completions_user_date"`
	ChallengeID string
	PromptType  string
	Date        string `gorm:"index:idx_completions_user_date;size:10"`
}
