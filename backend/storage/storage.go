// Package storage defines the persistence boundaries of the
// gamification core and provides GORM-backed implementations plus
// in-memory fakes for tests. The engine only ever sees these
// interfaces, never a concrete store.
package storage

import (
	"time"

	"project/backend/models"
)

// ProgressKey is the storage key of a user's progress document.
func ProgressKey(username string) string {
	return "progress_" + username
}

// ProgressRepository owns the per-user progress documents. Load
// returns (nil, nil) when no record exists; missing records are not
// an error, the engine creates defaults on first access.
type ProgressRepository interface {
	Load(username string) (*models.UserProgress, error)
	Save(p *models.UserProgress) error
	Reset() error
}

// CompletionLog records challenge completions with the calendar day
// and prompt type that produced them. The daily challenges are
// evaluated against this log.
type CompletionLog interface {
	Append(entry models.ChallengeCompletion) error
	ForDate(username, date string) ([]models.ChallengeCompletion, error)
	Reset() error
}

// BadgeStore tracks exactly-once badge unlocks per user.
type BadgeStore interface {
	Unlocked(username string) (map[string]time.Time, error)
	Unlock(username, badgeID string, at time.Time) error
	Reset() error
}
