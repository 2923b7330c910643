package gamification

import "errors"

var (
	// ErrInvalidInput marks calls rejected synchronously with no state
	// change: negative XP deltas, empty usernames, unknown challenge
	// IDs, out-of-range scores.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStorage wraps persistence failures. They are surfaced to the
	// caller, never retried, and never leave a record partially saved.
	ErrStorage = errors.New("storage failure")
)
