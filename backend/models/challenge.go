package models

import "time"

type ChallengePeriod string

const (
	PeriodDaily  ChallengePeriod = "daily"
	PeriodWeekly ChallengePeriod = "weekly"
)

// Challenge is a catalog value object, regenerated from "now" each
// time it is needed rather than persisted. JSON names match the
// stored challenge documents ("type" and "endDate" included).
type Challenge struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	XPReward    int             `json:"xpReward"`
	Period      ChallengePeriod `json:"type"`
	EndTime     time.Time       `json:"endDate"`
}

// ChallengeStatus decorates a catalog entry with per-user completion.
type ChallengeStatus struct {
	Challenge
	Completed bool `json:"completed"`
}

// ScoreEvent is what the scoring collaborator reports for one
// submission. Only Score and Type drive the gamification rules.
type ScoreEvent struct {
	Prompt string  `json:"prompt"`
	Type   string  `json:"type"`
	Score  float64 `json:"score"`
}
