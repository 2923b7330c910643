package gamification

import (
	"fmt"
	"time"

	"project/backend/models"
	"project/backend/storage"
)

// Clock supplies "now" to every time-sensitive operation so the
// engine stays deterministic under test.
type Clock func() time.Time

type EffectType string

const (
	EffectLevelUp           EffectType = "level_up"
	EffectChallengeComplete EffectType = "challenge_complete"
	EffectBadgeUnlocked     EffectType = "badge_unlocked"
)

// SideEffect is a notification the caller is expected to render. The
// engine never talks to a UI or an event bus; it returns these
// records and the caller decides what to do with them.
type SideEffect struct {
	Type      EffectType        `json:"type"`
	Username  string            `json:"username"`
	Level     int               `json:"level,omitempty"`
	Challenge *models.Challenge `json:"challenge,omitempty"`
	Badge     *models.Badge     `json:"badge,omitempty"`
}

// Engine turns scored-prompt events into durable progress state. All
// operations are synchronous read-modify-write sequences on one
// user's record; callers must not interleave writes for the same
// username.
type Engine struct {
	progress    storage.ProgressRepository
	completions storage.CompletionLog
	now         Clock
}

func NewEngine(progress storage.ProgressRepository, completions storage.CompletionLog, now Clock) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{progress: progress, completions: completions, now: now}
}

// Now exposes the engine's clock for callers that render
// time-dependent views (the challenge catalog, mainly).
func (e *Engine) Now() time.Time {
	return e.now()
}

// GetOrCreate loads a user's progress, creating and persisting the
// zero-state record on first access. Absence is not an error.
func (e *Engine) GetOrCreate(username string) (*models.UserProgress, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username must not be empty", ErrInvalidInput)
	}

	p, err := e.progress.Load(username)
	if err != nil {
		return nil, fmt.Errorf("%w: load progress for %q: %v", ErrStorage, username, err)
	}
	if p == nil {
		p = models.NewUserProgress(username, e.now().Format(models.DateLayout))
		if err := e.progress.Save(p); err != nil {
			return nil, fmt.Errorf("%w: create progress for %q: %v", ErrStorage, username, err)
		}
	}
	return p, nil
}

// AwardXP adds a non-negative delta to the user's XP, recomputes the
// level and persists both together. Crossing a level boundary emits a
// single LevelUp effect carrying the final level.
func (e *Engine) AwardXP(username string, delta int) (*models.UserProgress, []SideEffect, error) {
	if delta < 0 {
		return nil, nil, fmt.Errorf("%w: xp delta must be non-negative, got %d", ErrInvalidInput, delta)
	}

	p, err := e.GetOrCreate(username)
	if err != nil {
		return nil, nil, err
	}

	p.XP += delta
	var effects []SideEffect
	if newLevel := LevelForXP(p.XP); newLevel > p.Level {
		p.Level = newLevel
		effects = append(effects, SideEffect{Type: EffectLevelUp, Username: username, Level: newLevel})
	}

	if err := e.progress.Save(p); err != nil {
		return nil, nil, fmt.Errorf("%w: save progress for %q: %v", ErrStorage, username, err)
	}
	return p, effects, nil
}

// RecordLogin applies the streak rule at the clock's current day,
// refreshes the offered challenge list and persists. Safe to call any
// number of times per day.
func (e *Engine) RecordLogin(username string) (int, error) {
	p, err := e.GetOrCreate(username)
	if err != nil {
		return 0, err
	}

	now := e.now()
	UpdateStreak(p, now)

	current := make([]string, 0, 6)
	for _, ch := range AllChallenges(now) {
		current = append(current, ch.ID)
	}
	p.CurrentChallenges = current

	if err := e.progress.Save(p); err != nil {
		return 0, fmt.Errorf("%w: save progress for %q: %v", ErrStorage, username, err)
	}
	return p.Streak, nil
}

// EvaluateChallenges checks the satisfaction rules against the
// pre-call snapshot and applies newly satisfied challenges in
// ascending ID order: each is added to completedChallenges, logged
// with today's date, and its XP reward applied. The progress record
// commits in a single save; a completion either fully lands or not at
// all. Re-evaluating an already-completed ID is a no-op.
func (e *Engine) EvaluateChallenges(username string, event models.ScoreEvent) ([]string, []SideEffect, error) {
	p, err := e.GetOrCreate(username)
	if err != nil {
		return nil, nil, err
	}

	now := e.now()
	today := now.Format(models.DateLayout)
	todayCompletions, err := e.completions.ForDate(username, today)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: load completion log for %q: %v", ErrStorage, username, err)
	}

	newly := SatisfiedChallenges(p, []models.ScoreEvent{event}, todayCompletions)
	if len(newly) == 0 {
		return nil, nil, nil
	}

	var effects []SideEffect
	for _, id := range newly {
		ch := ChallengeByID(now, id)
		if ch == nil {
			continue
		}
		p.CompletedChallenges = append(p.CompletedChallenges, id)
		p.XP += ch.XPReward
		effects = append(effects, SideEffect{Type: EffectChallengeComplete, Username: username, Challenge: ch})
	}
	if newLevel := LevelForXP(p.XP); newLevel > p.Level {
		p.Level = newLevel
		effects = append(effects, SideEffect{Type: EffectLevelUp, Username: username, Level: newLevel})
	}

	if err := e.progress.Save(p); err != nil {
		return nil, nil, fmt.Errorf("%w: save progress for %q: %v", ErrStorage, username, err)
	}
	for _, id := range newly {
		entry := models.ChallengeCompletion{
			Username:    username,
			ChallengeID: id,
			PromptType:  event.Type,
			Date:        today,
		}
		if err := e.completions.Append(entry); err != nil {
			return newly, effects, fmt.Errorf("%w: append completion log for %q: %v", ErrStorage, username, err)
		}
	}
	return newly, effects, nil
}

// CompleteChallenge grants a challenge outside the automatic rules -
// the path for w2/w3, which have no trigger of their own. Completing
// an already-completed challenge awards nothing.
func (e *Engine) CompleteChallenge(username, challengeID string) (*models.UserProgress, []SideEffect, error) {
	p, err := e.GetOrCreate(username)
	if err != nil {
		return nil, nil, err
	}
	if p.Completed(challengeID) {
		return p, nil, nil
	}

	now := e.now()
	ch := ChallengeByID(now, challengeID)
	if ch == nil {
		return nil, nil, fmt.Errorf("%w: unknown challenge %q", ErrInvalidInput, challengeID)
	}

	p.CompletedChallenges = append(p.CompletedChallenges, challengeID)
	p.XP += ch.XPReward
	effects := []SideEffect{{Type: EffectChallengeComplete, Username: username, Challenge: ch}}
	if newLevel := LevelForXP(p.XP); newLevel > p.Level {
		p.Level = newLevel
		effects = append(effects, SideEffect{Type: EffectLevelUp, Username: username, Level: newLevel})
	}

	if err := e.progress.Save(p); err != nil {
		return nil, nil, fmt.Errorf("%w: save progress for %q: %v", ErrStorage, username, err)
	}
	entry := models.ChallengeCompletion{
		Username:    username,
		ChallengeID: challengeID,
		Date:        now.Format(models.DateLayout),
	}
	if err := e.completions.Append(entry); err != nil {
		return p, effects, fmt.Errorf("%w: append completion log for %q: %v", ErrStorage, username, err)
	}
	return p, effects, nil
}

// SubmitScore is the whole submission flow: award 2 XP per score
// point, then evaluate challenges against the event. Returns the
// refreshed record, the merged side-effect list and the base XP
// gained from the score itself.
func (e *Engine) SubmitScore(username string, event models.ScoreEvent) (*models.UserProgress, []SideEffect, int, error) {
	if event.Score < 0 || event.Score > 100 {
		return nil, nil, 0, fmt.Errorf("%w: score must be between 0 and 100, got %v", ErrInvalidInput, event.Score)
	}

	gained := XPForScore(event.Score)
	_, effects, err := e.AwardXP(username, gained)
	if err != nil {
		return nil, nil, 0, err
	}

	_, more, err := e.EvaluateChallenges(username, event)
	if err != nil {
		return nil, nil, 0, err
	}
	effects = append(effects, more...)

	p, err := e.GetOrCreate(username)
	if err != nil {
		return nil, nil, 0, err
	}
	return p, effects, gained, nil
}
