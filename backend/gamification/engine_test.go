package gamification

import (
	"errors"
	"testing"
	"time"

	"project/backend/models"
	"project/backend/storage"

	"github.com/stretchr/testify/assert"
)

func fixedClock(s string) Clock {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func newTestEngine(now Clock) (*Engine, *storage.MemoryProgressRepository, *storage.MemoryCompletionLog) {
	repo := storage.NewMemoryProgressRepository()
	log := storage.NewMemoryCompletionLog()
	return NewEngine(repo, log, now), repo, log
}

func TestGetOrCreateDefaults(t *testing.T) {
	e, _, _ := newTestEngine(fixedClock("2024-03-06 10:00"))

	p, err := e.GetOrCreate("alice")

	assert.NoError(t, err)
	assert.Equal(t, "alice", p.Username)
	assert.Equal(t, 0, p.XP)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 0, p.Streak)
	assert.Equal(t, "2024-03-06", p.LastLoginDate)
	assert.Empty(t, p.CompletedChallenges)
}

func TestGetOrCreateRejectsEmptyUsername(t *testing.T) {
	e, _, _ := newTestEngine(fixedClock("2024-03-06 10:00"))

	_, err := e.GetOrCreate("")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAwardXPLevelUp(t *testing.T) {
	e, _, _ := newTestEngine(fixedClock("2024-03-06 10:00"))

	p, effects, err := e.AwardXP("alice", 250)

	assert.NoError(t, err)
	assert.Equal(t, 250, p.XP)
	assert.Equal(t, 3, p.Level)
	// One LevelUp carrying the final level, not one per boundary.
	assert.Len(t, effects, 1)
	assert.Equal(t, EffectLevelUp, effects[0].Type)
	assert.Equal(t, 3, effects[0].Level)
}

func TestAwardXPNoLevelUpWithinLevel(t *testing.T) {
	e, _, _ := newTestEngine(fixedClock("2024-03-06 10:00"))

	p, effects, err := e.AwardXP("alice", 40)

	assert.NoError(t, err)
	assert.Equal(t, 40, p.XP)
	assert.Equal(t, 1, p.Level)
	assert.Empty(t, effects)
}

func TestAwardXPRejectsNegativeDelta(t *testing.T) {
	e, _, _ := newTestEngine(fixedClock("2024-03-06 10:00"))
	e.AwardXP("alice", 50)

	_, _, err := e.AwardXP("alice", -10)

	assert.ErrorIs(t, err, ErrInvalidInput)
	p, _ := e.GetOrCreate("alice")
	assert.Equal(t, 50, p.XP, "rejected call must not change state")
}

func TestAwardXPPersists(t *testing.T) {
	e, repo, _ := newTestEngine(fixedClock("2024-03-06 10:00"))
	e.AwardXP("alice", 120)

	stored, err := repo.Load("alice")
	assert.NoError(t, err)
	assert.Equal(t, 120, stored.XP)
	assert.Equal(t, 2, stored.Level)
}

func TestRecordLoginStreakSequence(t *testing.T) {
	repo := storage.NewMemoryProgressRepository()
	log := storage.NewMemoryCompletionLog()

	// Seed a record with a known lastLoginDate.
	seed := models.NewUserProgress("bob", "2024-01-01")
	seed.Streak = 1
	assert.NoError(t, repo.Save(seed))

	e := NewEngine(repo, log, fixedClock("2024-01-02 09:00"))
	streak, err := e.RecordLogin("bob")
	assert.NoError(t, err)
	assert.Equal(t, 2, streak)

	// Same day again: no inflation.
	streak, err = e.RecordLogin("bob")
	assert.NoError(t, err)
	assert.Equal(t, 2, streak)

	// Three days later: reset.
	e = NewEngine(repo, log, fixedClock("2024-01-05 09:00"))
	streak, err = e.RecordLogin("bob")
	assert.NoError(t, err)
	assert.Equal(t, 1, streak)
}

func TestRecordLoginRefreshesCurrentChallenges(t *testing.T) {
	e, repo, _ := newTestEngine(fixedClock("2024-03-06 10:00"))

	_, err := e.RecordLogin("alice")
	assert.NoError(t, err)

	p, _ := repo.Load("alice")
	assert.Equal(t, []string{"d1", "d2", "d3", "w1", "w2", "w3"}, p.CurrentChallenges)
}

func TestEvaluateChallengesPerfectScore(t *testing.T) {
	e, _, log := newTestEngine(fixedClock("2024-03-06 10:00"))

	newly, effects, err := e.EvaluateChallenges("alice", models.ScoreEvent{Type: "Creative", Score: 97})

	assert.NoError(t, err)
	assert.Equal(t, []string{"d3"}, newly)
	// d3 rewards 100 XP, which crosses a level boundary.
	assert.Len(t, effects, 2)
	assert.Equal(t, EffectChallengeComplete, effects[0].Type)
	assert.Equal(t, "d3", effects[0].Challenge.ID)
	assert.Equal(t, EffectLevelUp, effects[1].Type)
	assert.Equal(t, 2, effects[1].Level)

	p, _ := e.GetOrCreate("alice")
	assert.Equal(t, []string{"d3"}, p.CompletedChallenges)
	assert.Equal(t, 100, p.XP)

	entries, _ := log.ForDate("alice", "2024-03-06")
	assert.Len(t, entries, 1)
	assert.Equal(t, "d3", entries[0].ChallengeID)
	assert.Equal(t, "Creative", entries[0].PromptType)
}

func TestEvaluateChallengesIdempotent(t *testing.T) {
	e, _, _ := newTestEngine(fixedClock("2024-03-06 10:00"))

	e.EvaluateChallenges("alice", models.ScoreEvent{Type: "Creative", Score: 97})
	newly, effects, err := e.EvaluateChallenges("alice", models.ScoreEvent{Type: "Creative", Score: 98})

	assert.NoError(t, err)
	assert.Empty(t, newly)
	assert.Empty(t, effects)

	p, _ := e.GetOrCreate("alice")
	assert.Equal(t, 100, p.XP, "xpReward must be awarded exactly once")
	assert.Equal(t, []string{"d3"}, p.CompletedChallenges)
}

func TestEvaluateAgainstPreCallSnapshot(t *testing.T) {
	e, _, _ := newTestEngine(fixedClock("2024-03-06 10:00"))

	// First call completes only d3: the completion it logs must not
	// feed d1's per-day count within the same call.
	newly, _, _ := e.EvaluateChallenges("alice", models.ScoreEvent{Type: "A", Score: 99})
	assert.Equal(t, []string{"d3"}, newly)
}

func TestCompletionLogFeedsPromptMaster(t *testing.T) {
	e, _, _ := newTestEngine(fixedClock("2024-03-06 10:00"))

	// Three completions land in today's log: d3 automatically, w2 and
	// w3 by manual grant.
	e.EvaluateChallenges("alice", models.ScoreEvent{Type: "A", Score: 99})
	_, _, err := e.CompleteChallenge("alice", "w2")
	assert.NoError(t, err)
	_, _, err = e.CompleteChallenge("alice", "w3")
	assert.NoError(t, err)

	newly, _, err := e.EvaluateChallenges("alice", models.ScoreEvent{Type: "A", Score: 10})
	assert.NoError(t, err)
	assert.Equal(t, []string{"d1"}, newly)
}

func TestCompleteChallengeManual(t *testing.T) {
	e, _, _ := newTestEngine(fixedClock("2024-03-06 10:00"))

	p, effects, err := e.CompleteChallenge("alice", "w2")

	assert.NoError(t, err)
	assert.Equal(t, []string{"w2"}, p.CompletedChallenges)
	assert.Equal(t, 150, p.XP)
	assert.Equal(t, 2, p.Level)
	assert.Len(t, effects, 2)

	// Second grant is a no-op.
	p, effects, err = e.CompleteChallenge("alice", "w2")
	assert.NoError(t, err)
	assert.Equal(t, 150, p.XP)
	assert.Empty(t, effects)
}

func TestCompleteChallengeUnknownID(t *testing.T) {
	e, _, _ := newTestEngine(fixedClock("2024-03-06 10:00"))

	_, _, err := e.CompleteChallenge("alice", "d9")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSubmitScoreFlow(t *testing.T) {
	e, _, _ := newTestEngine(fixedClock("2024-03-06 10:00"))

	p, effects, gained, err := e.SubmitScore("alice", models.ScoreEvent{Type: "Creative", Score: 97})

	assert.NoError(t, err)
	assert.Equal(t, 194, gained)
	// 194 from the score plus 100 from d3.
	assert.Equal(t, 294, p.XP)
	assert.Equal(t, 3, p.Level)

	var types []EffectType
	for _, ef := range effects {
		types = append(types, ef.Type)
	}
	assert.Equal(t, []EffectType{EffectLevelUp, EffectChallengeComplete, EffectLevelUp}, types)
}

func TestSubmitScoreRejectsOutOfRange(t *testing.T) {
	e, _, _ := newTestEngine(fixedClock("2024-03-06 10:00"))

	_, _, _, err := e.SubmitScore("alice", models.ScoreEvent{Type: "A", Score: 101})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, _, err = e.SubmitScore("alice", models.ScoreEvent{Type: "A", Score: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// failingRepo simulates persistence failures.
type failingRepo struct{}

func (failingRepo) Load(string) (*models.UserProgress, error) { return nil, errors.New("boom") }
func (failingRepo) Save(*models.UserProgress) error           { return errors.New("boom") }
func (failingRepo) Reset() error                              { return errors.New("boom") }

func TestStorageFailuresSurfaceAsStorageError(t *testing.T) {
	e := NewEngine(failingRepo{}, storage.NewMemoryCompletionLog(), fixedClock("2024-03-06 10:00"))

	_, err := e.GetOrCreate("alice")
	assert.ErrorIs(t, err, ErrStorage)

	_, _, err = e.AwardXP("alice", 10)
	assert.ErrorIs(t, err, ErrStorage)

	_, err = e.RecordLogin("alice")
	assert.ErrorIs(t, err, ErrStorage)
}
