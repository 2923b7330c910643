package gamification

import (
	"testing"
	"time"

	"project/backend/models"

	"github.com/stretchr/testify/assert"
)

func TestDailyChallengesContent(t *testing.T) {
	now := time.Date(2024, 3, 6, 14, 30, 0, 0, time.UTC) // a Wednesday
	daily := DailyChallenges(now)

	assert.Len(t, daily, 3)
	assert.Equal(t, "d1", daily[0].ID)
	assert.Equal(t, "d2", daily[1].ID)
	assert.Equal(t, "d3", daily[2].ID)
	assert.Equal(t, 50, daily[0].XPReward)
	assert.Equal(t, 30, daily[1].XPReward)
	assert.Equal(t, 100, daily[2].XPReward)
	for _, ch := range daily {
		assert.Equal(t, models.PeriodDaily, ch.Period)
		assert.Equal(t, time.Date(2024, 3, 6, 23, 59, 59, 999e6, time.UTC), ch.EndTime)
	}
}

func TestWeeklyChallengesContent(t *testing.T) {
	now := time.Date(2024, 3, 6, 14, 30, 0, 0, time.UTC) // Wednesday
	weekly := WeeklyChallenges(now)

	assert.Len(t, weekly, 3)
	assert.Equal(t, "w1", weekly[0].ID)
	assert.Equal(t, 200, weekly[0].XPReward)
	assert.Equal(t, 150, weekly[1].XPReward)
	assert.Equal(t, 300, weekly[2].XPReward)
	for _, ch := range weekly {
		assert.Equal(t, models.PeriodWeekly, ch.Period)
		// ISO week of 2024-03-06 ends Sunday 2024-03-10.
		assert.Equal(t, time.Date(2024, 3, 10, 23, 59, 59, 999e6, time.UTC), ch.EndTime)
	}
}

func TestWeeklyEndOnSundayStaysInWeek(t *testing.T) {
	sunday := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	weekly := WeeklyChallenges(sunday)

	assert.Equal(t, time.Date(2024, 3, 10, 23, 59, 59, 999e6, time.UTC), weekly[0].EndTime)
}

func TestCatalogIsDeterministic(t *testing.T) {
	now := time.Date(2024, 3, 6, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, AllChallenges(now), AllChallenges(now))
}

func TestChallengeByID(t *testing.T) {
	now := time.Date(2024, 3, 6, 14, 30, 0, 0, time.UTC)

	ch := ChallengeByID(now, "w1")
	assert.NotNil(t, ch)
	assert.Equal(t, "Consistency King", ch.Title)

	assert.Nil(t, ChallengeByID(now, "nope"))
}
