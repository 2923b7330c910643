package gamification

import (
	"time"

	"project/backend/models"
)

// The challenge catalog is hard-coded content: every user sees the
// same set for a given period, distinguished only by which IDs appear
// in their completedChallenges. Both functions are pure in "now" -
// two calls at the same instant return identical challenges.

func DailyChallenges(now time.Time) []models.Challenge {
	end := endOfDay(now)
	return []models.Challenge{
		{ID: "d1", Title: "Prompt Master", Description: "Create 3 high-scoring prompts", XPReward: 50, Period: models.PeriodDaily, EndTime: end},
		{ID: "d2", Title: "Diverse Thinker", Description: "Try prompts in 2 different categories", XPReward: 30, Period: models.PeriodDaily, EndTime: end},
		{ID: "d3", Title: "Perfect Score", Description: "Get a 95+ score on any prompt", XPReward: 100, Period: models.PeriodDaily, EndTime: end},
	}
}

func WeeklyChallenges(now time.Time) []models.Challenge {
	end := endOfWeek(now)
	return []models.Challenge{
		{ID: "w1", Title: "Consistency King", Description: "Maintain a 5-day streak", XPReward: 200, Period: models.PeriodWeekly, EndTime: end},
		{ID: "w2", Title: "Category Master", Description: "Try all prompt categories", XPReward: 150, Period: models.PeriodWeekly, EndTime: end},
		{ID: "w3", Title: "Community Leader", Description: "Score in top 10 on leaderboard", XPReward: 300, Period: models.PeriodWeekly, EndTime: end},
	}
}

// AllChallenges returns the daily set followed by the weekly set.
func AllChallenges(now time.Time) []models.Challenge {
	return append(DailyChallenges(now), WeeklyChallenges(now)...)
}

// ChallengeByID finds a catalog entry, or nil for unknown IDs.
func ChallengeByID(now time.Time, id string) *models.Challenge {
	for _, ch := range AllChallenges(now) {
		if ch.ID == id {
			return &ch
		}
	}
	return nil
}

// endOfDay is 23:59:59.999 local time of the day containing t.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999e6, t.Location())
}

// endOfWeek is endOfDay of the Sunday closing the ISO week of t.
func endOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return endOfDay(t.AddDate(0, 0, 7-wd))
}
