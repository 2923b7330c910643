package gamification

import (
	"time"

	"project/backend/models"
)

// UpdateStreak applies the daily streak rule to a progress record and
// returns the resulting streak. Calling it again on the same calendar
// day is a no-op, so repeated logins never inflate the streak. A gap
// of two or more days resets the streak to 1 - lapsed streaks are not
// salvageable.
func UpdateStreak(p *models.UserProgress, today time.Time) int {
	todayStr := today.Format(models.DateLayout)
	if p.LastLoginDate == todayStr {
		return p.Streak
	}

	yesterday := today.AddDate(0, 0, -1).Format(models.DateLayout)
	if p.LastLoginDate == yesterday {
		p.Streak++
	} else {
		p.Streak = 1
	}

	p.LastLoginDate = todayStr
	return p.Streak
}
