package gamification

import (
	"sort"

	"project/backend/models"
)

// SatisfiedChallenges decides which challenges become newly satisfied
// given a snapshot of the user's progress, the scored-prompt events of
// the current day, and the completion-log entries of the current day.
// Already-completed IDs are never returned; the result is sorted
// ascending so XP awards apply in a reproducible order.
//
// d1 and d2 deliberately count completion-log entries rather than raw
// submissions: completing challenges is what advances them.
// w2 and w3 have no automatic rule and are granted manually.
func SatisfiedChallenges(p *models.UserProgress, scores []models.ScoreEvent, completions []models.ChallengeCompletion) []string {
	var out []string
	add := func(id string) {
		if !p.Completed(id) {
			out = append(out, id)
		}
	}

	// d3 Perfect Score: any 95+ score today.
	for _, ev := range scores {
		if ev.Score >= 95 {
			add("d3")
			break
		}
	}

	// d1 Prompt Master: three completions logged today.
	if len(completions) >= 3 {
		add("d1")
	}

	// d2 Diverse Thinker: two distinct prompt types among today's
	// completions. Manual grants carry no type and do not count.
	types := make(map[string]struct{})
	for _, c := range completions {
		if c.PromptType != "" {
			types[c.PromptType] = struct{}{}
		}
	}
	if len(types) >= 2 {
		add("d2")
	}

	// w1 Consistency King: five-day streak.
	if p.Streak >= 5 {
		add("w1")
	}

	sort.Strings(out)
	return out
}
