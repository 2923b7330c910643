package gamification

import "project/backend/models"

// BadgeCatalog is the fixed badge content, in display order. Unlock
// rules live in badgeSatisfied; unlock state lives in the BadgeStore.
var BadgeCatalog = []models.Badge{
	{ID: "first_prompt", Icon: "✏️", Name: "First Steps", Description: "Submit your first prompt"},
	{ID: "ten_prompts", Icon: "📚", Name: "Prolific Writer", Description: "Submit 10 prompts"},
	{ID: "sharpshooter", Icon: "🎯", Name: "Sharpshooter", Description: "Score 80+ on 5 prompts"},
	{ID: "perfectionist", Icon: "🌟", Name: "Perfectionist", Description: "Score 95+ on any prompt"},
	{ID: "explorer", Icon: "🧭", Name: "Explorer", Description: "Try 3 different prompt categories"},
	{ID: "on_fire", Icon: "🔥", Name: "On Fire", Description: "Keep a 7-day streak"},
}

// BadgeByID finds a catalog definition, or nil for unknown IDs.
func BadgeByID(id string) *models.Badge {
	for i := range BadgeCatalog {
		if BadgeCatalog[i].ID == id {
			return &BadgeCatalog[i]
		}
	}
	return nil
}

// CheckBadges returns the badges newly earned given the full prompt
// history, the progress record and the set of already-unlocked IDs,
// in catalog order. It never returns an already-unlocked badge.
func CheckBadges(history []models.PromptHistory, p *models.UserProgress, unlocked map[string]bool) []models.Badge {
	var earned []models.Badge
	for _, badge := range BadgeCatalog {
		if unlocked[badge.ID] {
			continue
		}
		if badgeSatisfied(badge.ID, history, p) {
			earned = append(earned, badge)
		}
	}
	return earned
}

func badgeSatisfied(id string, history []models.PromptHistory, p *models.UserProgress) bool {
	switch id {
	case "first_prompt":
		return len(history) >= 1
	case "ten_prompts":
		return len(history) >= 10
	case "sharpshooter":
		high := 0
		for _, h := range history {
			if h.Score >= 80 {
				high++
			}
		}
		return high >= 5
	case "perfectionist":
		for _, h := range history {
			if h.Score >= 95 {
				return true
			}
		}
		return false
	case "explorer":
		types := make(map[string]struct{})
		for _, h := range history {
			if h.PromptType != "" {
				types[h.PromptType] = struct{}{}
			}
		}
		return len(types) >= 3
	case "on_fire":
		return p != nil && p.Streak >= 7
	default:
		return false
	}
}
