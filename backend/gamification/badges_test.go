package gamification

import (
	"testing"

	"project/backend/models"

	"github.com/stretchr/testify/assert"
)

func historyOf(entries ...models.PromptHistory) []models.PromptHistory {
	return entries
}

func badgeIDs(badges []models.Badge) []string {
	ids := make([]string, 0, len(badges))
	for _, b := range badges {
		ids = append(ids, b.ID)
	}
	return ids
}

func TestFirstPromptBadge(t *testing.T) {
	p := models.NewUserProgress("alice", "2024-03-06")

	earned := CheckBadges(historyOf(models.PromptHistory{Username: "alice", Score: 42}), p, nil)

	assert.Equal(t, []string{"first_prompt"}, badgeIDs(earned))
}

func TestBadgesNeverReEarned(t *testing.T) {
	p := models.NewUserProgress("alice", "2024-03-06")
	unlocked := map[string]bool{"first_prompt": true}

	earned := CheckBadges(historyOf(models.PromptHistory{Username: "alice", Score: 42}), p, unlocked)

	assert.Empty(t, earned)
}

func TestPerfectionistAndSharpshooter(t *testing.T) {
	p := models.NewUserProgress("alice", "2024-03-06")
	var history []models.PromptHistory
	for i := 0; i < 5; i++ {
		history = append(history, models.PromptHistory{Username: "alice", Score: 85, PromptType: "Creative"})
	}
	history = append(history, models.PromptHistory{Username: "alice", Score: 96, PromptType: "Creative"})

	earned := CheckBadges(history, p, map[string]bool{"first_prompt": true})

	assert.Contains(t, badgeIDs(earned), "sharpshooter")
	assert.Contains(t, badgeIDs(earned), "perfectionist")
	assert.NotContains(t, badgeIDs(earned), "ten_prompts")
}

func TestExplorerNeedsThreeCategories(t *testing.T) {
	p := models.NewUserProgress("alice", "2024-03-06")
	history := historyOf(
		models.PromptHistory{PromptType: "Creative"},
		models.PromptHistory{PromptType: "Technical"},
	)
	earned := CheckBadges(history, p, map[string]bool{"first_prompt": true})
	assert.NotContains(t, badgeIDs(earned), "explorer")

	history = append(history, models.PromptHistory{PromptType: "Business"})
	earned = CheckBadges(history, p, map[string]bool{"first_prompt": true})
	assert.Contains(t, badgeIDs(earned), "explorer")
}

func TestOnFireBadgeTracksStreak(t *testing.T) {
	p := models.NewUserProgress("alice", "2024-03-06")
	p.Streak = 7

	earned := CheckBadges(nil, p, nil)

	assert.Equal(t, []string{"on_fire"}, badgeIDs(earned))
}

func TestBadgeByID(t *testing.T) {
	assert.Equal(t, "On Fire", BadgeByID("on_fire").Name)
	assert.Nil(t, BadgeByID("nope"))
}
