package controllers

import (
	"project/backend/config"
	"project/backend/models"
	"project/backend/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LeaderboardController struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Progress storage.ProgressRepository
}

func NewLeaderboardController(db *gorm.DB, cfg *config.Config, progress storage.ProgressRepository) *LeaderboardController {
	return &LeaderboardController{DB: db, Cfg: cfg, Progress: progress}
}

// GetLeaderboard godoc
// @Summary Get the leaderboard
// @Description Ranks users by best prompt score over their submission history
// @Tags leaderboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /leaderboard [get]
func (lc *LeaderboardController) GetLeaderboard(c *fiber.Ctx) error {
	type row struct {
		Username  string
		BestScore float64
		Prompts   int
	}

	var rows []row
	err := lc.DB.Model(&models.PromptHistory{}).
		Select("username, MAX(score) AS best_score, COUNT(*) AS prompts").
		Group("username").
		Order("best_score DESC, prompts DESC").
		Limit(50).
		Scan(&rows).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	entries := make([]models.LeaderboardEntry, 0, len(rows))
	for i, r := range rows {
		entry := models.LeaderboardEntry{
			Rank:      i + 1,
			Username:  r.Username,
			BestScore: r.BestScore,
			Prompts:   r.Prompts,
		}
		// Progress records live in the KV store, not a joinable table.
		if p, err := lc.Progress.Load(r.Username); err == nil && p != nil {
			entry.XP = p.XP
			entry.Level = p.Level
			entry.Streak = p.Streak
		}
		entries = append(entries, entry)
	}

	return c.JSON(fiber.Map{
		"leaderboard": entries,
		"total_users": len(entries),
	})
}
