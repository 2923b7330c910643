package controllers

import (
	"project/backend/config"
	"project/backend/gamification"
	"project/backend/models"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProgressController struct {
	Cfg    *config.Config
	Engine *gamification.Engine
}

func NewProgressController(cfg *config.Config, engine *gamification.Engine) *ProgressController {
	return &ProgressController{Cfg: cfg, Engine: engine}
}

// GetProgress godoc
// @Summary Get user progress
// @Description Returns the user's XP, level, streak and challenge state
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	_, username, err := utils.ExtractUserFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	progress, err := pc.Engine.GetOrCreate(username)
	if err != nil {
		return engineError(c, err)
	}

	xpIntoLevel := progress.XP % gamification.XPPerLevel
	return c.JSON(fiber.Map{
		"progress":      progress,
		"xp_into_level": xpIntoLevel,
		"xp_to_next":    gamification.XPPerLevel - xpIntoLevel,
	})
}

// GetChallenges godoc
// @Summary Get current challenges
// @Description Returns the daily and weekly challenge sets with completion status
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /challenges [get]
func (pc *ProgressController) GetChallenges(c *fiber.Ctx) error {
	_, username, err := utils.ExtractUserFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	progress, err := pc.Engine.GetOrCreate(username)
	if err != nil {
		return engineError(c, err)
	}

	now := pc.Engine.Now()
	daily := withStatus(gamification.DailyChallenges(now), progress)
	weekly := withStatus(gamification.WeeklyChallenges(now), progress)

	return c.JSON(fiber.Map{
		"daily":  daily,
		"weekly": weekly,
	})
}

func withStatus(challenges []models.Challenge, progress *models.UserProgress) []models.ChallengeStatus {
	out := make([]models.ChallengeStatus, 0, len(challenges))
	for _, ch := range challenges {
		out = append(out, models.ChallengeStatus{
			Challenge: ch,
			Completed: progress.Completed(ch.ID),
		})
	}
	return out
}
