package controllers

import (
	"project/backend/config"
	"project/backend/gamification"
	"project/backend/models"
	"project/backend/storage"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PromptsController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Engine *gamification.Engine
	Badges storage.BadgeStore
}

func NewPromptsController(db *gorm.DB, cfg *config.Config, engine *gamification.Engine, badges storage.BadgeStore) *PromptsController {
	return &PromptsController{DB: db, Cfg: cfg, Engine: engine, Badges: badges}
}

// SubmitPrompt godoc
// @Summary Submit a scored prompt
// @Description Records a scored submission: awards XP, evaluates challenges and badges
// @Tags prompts
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /prompts [post]
func (pc *PromptsController) SubmitPrompt(c *fiber.Ctx) error {
	_, username, err := utils.ExtractUserFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	type SubmitInput struct {
		Prompt    string  `json:"prompt"`
		Type      string  `json:"type"`
		Score     float64 `json:"score"`
		Continent string  `json:"continent"`
	}

	var input SubmitInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Prompt == "" || input.Type == "" {
		return utils.BadRequest(c, "Prompt and type are required")
	}

	event := models.ScoreEvent{Prompt: input.Prompt, Type: input.Type, Score: input.Score}
	progress, effects, xpGained, err := pc.Engine.SubmitScore(username, event)
	if err != nil {
		return engineError(c, err)
	}

	snippet := input.Prompt
	if len(snippet) > 100 {
		snippet = snippet[:100]
	}
	entry := models.PromptHistory{
		Username:   username,
		Continent:  input.Continent,
		PromptType: input.Type,
		Score:      input.Score,
		Snippet:    snippet,
		XPGained:   xpGained,
	}
	if err := pc.DB.Create(&entry).Error; err != nil {
		return utils.InternalServerError(c, "Could not record submission")
	}

	badgeEffects, err := pc.checkBadges(username, progress)
	if err != nil {
		return utils.InternalServerError(c, "Could not update badges")
	}
	effects = append(effects, badgeEffects...)

	return c.JSON(fiber.Map{
		"progress":  progress,
		"xp_gained": xpGained,
		"effects":   effects,
	})
}

// checkBadges runs the badge rules over the user's full history and
// unlocks anything newly earned.
func (pc *PromptsController) checkBadges(username string, progress *models.UserProgress) ([]gamification.SideEffect, error) {
	var history []models.PromptHistory
	if err := pc.DB.Where("username = ?", username).Find(&history).Error; err != nil {
		return nil, err
	}

	unlockedAt, err := pc.Badges.Unlocked(username)
	if err != nil {
		return nil, err
	}
	unlocked := make(map[string]bool, len(unlockedAt))
	for id := range unlockedAt {
		unlocked[id] = true
	}

	now := pc.Engine.Now()
	var effects []gamification.SideEffect
	for _, badge := range gamification.CheckBadges(history, progress, unlocked) {
		if err := pc.Badges.Unlock(username, badge.ID, now); err != nil {
			return nil, err
		}
		b := badge
		effects = append(effects, gamification.SideEffect{
			Type:     gamification.EffectBadgeUnlocked,
			Username: username,
			Badge:    &b,
		})
	}
	return effects, nil
}

// GetHistory godoc
// @Summary Get prompt history
// @Description Returns the user's scored submissions, newest first
// @Tags prompts
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /prompts/history [get]
func (pc *PromptsController) GetHistory(c *fiber.Ctx) error {
	_, username, err := utils.ExtractUserFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var history []models.PromptHistory
	pc.DB.Where("username = ?", username).Order("created_at DESC").Find(&history)

	result := make([]fiber.Map, 0, len(history))
	for _, h := range history {
		result = append(result, fiber.Map{
			"timestamp": h.CreatedAt,
			"type":      h.PromptType,
			"score":     h.Score,
			"snippet":   h.Snippet,
			"xp_gained": h.XPGained,
		})
	}

	return c.JSON(fiber.Map{"history": result})
}
