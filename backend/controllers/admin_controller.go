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

type AdminController struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Engine   *gamification.Engine
	Progress storage.ProgressRepository
	Log      storage.CompletionLog
	Badges   storage.BadgeStore
}

func NewAdminController(db *gorm.DB, cfg *config.Config, engine *gamification.Engine, progress storage.ProgressRepository, log storage.CompletionLog, badges storage.BadgeStore) *AdminController {
	return &AdminController{DB: db, Cfg: cfg, Engine: engine, Progress: progress, Log: log, Badges: badges}
}

// GrantChallenge godoc
// @Summary Grant a challenge manually
// @Description Completes a challenge outside the automatic rules; the path for w2/w3
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/challenges/{id}/grant [post]
func (ac *AdminController) GrantChallenge(c *fiber.Ctx) error {
	challengeID := c.Params("id")

	var input struct {
		Username string `json:"username"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Username == "" {
		return utils.BadRequest(c, "Username is required")
	}

	progress, effects, err := ac.Engine.CompleteChallenge(input.Username, challengeID)
	if err != nil {
		return engineError(c, err)
	}

	return c.JSON(fiber.Map{
		"progress": progress,
		"effects":  effects,
	})
}

// ResetData godoc
// @Summary Reset gamification state
// @Description Bulk-deletes all progress, completions, badges and history; records are recreated with defaults on next access
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/reset [post]
func (ac *AdminController) ResetData(c *fiber.Ctx) error {
	if err := ac.Progress.Reset(); err != nil {
		return utils.InternalServerError(c, "Could not reset progress records")
	}
	if err := ac.Log.Reset(); err != nil {
		return utils.InternalServerError(c, "Could not reset completion log")
	}
	if err := ac.Badges.Reset(); err != nil {
		return utils.InternalServerError(c, "Could not reset badges")
	}
	if err := ac.DB.Where("1 = 1").Delete(&models.PromptHistory{}).Error; err != nil {
		return utils.InternalServerError(c, "Could not reset history")
	}

	return c.JSON(fiber.Map{"reset": true})
}
