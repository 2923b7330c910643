package controllers

import (
	"project/backend/config"
	"project/backend/gamification"
	"project/backend/models"
	"project/backend/storage"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type BadgesController struct {
	Cfg    *config.Config
	Badges storage.BadgeStore
}

func NewBadgesController(cfg *config.Config, badges storage.BadgeStore) *BadgesController {
	return &BadgesController{Cfg: cfg, Badges: badges}
}

// GetBadges godoc
// @Summary Get badge statuses
// @Description Returns the badge catalog with the user's unlock state
// @Tags badges
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /badges [get]
func (bc *BadgesController) GetBadges(c *fiber.Ctx) error {
	_, username, err := utils.ExtractUserFromToken(c, bc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	unlockedAt, err := bc.Badges.Unlocked(username)
	if err != nil {
		return utils.InternalServerError(c, "Could not load badges")
	}

	statuses := make([]models.BadgeStatus, 0, len(gamification.BadgeCatalog))
	for _, badge := range gamification.BadgeCatalog {
		status := models.BadgeStatus{Badge: badge}
		if at, ok := unlockedAt[badge.ID]; ok {
			status.Unlocked = true
			t := at
			status.UnlockedAt = &t
		}
		statuses = append(statuses, status)
	}

	return c.JSON(fiber.Map{"badges": statuses})
}
