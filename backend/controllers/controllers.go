package controllers

import (
	"errors"
	"project/backend/gamification"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// engineError maps the engine's error taxonomy onto HTTP statuses:
// invalid input is the caller's fault, storage failures are ours.
func engineError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gamification.ErrInvalidInput) {
		return utils.Error(c, fiber.StatusBadRequest, err)
	}
	if errors.Is(err, gamification.ErrStorage) {
		return utils.InternalServerError(c, "Could not access storage")
	}
	return utils.Error(c, fiber.StatusInternalServerError, err)
}
