package handler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *AuthHandler) ListSessions(c *fiber.Ctx) error {
	userID, _, err := h.authenticate(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.sessionService.List(c.Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) CloseSession(c *fiber.Ctx) error {
	userID, _, err := h.authenticate(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.sessionService.Close(c.Context(), userID, c.Params("id")); err != nil {
		return writeError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
