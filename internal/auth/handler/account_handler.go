package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ilyachernuha/real-time-chat/internal/auth/dto"
)

func (h *AuthHandler) ChangeName(c *fiber.Ctx) error {
	userID, _, err := h.authenticate(c)
	if err != nil {
		return writeError(c, err)
	}

	var input dto.UpdateNameInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.userService.ChangeName(c.Context(), userID, input); err != nil {
		return writeError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) ChangeUsername(c *fiber.Ctx) error {
	user, err := h.authenticateBasic(c)
	if err != nil {
		return writeError(c, err)
	}

	var input dto.UpdateUsernameInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.userService.ChangeUsername(c.Context(), user, input); err != nil {
		return writeError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) ChangeEmail(c *fiber.Ctx) error {
	user, err := h.authenticateBasic(c)
	if err != nil {
		return writeError(c, err)
	}

	var input dto.UpdateEmailInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	out, err := h.applicationService.CreateChangeEmail(c.Context(), user, input)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *AuthHandler) ConfirmChangeEmail(c *fiber.Ctx) error {
	var input dto.ConfirmApplicationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	out, err := h.applicationService.ConfirmChangeEmail(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

// RollbackEmailChange needs no credentials: the application id arrives
// by email to the old address, and holding it is the authorization.
func (h *AuthHandler) RollbackEmailChange(c *fiber.Ctx) error {
	if err := h.applicationService.RollbackEmailChange(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	user, err := h.authenticateBasic(c)
	if err != nil {
		return writeError(c, err)
	}

	var input dto.UpdatePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.userService.ChangePassword(c.Context(), user, input); err != nil {
		return writeError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	sent, err := h.applicationService.CreateResetPassword(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"email_sent": sent})
}

// CheckResetPassword backs the reset form: it reports whether the
// application is still usable without consuming it.
func (h *AuthHandler) CheckResetPassword(c *fiber.Ctx) error {
	if err := h.applicationService.CheckResetPassword(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) FinishResetPassword(c *fiber.Ctx) error {
	var input dto.FinishResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.applicationService.FinishResetPassword(c.Context(), input); err != nil {
		return writeError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) UpgradeAccount(c *fiber.Ctx) error {
	userID, sessionID, err := h.authenticate(c)
	if err != nil {
		return writeError(c, err)
	}

	var input dto.UpgradeAccountInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	out, err := h.applicationService.CreateUpgradeAccount(c.Context(), userID, sessionID, input)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *AuthHandler) ConfirmUpgradeAccount(c *fiber.Ctx) error {
	userID, _, err := h.authenticate(c)
	if err != nil {
		return writeError(c, err)
	}

	var input dto.ConfirmApplicationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.applicationService.ConfirmUpgradeAccount(c.Context(), userID, input); err != nil {
		return writeError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
