package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ilyachernuha/real-time-chat/internal/auth/domain"
	"github.com/ilyachernuha/real-time-chat/internal/auth/dto"
	"github.com/ilyachernuha/real-time-chat/internal/auth/service"
)

type AuthHandler struct {
	userService        *service.UserService
	sessionService     *service.SessionService
	applicationService *service.ApplicationService
	tokens             service.TokenGenerator
}

func NewAuthHandler(
	userService *service.UserService,
	sessionService *service.SessionService,
	applicationService *service.ApplicationService,
	tokens service.TokenGenerator,
) *AuthHandler {
	return &AuthHandler{
		userService:        userService,
		sessionService:     sessionService,
		applicationService: applicationService,
		tokens:             tokens,
	}
}

// authenticate resolves the bearer access token to the user and session
// it was minted for.
func (h *AuthHandler) authenticate(c *fiber.Ctx) (string, string, error) {
	token, err := bearerToken(c)
	if err != nil {
		return "", "", err
	}

	return h.tokens.VerifyAccessToken(token)
}

// authenticateBasic resolves HTTP Basic credentials to a full user.
func (h *AuthHandler) authenticateBasic(c *fiber.Ctx) (*domain.User, error) {
	login, password, err := basicCredentials(c)
	if err != nil {
		return nil, err
	}

	return h.userService.Authenticate(c.Context(), login, password)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	out, err := h.applicationService.CreateRegister(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *AuthHandler) ConfirmRegister(c *fiber.Ctx) error {
	var input dto.ConfirmApplicationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	out, err := h.applicationService.ConfirmRegister(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	login, password, err := basicCredentials(c)
	if err != nil {
		return writeError(c, err)
	}

	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	input.Login = login
	input.Password = password

	out, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) GuestLogin(c *fiber.Ctx) error {
	var input dto.GuestLoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	out, err := h.userService.GuestLogin(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	out, err := h.sessionService.Refresh(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}
