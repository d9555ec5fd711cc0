package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	api := app.Group("/api/v1")

	api.Post("/register", h.Register)
	api.Post("/register/confirm", h.ConfirmRegister)
	api.Post("/login", h.Login)
	api.Post("/guest-login", h.GuestLogin)
	api.Post("/token/refresh", h.Refresh)

	account := api.Group("/account")
	account.Put("/name", h.ChangeName)
	account.Put("/username", h.ChangeUsername)
	account.Post("/email", h.ChangeEmail)
	account.Post("/email/confirm", h.ConfirmChangeEmail)
	account.Post("/email/rollback/:id", h.RollbackEmailChange)
	account.Put("/password", h.ChangePassword)
	account.Post("/upgrade", h.UpgradeAccount)
	account.Post("/upgrade/confirm", h.ConfirmUpgradeAccount)

	api.Post("/password-reset", h.ResetPassword)
	api.Get("/password-reset/:id", h.CheckResetPassword)
	api.Post("/password-reset/confirm", h.FinishResetPassword)

	api.Get("/sessions", h.ListSessions)
	api.Delete("/sessions/:id", h.CloseSession)
}
