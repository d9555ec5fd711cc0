package handler

import (
	"encoding/base64"
	"errors"
	"log"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"

	autherror "github.com/ilyachernuha/real-time-chat/internal/errors"
)

// writeError maps the error taxonomy onto HTTP statuses. Validation and
// conflict responses name the offending field; everything unrecognized
// is a logged 500 with a generic body.
func writeError(c *fiber.Ctx, err error) error {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		field, msg := firstValidationError(verrs)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg, "field": field})
	}

	var fieldErr *autherror.FieldError
	if errors.As(err, &fieldErr) {
		status := fiber.StatusBadRequest
		if errors.Is(err, autherror.ErrUsernameTaken) ||
			errors.Is(err, autherror.ErrEmailTaken) ||
			errors.Is(err, autherror.ErrEmailReserved) {
			status = fiber.StatusConflict
		}

		return c.Status(status).JSON(fiber.Map{"error": fieldErr.Err.Error(), "field": fieldErr.Field})
	}

	switch {
	case errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrTokenExpired),
		errors.Is(err, autherror.ErrTokenInvalid),
		errors.Is(err, autherror.ErrInvalidRefreshToken):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, autherror.ErrApplicationNotFound),
		errors.Is(err, autherror.ErrAccountNotFound),
		errors.Is(err, autherror.ErrEmailNotFound),
		errors.Is(err, autherror.ErrUserNotFound),
		errors.Is(err, autherror.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, autherror.ErrApplicationExpired),
		errors.Is(err, autherror.ErrSessionForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, autherror.ErrTooManyFailedAttempts),
		errors.Is(err, autherror.ErrInvalidConfirmationCode),
		errors.Is(err, autherror.ErrApplicationAlreadyUsed),
		errors.Is(err, autherror.ErrRollbackUnavailable),
		errors.Is(err, autherror.ErrRollbackExpired),
		errors.Is(err, autherror.ErrAlreadyRolledBack),
		errors.Is(err, autherror.ErrNotGuest),
		errors.Is(err, autherror.ErrGuestAccount):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, autherror.ErrUsernameTaken),
		errors.Is(err, autherror.ErrEmailTaken),
		errors.Is(err, autherror.ErrEmailReserved):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}

	log.Printf("internal error: %v", err)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "unexpected server error"})
}

func firstValidationError(verrs validation.Errors) (string, string) {
	fields := make([]string, 0, len(verrs))
	for field := range verrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	if len(fields) == 0 {
		return "", "invalid input"
	}

	return fields[0], verrs[fields[0]].Error()
}

// basicCredentials extracts HTTP Basic credentials from the request.
func basicCredentials(c *fiber.Ctx) (string, string, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Basic ") {
		return "", "", autherror.ErrInvalidCredentials
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, "Basic "))
	if err != nil {
		return "", "", autherror.ErrInvalidCredentials
	}

	login, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", autherror.ErrInvalidCredentials
	}

	return login, password, nil
}

// bearerToken extracts the raw token from an Authorization header.
func bearerToken(c *fiber.Ctx) (string, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return "", autherror.ErrTokenInvalid
	}

	return strings.TrimPrefix(header, "Bearer "), nil
}
