package errors

import (
	"errors"
	"fmt"
)

// State errors map to an application's current status.
var (
	ErrApplicationNotFound     = errors.New("application not found")
	ErrApplicationExpired      = errors.New("application expired")
	ErrApplicationAlreadyUsed  = errors.New("application already used")
	ErrTooManyFailedAttempts   = errors.New("too many failed attempts")
	ErrInvalidConfirmationCode = errors.New("incorrect confirmation code")
	ErrRollbackUnavailable     = errors.New("application is not confirmed")
	ErrRollbackExpired         = errors.New("rollback time expired")
	ErrAlreadyRolledBack       = errors.New("application already rolled back")
)

// Authentication errors stay vague about which credential was wrong,
// but are precise about token failures.
var (
	ErrInvalidCredentials  = errors.New("incorrect login or password")
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenInvalid        = errors.New("invalid token")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

var (
	ErrUsernameTaken      = errors.New("this username is taken")
	ErrEmailTaken         = errors.New("account with this email already exists")
	ErrEmailReserved      = errors.New("this email is temporarily reserved")
	ErrAccountNotFound    = errors.New("account with this login does not exist")
	ErrEmailNotFound      = errors.New("account with this email does not exist")
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionForbidden   = errors.New("session belongs to another user")
	ErrNotGuest           = errors.New("this account is not a guest")
	ErrGuestAccount       = errors.New("this is a guest account")
	ErrNotificationFailed = errors.New("failed to send notification email")
)

// FieldError attaches the offending field name to a validation or
// conflict error so callers can report it next to the input.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func NewFieldError(field string, err error) *FieldError {
	return &FieldError{Field: field, Err: err}
}
