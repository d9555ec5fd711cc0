package dto

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var (
	errUsernameCharset  = errors.New("can have only English letters and numbers")
	errPasswordCharset  = errors.New("can have only ASCII symbols excluding whitespace")
	errNameWhitespace   = errors.New("cannot consist of whitespace only")
	errNameControlChars = errors.New("cannot contain control or non-displayable characters")
)

type RegisterInput struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	DeviceInfo string `json:"device_info"`
}

func (r RegisterInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(2, 24),
			validation.Match(usernameRegex).Error(errUsernameCharset.Error())),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 32),
			validation.Match(passwordRegex).Error(errPasswordCharset.Error())),
	)
}

type ConfirmApplicationInput struct {
	ApplicationID    string `json:"application_id"`
	ConfirmationCode string `json:"confirmation_code"`
}

func (r ConfirmApplicationInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ApplicationID, validation.Required, is.UUID),
		validation.Field(&r.ConfirmationCode, validation.Required, validation.Length(4, 4), is.Digit),
	)
}

// ApplicationCreatedOutput reports the new application and whether the
// confirmation email actually went out. A failed delivery does not
// invalidate the application.
type ApplicationCreatedOutput struct {
	ApplicationID string `json:"application_id"`
	EmailSent     bool   `json:"email_sent"`
}

type SuccessfulLoginOutput struct {
	UserID       string `json:"user_id"`
	SessionID    string `json:"session_id"`
	RefreshToken string `json:"refresh_token"`
	AccessToken  string `json:"access_token"`
}
