package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type UpdateNameInput struct {
	NewName string `json:"new_name"`
}

func (r UpdateNameInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NewName, validation.Required, validation.Length(1, 16), validation.By(validName)),
	)
}

type UpdateUsernameInput struct {
	NewUsername string `json:"new_username"`
}

func (r UpdateUsernameInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NewUsername, validation.Required, validation.Length(2, 24),
			validation.Match(usernameRegex).Error(errUsernameCharset.Error())),
	)
}

type UpdateEmailInput struct {
	NewEmail string `json:"new_email"`
}

func (r UpdateEmailInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NewEmail, validation.Required, is.Email),
	)
}

type UpdatePasswordInput struct {
	NewPassword string `json:"new_password"`
	SessionID   string `json:"session_id"`
}

func (r UpdatePasswordInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NewPassword, validation.Required, validation.Length(8, 32),
			validation.Match(passwordRegex).Error(errPasswordCharset.Error())),
		validation.Field(&r.SessionID, validation.Required, is.UUID),
	)
}

type ResetPasswordInput struct {
	Email string `json:"email"`
}

func (r ResetPasswordInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

type FinishResetPasswordInput struct {
	ApplicationID string `json:"application_id"`
	NewPassword   string `json:"new_password"`
}

func (r FinishResetPasswordInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ApplicationID, validation.Required, is.UUID),
		validation.Field(&r.NewPassword, validation.Required, validation.Length(8, 32),
			validation.Match(passwordRegex).Error(errPasswordCharset.Error())),
	)
}

type UpgradeAccountInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r UpgradeAccountInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(2, 24),
			validation.Match(usernameRegex).Error(errUsernameCharset.Error())),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 32),
			validation.Match(passwordRegex).Error(errPasswordCharset.Error())),
	)
}

type EmailUpdateOutput struct {
	NewEmail string `json:"new_email"`
}

type SessionOutput struct {
	SessionID      string    `json:"session_id"`
	DeviceInfo     string    `json:"device_info"`
	LatestActivity time.Time `json:"latest_activity"`
}

type ActiveSessionsOutput struct {
	Sessions []SessionOutput `json:"sessions"`
}
