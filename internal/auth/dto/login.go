package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// LoginInput carries HTTP Basic credentials extracted by the handler.
// Login is a username or an email; which one is decided server-side.
type LoginInput struct {
	Login      string `json:"-"`
	Password   string `json:"-"`
	DeviceInfo string `json:"device_info"`
}

type GuestLoginInput struct {
	Name       string `json:"name"`
	DeviceInfo string `json:"device_info"`
}

func (r GuestLoginInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 16), validation.By(validName)),
	)
}

// IsEmail reports whether the login identifier should be treated as an
// email address rather than a username.
func IsEmail(login string) bool {
	return is.Email.Validate(login) == nil
}
