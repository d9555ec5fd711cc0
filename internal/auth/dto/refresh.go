package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type RefreshInput struct {
	RefreshToken string `json:"refresh_token"`
}

func (r RefreshInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RefreshToken, validation.Required),
	)
}

type TokenUpdateOutput struct {
	AccessToken     string `json:"access_token"`
	NewRefreshToken string `json:"new_refresh_token"`
}
