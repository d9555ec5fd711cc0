package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterInputValidate(t *testing.T) {
	valid := RegisterInput{
		Username: "newuser",
		Email:    "new@example.com",
		Password: "password123",
	}

	tests := []struct {
		name   string
		mutate func(*RegisterInput)
		ok     bool
	}{
		{"valid", func(*RegisterInput) {}, true},
		{"username too short", func(r *RegisterInput) { r.Username = "u" }, false},
		{"username too long", func(r *RegisterInput) { r.Username = "abcdefghijklmnopqrstuvwxy" }, false},
		{"username with symbols", func(r *RegisterInput) { r.Username = "new_user!" }, false},
		{"username with cyrillic", func(r *RegisterInput) { r.Username = "пользователь" }, false},
		{"bad email", func(r *RegisterInput) { r.Email = "not-an-email" }, false},
		{"password too short", func(r *RegisterInput) { r.Password = "short1" }, false},
		{"password with space", func(r *RegisterInput) { r.Password = "pass word123" }, false},
		{"password all printable ascii", func(r *RegisterInput) { r.Password = "p@ss!w0rd#$%^&*()" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)

			err := input.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestConfirmApplicationInputValidate(t *testing.T) {
	tests := []struct {
		name  string
		appID string
		code  string
		ok    bool
	}{
		{"valid", "3c8647d4-0537-4b40-b81c-24fff6ef8bb7", "0042", true},
		{"not a uuid", "some-id", "0042", false},
		{"code too short", "3c8647d4-0537-4b40-b81c-24fff6ef8bb7", "42", false},
		{"code with letters", "3c8647d4-0537-4b40-b81c-24fff6ef8bb7", "12ab", false},
		{"missing code", "3c8647d4-0537-4b40-b81c-24fff6ef8bb7", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ConfirmApplicationInput{ApplicationID: tt.appID, ConfirmationCode: tt.code}.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestGuestLoginInputValidate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"valid", "visitor", true},
		{"with space inside", "cool visitor", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"control characters", "bad\x01name", false},
		{"too long", "abcdefghijklmnopq", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GuestLoginInput{Name: tt.value}.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("bob@example.com"))
	assert.False(t, IsEmail("bob"))
	assert.False(t, IsEmail("bob@"))
}
