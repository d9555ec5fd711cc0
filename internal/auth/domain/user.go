package domain

import (
	"time"

	autherror "github.com/ilyachernuha/real-time-chat/internal/errors"
)

// User is the identity anchor. A guest has no account data; a registered
// user always has it. The two are mutually exclusive, enforced by the
// constructors and Upgrade below.
type User struct {
	ID      string
	IsGuest bool
	Name    string
	Account *AccountData
}

// AccountData is owned 1:1 by a non-guest user.
type AccountData struct {
	UserID         string
	Username       string
	HashedPassword string
	Email          string
}

// Session is one authenticated device. The raw refresh token is never
// stored; only its hash, which doubles as the rotation lookup key.
type Session struct {
	ID               string
	UserID           string
	RefreshTokenHash string
	DeviceInfo       string
	LatestActivity   time.Time
}

func NewRegisteredUser(id, name, username, hashedPassword, email string) *User {
	return &User{
		ID:      id,
		IsGuest: false,
		Name:    name,
		Account: &AccountData{
			UserID:         id,
			Username:       username,
			HashedPassword: hashedPassword,
			Email:          email,
		},
	}
}

func NewGuestUser(id, name string) *User {
	return &User{
		ID:      id,
		IsGuest: true,
		Name:    name,
	}
}

// Upgrade turns a guest into an account holder. It is the only legal
// transition between the two variants.
func (u *User) Upgrade(username, hashedPassword, email string) error {
	if !u.IsGuest {
		return autherror.ErrNotGuest
	}

	u.IsGuest = false
	u.Account = &AccountData{
		UserID:         u.ID,
		Username:       username,
		HashedPassword: hashedPassword,
		Email:          email,
	}

	return nil
}
