package service

//go:generate mockgen -destination=../../mocks/mock_password_hasher.go -package=mocks github.com/ilyachernuha/real-time-chat/internal/auth/service PasswordHasher

import (
	"golang.org/x/crypto/bcrypt"

	autherror "github.com/ilyachernuha/real-time-chat/internal/errors"
)

// PasswordHasher is injected rather than used as a package global so
// tests can swap in a cheap deterministic implementation.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// Compare never says which credential was wrong.
func (h *BcryptHasher) Compare(hashedPassword, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return autherror.ErrInvalidCredentials
	}

	return nil
}
