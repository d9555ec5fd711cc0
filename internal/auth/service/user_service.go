package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/ilyachernuha/real-time-chat/internal/auth/domain"
	"github.com/ilyachernuha/real-time-chat/internal/auth/dto"
	autherror "github.com/ilyachernuha/real-time-chat/internal/errors"
)

type UserService struct {
	users    domain.UserRepository
	sessions *SessionService
	hasher   PasswordHasher
}

func NewUserService(users domain.UserRepository, sessions *SessionService, hasher PasswordHasher) *UserService {
	return &UserService{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
	}
}

// Authenticate resolves HTTP Basic credentials to a user. The login is
// treated as an email when it parses as one, a username otherwise.
// Every failure is the same vague error: callers never learn whether
// the login or the password was wrong.
func (s *UserService) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	var user *domain.User
	var err error

	if dto.IsEmail(login) {
		user, err = s.users.GetUserByEmail(ctx, login)
	} else {
		user, err = s.users.GetUserByUsername(ctx, login)
	}
	if err != nil {
		return nil, err
	}
	if user == nil || user.Account == nil {
		return nil, autherror.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.Account.HashedPassword, password); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.SuccessfulLoginOutput, error) {
	user, err := s.Authenticate(ctx, input.Login, input.Password)
	if err != nil {
		return nil, err
	}

	deviceInfo := input.DeviceInfo
	if deviceInfo == "" {
		deviceInfo = "Unknown"
	}

	return s.sessions.Open(ctx, user, deviceInfo)
}

// GuestLogin creates a nameless-account user on the spot. Guests hold
// sessions like anyone else; only account data is missing.
func (s *UserService) GuestLogin(ctx context.Context, input dto.GuestLoginInput) (*dto.SuccessfulLoginOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	guest := domain.NewGuestUser(uuid.NewString(), input.Name)
	if err := s.users.CreateGuest(ctx, guest); err != nil {
		return nil, err
	}

	return s.sessions.Open(ctx, guest, input.DeviceInfo)
}

func (s *UserService) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	return user, nil
}

func (s *UserService) ChangeName(ctx context.Context, userID string, input dto.UpdateNameInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	return s.users.UpdateName(ctx, userID, input.NewName)
}

func (s *UserService) ChangeUsername(ctx context.Context, user *domain.User, input dto.UpdateUsernameInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := checkUsernameAvailable(ctx, s.users, input.NewUsername); err != nil {
		return err
	}

	return s.users.UpdateUsername(ctx, user.ID, input.NewUsername)
}

// ChangePassword re-hashes and revokes every other session in one unit;
// only the session that performed the change survives.
func (s *UserService) ChangePassword(ctx context.Context, user *domain.User, input dto.UpdatePasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	newHash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	return s.users.ChangePassword(ctx, user.ID, newHash, input.SessionID)
}
