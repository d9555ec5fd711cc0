package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/ilyachernuha/real-time-chat/internal/auth/domain"
	"github.com/ilyachernuha/real-time-chat/internal/auth/dto"
	autherror "github.com/ilyachernuha/real-time-chat/internal/errors"
)

// ApplicationService owns the pending→terminal state machines of the
// four application kinds. The four confirm flows share one gate
// (checkConfirmable) and one code check (verifyConfirmationCode); what
// differs per kind is the payload and the side effect committed with
// the confirmation.
type ApplicationService struct {
	apps           domain.ApplicationRepository
	users          domain.UserRepository
	sessions       domain.SessionRepository
	tokens         TokenGenerator
	hasher         PasswordHasher
	notifier       domain.Notifier
	applicationTTL time.Duration
	rollbackTTL    time.Duration
}

func NewApplicationService(
	apps domain.ApplicationRepository,
	users domain.UserRepository,
	sessions domain.SessionRepository,
	tokens TokenGenerator,
	hasher PasswordHasher,
	notifier domain.Notifier,
	applicationTTL, rollbackTTL time.Duration,
) *ApplicationService {
	return &ApplicationService{
		apps:           apps,
		users:          users,
		sessions:       sessions,
		tokens:         tokens,
		hasher:         hasher,
		notifier:       notifier,
		applicationTTL: applicationTTL,
		rollbackTTL:    rollbackTTL,
	}
}

// checkConfirmable gates a submission on the application's current
// status. A pending row past its TTL is expired on the spot
// (write-on-read) rather than waiting for the sweeper; the conditional
// update makes a racing sweep harmless.
func (s *ApplicationService) checkConfirmable(ctx context.Context, kind domain.ApplicationKind, app *domain.Application) error {
	switch app.Status {
	case domain.StatusPending:
	case domain.StatusExpired:
		return autherror.ErrApplicationExpired
	case domain.StatusFailed:
		return autherror.ErrTooManyFailedAttempts
	default:
		return autherror.ErrApplicationAlreadyUsed
	}

	if app.ExpiredAt(time.Now(), s.applicationTTL) {
		if err := s.apps.ExpireOne(ctx, kind, app.ID); err != nil {
			return err
		}

		return autherror.ErrApplicationExpired
	}

	return nil
}

// verifyConfirmationCode persists every miss before reporting it, so the
// 3-strike lockout survives restarts. The attempt that reaches the limit
// reports the lockout, not a plain mismatch.
func (s *ApplicationService) verifyConfirmationCode(ctx context.Context, kind domain.ApplicationKind, app *domain.Application, submitted string) error {
	if app.ConfirmationCode == submitted {
		return nil
	}

	_, status, err := s.apps.RecordFailedAttempt(ctx, kind, app.ID)
	if err != nil {
		return err
	}
	if status == domain.StatusFailed {
		return autherror.ErrTooManyFailedAttempts
	}

	return autherror.ErrInvalidConfirmationCode
}

// notify delivers best-effort: the application is already committed, so
// a failed delivery is logged and reported without rolling anything back.
func (s *ApplicationService) notify(send func() error) bool {
	if err := send(); err != nil {
		log.Printf("warn: %v: %v", autherror.ErrNotificationFailed, err)
		return false
	}

	return true
}

// Registration

func (s *ApplicationService) CreateRegister(ctx context.Context, input dto.RegisterInput) (*dto.ApplicationCreatedOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := checkUsernameAvailable(ctx, s.users, input.Username); err != nil {
		return nil, err
	}
	if err := checkEmailAvailable(ctx, s.users, s.apps, input.Email); err != nil {
		return nil, err
	}

	hashedPassword, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	app := &domain.RegisterApplication{
		Application:    domain.NewApplication(uuid.NewString(), time.Now()),
		Username:       input.Username,
		Email:          input.Email,
		HashedPassword: hashedPassword,
		DeviceInfo:     input.DeviceInfo,
	}
	if err := s.apps.CreateRegister(ctx, app); err != nil {
		return nil, err
	}

	sent := s.notify(func() error {
		return s.notifier.SendRegistrationCode(ctx, app.Email, app.ConfirmationCode, app.DeviceInfo)
	})

	return &dto.ApplicationCreatedOutput{ApplicationID: app.ID, EmailSent: sent}, nil
}

// ConfirmRegister turns a confirmed application into a user plus its
// first session. Availability is re-checked here: the world may have
// changed since the application was created.
func (s *ApplicationService) ConfirmRegister(ctx context.Context, input dto.ConfirmApplicationInput) (*dto.SuccessfulLoginOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	app, err := s.apps.GetRegister(ctx, input.ApplicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, autherror.ErrApplicationNotFound
	}

	if err := s.checkConfirmable(ctx, domain.KindRegister, &app.Application); err != nil {
		return nil, err
	}
	if err := s.verifyConfirmationCode(ctx, domain.KindRegister, &app.Application, input.ConfirmationCode); err != nil {
		return nil, err
	}

	if err := checkUsernameAvailable(ctx, s.users, app.Username); err != nil {
		return nil, err
	}
	if err := checkEmailAvailable(ctx, s.users, s.apps, app.Email); err != nil {
		return nil, err
	}

	user := domain.NewRegisteredUser(uuid.NewString(), app.Username, app.Username, app.HashedPassword, app.Email)

	refreshToken, err := s.tokens.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:               uuid.NewString(),
		UserID:           user.ID,
		RefreshTokenHash: s.tokens.HashRefreshToken(refreshToken),
		DeviceInfo:       app.DeviceInfo,
		LatestActivity:   time.Now(),
	}

	if err := s.apps.FinishRegistration(ctx, app.ID, user, session); err != nil {
		return nil, err
	}

	accessToken, err := s.tokens.GenerateAccessToken(user.ID, session.ID)
	if err != nil {
		return nil, err
	}

	return &dto.SuccessfulLoginOutput{
		UserID:       user.ID,
		SessionID:    session.ID,
		RefreshToken: refreshToken,
		AccessToken:  accessToken,
	}, nil
}

// Email change

func (s *ApplicationService) CreateChangeEmail(ctx context.Context, user *domain.User, input dto.UpdateEmailInput) (*dto.ApplicationCreatedOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if user.Account == nil {
		return nil, autherror.ErrGuestAccount
	}

	if err := checkEmailAvailable(ctx, s.users, s.apps, input.NewEmail); err != nil {
		return nil, err
	}

	app := &domain.ChangeEmailApplication{
		Application:    domain.NewApplication(uuid.NewString(), time.Now()),
		UserID:         user.ID,
		OldEmail:       user.Account.Email,
		NewEmail:       input.NewEmail,
		RollbackStatus: domain.RollbackUnavailable,
	}
	if err := s.apps.CreateChangeEmail(ctx, app); err != nil {
		return nil, err
	}

	sent := s.notify(func() error {
		return s.notifier.SendEmailChangeCode(ctx, app.NewEmail, app.ConfirmationCode, user.Account.Username)
	})

	return &dto.ApplicationCreatedOutput{ApplicationID: app.ID, EmailSent: sent}, nil
}

// ConfirmChangeEmail swaps the account email and opens the 72-hour
// rollback window in one atomic unit, then offers the previous owner a
// rollback link.
func (s *ApplicationService) ConfirmChangeEmail(ctx context.Context, input dto.ConfirmApplicationInput) (*dto.EmailUpdateOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	app, err := s.apps.GetChangeEmail(ctx, input.ApplicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, autherror.ErrApplicationNotFound
	}

	if err := s.checkConfirmable(ctx, domain.KindChangeEmail, &app.Application); err != nil {
		return nil, err
	}
	if err := s.verifyConfirmationCode(ctx, domain.KindChangeEmail, &app.Application, input.ConfirmationCode); err != nil {
		return nil, err
	}

	if err := checkEmailAvailable(ctx, s.users, s.apps, app.NewEmail); err != nil {
		return nil, err
	}

	if err := s.apps.FinishChangeEmail(ctx, app.ID, app.UserID, app.NewEmail); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, app.UserID)
	if err != nil {
		return nil, err
	}

	username := ""
	if user != nil && user.Account != nil {
		username = user.Account.Username
	}
	s.notify(func() error {
		return s.notifier.SendRollbackLink(ctx, app.OldEmail, app.ID, username)
	})

	return &dto.EmailUpdateOutput{NewEmail: app.NewEmail}, nil
}

// RollbackEmailChange reverts a confirmed change while its window is
// open. Possession of the application id (delivered to the old address)
// is the authorization.
func (s *ApplicationService) RollbackEmailChange(ctx context.Context, applicationID string) error {
	app, err := s.apps.GetChangeEmail(ctx, applicationID)
	if err != nil {
		return err
	}
	if app == nil {
		return autherror.ErrApplicationNotFound
	}

	switch app.RollbackStatus {
	case domain.RollbackPending:
	case domain.RollbackCompleted:
		return autherror.ErrAlreadyRolledBack
	case domain.RollbackExpired:
		return autherror.ErrRollbackExpired
	default:
		return autherror.ErrRollbackUnavailable
	}

	if app.ExpiredAt(time.Now(), s.rollbackTTL) {
		if _, err := s.apps.ExpireRollbacks(ctx, time.Now().Add(-s.rollbackTTL)); err != nil {
			return err
		}

		return autherror.ErrRollbackExpired
	}

	return s.apps.RollbackChangeEmail(ctx, app.ID, app.UserID, app.OldEmail)
}

// Password reset

// CreateResetPassword never reveals the application id to the caller:
// the id itself is the secret and travels only by email.
func (s *ApplicationService) CreateResetPassword(ctx context.Context, input dto.ResetPasswordInput) (bool, error) {
	if err := input.Validate(); err != nil {
		return false, err
	}

	user, err := s.users.GetUserByEmail(ctx, input.Email)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, autherror.ErrEmailNotFound
	}
	if user.IsGuest {
		return false, autherror.ErrGuestAccount
	}

	app := &domain.ResetPasswordApplication{
		Application: domain.NewApplication(uuid.NewString(), time.Now()),
		UserID:      user.ID,
	}
	// No confirmation code: possession of the id is the single factor.
	app.ConfirmationCode = ""

	if err := s.apps.CreateResetPassword(ctx, app); err != nil {
		return false, err
	}

	sent := s.notify(func() error {
		return s.notifier.SendPasswordResetLink(ctx, input.Email, app.ID)
	})

	return sent, nil
}

// CheckResetPassword reports whether an application is still usable,
// without consuming it. Backs the reset form lookup.
func (s *ApplicationService) CheckResetPassword(ctx context.Context, applicationID string) error {
	app, err := s.apps.GetResetPassword(ctx, applicationID)
	if err != nil {
		return err
	}
	if app == nil {
		return autherror.ErrApplicationNotFound
	}

	return s.checkConfirmable(ctx, domain.KindResetPassword, &app.Application)
}

func (s *ApplicationService) FinishResetPassword(ctx context.Context, input dto.FinishResetPasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	app, err := s.apps.GetResetPassword(ctx, input.ApplicationID)
	if err != nil {
		return err
	}
	if app == nil {
		return autherror.ErrApplicationNotFound
	}

	if err := s.checkConfirmable(ctx, domain.KindResetPassword, &app.Application); err != nil {
		return err
	}

	newHash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	return s.apps.FinishResetPassword(ctx, app.ID, app.UserID, newHash)
}

// Account upgrade

func (s *ApplicationService) CreateUpgradeAccount(ctx context.Context, userID, sessionID string, input dto.UpgradeAccountInput) (*dto.ApplicationCreatedOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkIsGuest(ctx, userID); err != nil {
		return nil, err
	}
	if err := checkUsernameAvailable(ctx, s.users, input.Username); err != nil {
		return nil, err
	}
	if err := checkEmailAvailable(ctx, s.users, s.apps, input.Email); err != nil {
		return nil, err
	}

	hashedPassword, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	app := &domain.UpgradeAccountApplication{
		Application:    domain.NewApplication(uuid.NewString(), time.Now()),
		UserID:         userID,
		Username:       input.Username,
		Email:          input.Email,
		HashedPassword: hashedPassword,
	}
	if err := s.apps.CreateUpgradeAccount(ctx, app); err != nil {
		return nil, err
	}

	deviceInfo := ""
	if session, err := s.sessions.GetSessionByID(ctx, sessionID); err == nil && session != nil {
		deviceInfo = session.DeviceInfo
	}
	sent := s.notify(func() error {
		return s.notifier.SendRegistrationCode(ctx, app.Email, app.ConfirmationCode, deviceInfo)
	})

	return &dto.ApplicationCreatedOutput{ApplicationID: app.ID, EmailSent: sent}, nil
}

func (s *ApplicationService) ConfirmUpgradeAccount(ctx context.Context, userID string, input dto.ConfirmApplicationInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	app, err := s.apps.GetUpgradeAccount(ctx, input.ApplicationID)
	if err != nil {
		return err
	}
	if app == nil {
		return autherror.ErrApplicationNotFound
	}

	if err := s.checkConfirmable(ctx, domain.KindUpgradeAccount, &app.Application); err != nil {
		return err
	}
	if err := s.verifyConfirmationCode(ctx, domain.KindUpgradeAccount, &app.Application, input.ConfirmationCode); err != nil {
		return err
	}

	if err := checkUsernameAvailable(ctx, s.users, app.Username); err != nil {
		return err
	}
	if err := checkEmailAvailable(ctx, s.users, s.apps, app.Email); err != nil {
		return err
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}
	if err := user.Upgrade(app.Username, app.HashedPassword, app.Email); err != nil {
		return err
	}

	return s.apps.FinishUpgradeAccount(ctx, app.ID, user)
}

func (s *ApplicationService) checkIsGuest(ctx context.Context, userID string) error {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}
	if !user.IsGuest {
		return autherror.ErrNotGuest
	}

	return nil
}
