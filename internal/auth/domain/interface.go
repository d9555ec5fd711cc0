package domain

//go:generate mockgen -destination=../../mocks/mock_repositories.go -package=mocks github.com/ilyachernuha/real-time-chat/internal/auth/domain UserRepository,SessionRepository,ApplicationRepository,Notifier

import (
	"context"
	"time"
)

// UserRepository persists users and their account data. Lookups return
// (nil, nil) when no row matches.
type UserRepository interface {
	GetUserByID(ctx context.Context, userID string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	CreateGuest(ctx context.Context, user *User) error
	UpdateName(ctx context.Context, userID, name string) error
	UpdateUsername(ctx context.Context, userID, username string) error
	// ChangePassword swaps the password hash and deletes every other
	// session of the user in one transaction.
	ChangePassword(ctx context.Context, userID, newHash, keepSessionID string) error
}

// SessionRepository persists sessions keyed by id with a unique index on
// the refresh-token hash.
type SessionRepository interface {
	CreateSession(ctx context.Context, session *Session) error
	GetSessionByID(ctx context.Context, sessionID string) (*Session, error)
	// RotateSession atomically replaces oldHash with newHash and bumps
	// latest_activity. It returns (nil, nil) when no session holds
	// oldHash, which is how a replayed refresh token surfaces.
	RotateSession(ctx context.Context, oldHash, newHash string, now time.Time) (*Session, error)
	ListSessionsByUser(ctx context.Context, userID string) ([]Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteSessionsByUser(ctx context.Context, userID string) error
}

// ApplicationRepository persists the four application kinds. Every
// terminalizing method is conditional on the row still being pending
// (rollback methods on the rollback window still being open), so a
// racing sweep and confirm resolve to exactly one winner.
type ApplicationRepository interface {
	CreateRegister(ctx context.Context, app *RegisterApplication) error
	GetRegister(ctx context.Context, applicationID string) (*RegisterApplication, error)
	// FinishRegistration confirms the application, moves every other
	// pending application with the same email to confirmed_elsewhere,
	// creates the user with its account data and inserts the first
	// session, all in one transaction.
	FinishRegistration(ctx context.Context, applicationID string, user *User, session *Session) error

	CreateChangeEmail(ctx context.Context, app *ChangeEmailApplication) error
	GetChangeEmail(ctx context.Context, applicationID string) (*ChangeEmailApplication, error)
	GetPendingRollbackByOldEmail(ctx context.Context, email string) (*ChangeEmailApplication, error)
	// FinishChangeEmail confirms the application, opens the rollback
	// window and swaps the account email in one transaction.
	FinishChangeEmail(ctx context.Context, applicationID, userID, newEmail string) error
	// RollbackChangeEmail completes the rollback window, marks the
	// application rolled_back and reverts the account email in one
	// transaction.
	RollbackChangeEmail(ctx context.Context, applicationID, userID, oldEmail string) error

	CreateResetPassword(ctx context.Context, app *ResetPasswordApplication) error
	GetResetPassword(ctx context.Context, applicationID string) (*ResetPasswordApplication, error)
	// FinishResetPassword marks the application used, swaps the password
	// hash and deletes every session of the user in one transaction.
	FinishResetPassword(ctx context.Context, applicationID, userID, newHash string) error

	CreateUpgradeAccount(ctx context.Context, app *UpgradeAccountApplication) error
	GetUpgradeAccount(ctx context.Context, applicationID string) (*UpgradeAccountApplication, error)
	// FinishUpgradeAccount confirms the application and promotes the
	// guest to an account holder in one transaction.
	FinishUpgradeAccount(ctx context.Context, applicationID string, user *User) error

	// RecordFailedAttempt increments failed_attempts and flips the row
	// to failed once the limit is reached, returning the persisted
	// counter and status.
	RecordFailedAttempt(ctx context.Context, kind ApplicationKind, applicationID string) (int, ApplicationStatus, error)
	// ExpireOne performs the lazy write-on-read expiry of a single
	// still-pending application.
	ExpireOne(ctx context.Context, kind ApplicationKind, applicationID string) error
	ExpirePending(ctx context.Context, kind ApplicationKind, olderThan time.Time) (int64, error)
	ExpireRollbacks(ctx context.Context, olderThan time.Time) (int64, error)
}

// Notifier delivers confirmation codes and links out-of-band. Delivery is
// best-effort: a failure never rolls back the application it announces.
type Notifier interface {
	SendRegistrationCode(ctx context.Context, email, code, deviceInfo string) error
	SendEmailChangeCode(ctx context.Context, email, code, username string) error
	SendRollbackLink(ctx context.Context, email, applicationID, username string) error
	SendPasswordResetLink(ctx context.Context, email, applicationID string) error
}
