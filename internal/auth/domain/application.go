package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/ilyachernuha/real-time-chat/pkg/constant"
)

// ApplicationKind selects one of the four application state machines.
// The repository maps it to the backing table.
type ApplicationKind string

const (
	KindRegister       ApplicationKind = "register"
	KindChangeEmail    ApplicationKind = "change_email"
	KindResetPassword  ApplicationKind = "reset_password"
	KindUpgradeAccount ApplicationKind = "upgrade_account"
)

type ApplicationStatus string

const (
	StatusPending            ApplicationStatus = "pending"
	StatusConfirmed          ApplicationStatus = "confirmed"
	StatusConfirmedElsewhere ApplicationStatus = "confirmed_elsewhere"
	StatusFailed             ApplicationStatus = "failed"
	StatusExpired            ApplicationStatus = "expired"
	StatusRolledBack         ApplicationStatus = "rolled_back"
	StatusUsed               ApplicationStatus = "used"
)

// RollbackStatus tracks the independent rollback window of a confirmed
// email change. It only leaves "unavailable" when the change is confirmed.
type RollbackStatus string

const (
	RollbackUnavailable RollbackStatus = "unavailable"
	RollbackPending     RollbackStatus = "pending"
	RollbackCompleted   RollbackStatus = "completed"
	RollbackExpired     RollbackStatus = "expired"
)

// Application is the shared core of the four variants: an ephemeral,
// code-confirmed record authorizing one identity mutation. Status only
// ever moves forward; a terminal row is never rewritten back to pending.
type Application struct {
	ID               string
	Timestamp        time.Time
	ConfirmationCode string
	FailedAttempts   int
	Status           ApplicationStatus
}

// ExpiredAt reports whether the application's validity window has
// logically elapsed, regardless of what the store says.
func (a *Application) ExpiredAt(now time.Time, ttl time.Duration) bool {
	return now.After(a.Timestamp.Add(ttl))
}

type RegisterApplication struct {
	Application
	Username       string
	Email          string
	HashedPassword string
	DeviceInfo     string
}

type ChangeEmailApplication struct {
	Application
	UserID         string
	OldEmail       string
	NewEmail       string
	RollbackStatus RollbackStatus
}

// ResetPasswordApplication carries no confirmation code: possession of
// the opaque application id, delivered only by email, is the single factor.
type ResetPasswordApplication struct {
	Application
	UserID string
}

type UpgradeAccountApplication struct {
	Application
	UserID         string
	Username       string
	Email          string
	HashedPassword string
}

// NewConfirmationCode draws a fresh 4-digit numeric code from 0000-9999.
func NewConfirmationCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(constant.ConfirmationCodeModulo))
	if err != nil {
		// crypto/rand only fails when the platform entropy source is broken.
		panic(err)
	}

	return fmt.Sprintf("%04d", n.Int64())
}

func NewApplication(id string, now time.Time) Application {
	return Application{
		ID:               id,
		Timestamp:        now,
		ConfirmationCode: NewConfirmationCode(),
		FailedAttempts:   0,
		Status:           StatusPending,
	}
}
