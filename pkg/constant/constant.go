package constant

import "time"

const (
	// MaxFailedAttempts is the number of wrong confirmation codes an
	// application tolerates before it is locked out.
	MaxFailedAttempts = 3

	// ConfirmationCodeModulo bounds the 4-digit numeric confirmation code.
	ConfirmationCodeModulo = 10000

	// RefreshTokenBytes is the entropy of an opaque refresh token.
	RefreshTokenBytes = 64

	DefaultAccessTokenExpiry = 15 * time.Minute
	DefaultApplicationTTL    = 15 * time.Minute
	DefaultRollbackTTL       = 72 * time.Hour
	DefaultApplicationSweep  = 1 * time.Minute
	DefaultRollbackSweep     = 1 * time.Hour
)
