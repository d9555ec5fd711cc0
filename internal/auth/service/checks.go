package service

import (
	"context"

	"github.com/ilyachernuha/real-time-chat/internal/auth/domain"
	autherror "github.com/ilyachernuha/real-time-chat/internal/errors"
)

// checkUsernameAvailable and checkEmailAvailable run both at creation
// and again inside the confirmation flow: the underlying uniqueness
// facts may have changed between the two. The database constraints stay
// the last line of defense against a concurrent committer.

func checkUsernameAvailable(ctx context.Context, users domain.UserRepository, username string) error {
	user, err := users.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user != nil {
		return autherror.NewFieldError("username", autherror.ErrUsernameTaken)
	}

	return nil
}

// An email is unavailable while an account holds it, and also while a
// confirmed email change away from it still has an open rollback window:
// the previous owner may reclaim it until the window closes.
func checkEmailAvailable(ctx context.Context, users domain.UserRepository, apps domain.ApplicationRepository, email string) error {
	user, err := users.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user != nil {
		return autherror.NewFieldError("email", autherror.ErrEmailTaken)
	}

	app, err := apps.GetPendingRollbackByOldEmail(ctx, email)
	if err != nil {
		return err
	}
	if app != nil {
		return autherror.NewFieldError("email", autherror.ErrEmailReserved)
	}

	return nil
}
