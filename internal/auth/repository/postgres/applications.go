package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ilyachernuha/real-time-chat/internal/auth/domain"
	autherror "github.com/ilyachernuha/real-time-chat/internal/errors"
	"github.com/ilyachernuha/real-time-chat/pkg/constant"
)

func applicationTable(kind domain.ApplicationKind) string {
	switch kind {
	case domain.KindRegister:
		return "register_applications"
	case domain.KindChangeEmail:
		return "change_email_applications"
	case domain.KindResetPassword:
		return "reset_password_applications"
	case domain.KindUpgradeAccount:
		return "upgrade_account_applications"
	default:
		panic(fmt.Sprintf("unknown application kind %q", kind))
	}
}

// row is satisfied by both pool and transaction query methods.
type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// classifyStatus re-reads an application after a conditional update
// matched zero rows and maps its current status to the state error the
// caller must report. This is the confirm-vs-sweep tie-break: whoever
// committed first decided the row's fate.
func classifyStatus(ctx context.Context, q queryRower, table, applicationID string) error {
	var status domain.ApplicationStatus

	err := q.QueryRow(ctx,
		`SELECT status FROM `+table+` WHERE application_id = $1`, applicationID,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return autherror.ErrApplicationNotFound
		}

		return fmt.Errorf("failed to read application status: %w", err)
	}

	switch status {
	case domain.StatusExpired:
		return autherror.ErrApplicationExpired
	case domain.StatusFailed:
		return autherror.ErrTooManyFailedAttempts
	default:
		return autherror.ErrApplicationAlreadyUsed
	}
}

// Register applications

func (r *PostgresRepository) CreateRegister(ctx context.Context, app *domain.RegisterApplication) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO register_applications
			(application_id, username, email, hashed_password, device_info,
			 timestamp, confirmation_code, failed_attempts, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, app.ID, app.Username, app.Email, app.HashedPassword, app.DeviceInfo,
		app.Timestamp, app.ConfirmationCode, app.FailedAttempts, app.Status)
	if err != nil {
		return fmt.Errorf("failed to create register application: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetRegister(ctx context.Context, applicationID string) (*domain.RegisterApplication, error) {
	row := r.db.QueryRow(ctx, `
		SELECT application_id, username, email, hashed_password, device_info,
		       timestamp, confirmation_code, failed_attempts, status
		FROM register_applications
		WHERE application_id = $1
	`, applicationID)

	var app domain.RegisterApplication
	err := row.Scan(&app.ID, &app.Username, &app.Email, &app.HashedPassword, &app.DeviceInfo,
		&app.Timestamp, &app.ConfirmationCode, &app.FailedAttempts, &app.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get register application: %w", err)
	}

	return &app, nil
}

// FinishRegistration is the atomic unit behind a confirmed registration:
// the winner is confirmed, every other pending application for the same
// email becomes confirmed_elsewhere, and the user plus its first session
// come into existence together. Any failure rolls the whole unit back.
func (r *PostgresRepository) FinishRegistration(ctx context.Context, applicationID string, user *domain.User, session *domain.Session) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE register_applications SET status = $2
		WHERE application_id = $1 AND status = $3
	`, applicationID, domain.StatusConfirmed, domain.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to confirm register application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return classifyStatus(ctx, tx, "register_applications", applicationID)
	}

	_, err = tx.Exec(ctx, `
		UPDATE register_applications SET status = $3
		WHERE email = (SELECT email FROM register_applications WHERE application_id = $1)
		  AND status = $2 AND application_id <> $1
	`, applicationID, domain.StatusPending, domain.StatusConfirmedElsewhere)
	if err != nil {
		return fmt.Errorf("failed to invalidate sibling applications: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO users (user_id, is_guest, name) VALUES ($1, FALSE, $2)
	`, user.ID, user.Name)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO account_data (user_id, username, hashed_password, email)
		VALUES ($1, $2, $3, $4)
	`, user.ID, user.Account.Username, user.Account.HashedPassword, user.Account.Email)
	if err != nil {
		return mapUniqueViolation(err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO sessions (session_id, user_id, refresh_token_hash, device_info, latest_activity)
		VALUES ($1, $2, $3, $4, $5)
	`, session.ID, session.UserID, session.RefreshTokenHash, session.DeviceInfo, session.LatestActivity)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return tx.Commit(ctx)
}

// Change-email applications

func (r *PostgresRepository) CreateChangeEmail(ctx context.Context, app *domain.ChangeEmailApplication) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO change_email_applications
			(application_id, user_id, old_email, new_email,
			 timestamp, confirmation_code, failed_attempts, status, rollback_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, app.ID, app.UserID, app.OldEmail, app.NewEmail,
		app.Timestamp, app.ConfirmationCode, app.FailedAttempts, app.Status, app.RollbackStatus)
	if err != nil {
		return fmt.Errorf("failed to create change email application: %w", err)
	}

	return nil
}

const selectChangeEmail = `
	SELECT application_id, user_id, old_email, new_email,
	       timestamp, confirmation_code, failed_attempts, status, rollback_status
	FROM change_email_applications
`

func (r *PostgresRepository) scanChangeEmail(row pgx.Row) (*domain.ChangeEmailApplication, error) {
	var app domain.ChangeEmailApplication
	err := row.Scan(&app.ID, &app.UserID, &app.OldEmail, &app.NewEmail,
		&app.Timestamp, &app.ConfirmationCode, &app.FailedAttempts, &app.Status, &app.RollbackStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get change email application: %w", err)
	}

	return &app, nil
}

func (r *PostgresRepository) GetChangeEmail(ctx context.Context, applicationID string) (*domain.ChangeEmailApplication, error) {
	return r.scanChangeEmail(r.db.QueryRow(ctx, selectChangeEmail+` WHERE application_id = $1`, applicationID))
}

// GetPendingRollbackByOldEmail finds the application that keeps an email
// address reserved while its rollback window is still open.
func (r *PostgresRepository) GetPendingRollbackByOldEmail(ctx context.Context, email string) (*domain.ChangeEmailApplication, error) {
	return r.scanChangeEmail(r.db.QueryRow(ctx,
		selectChangeEmail+` WHERE old_email = $1 AND rollback_status = $2`,
		email, domain.RollbackPending))
}

func (r *PostgresRepository) FinishChangeEmail(ctx context.Context, applicationID, userID, newEmail string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE change_email_applications SET status = $2, rollback_status = $3
		WHERE application_id = $1 AND status = $4
	`, applicationID, domain.StatusConfirmed, domain.RollbackPending, domain.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to confirm change email application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return classifyStatus(ctx, tx, "change_email_applications", applicationID)
	}

	_, err = tx.Exec(ctx, `UPDATE account_data SET email = $2 WHERE user_id = $1`, userID, newEmail)
	if err != nil {
		return mapUniqueViolation(err)
	}

	return tx.Commit(ctx)
}

// RollbackChangeEmail reverts a confirmed email change. The conditional
// update on rollback_status makes a second rollback, an expired window
// and an unconfirmed application all lose the race in one place.
func (r *PostgresRepository) RollbackChangeEmail(ctx context.Context, applicationID, userID, oldEmail string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE change_email_applications SET status = $2, rollback_status = $3
		WHERE application_id = $1 AND rollback_status = $4
	`, applicationID, domain.StatusRolledBack, domain.RollbackCompleted, domain.RollbackPending)
	if err != nil {
		return fmt.Errorf("failed to roll back change email application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.classifyRollback(ctx, tx, applicationID)
	}

	_, err = tx.Exec(ctx, `UPDATE account_data SET email = $2 WHERE user_id = $1`, userID, oldEmail)
	if err != nil {
		return mapUniqueViolation(err)
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) classifyRollback(ctx context.Context, q queryRower, applicationID string) error {
	var status domain.RollbackStatus

	err := q.QueryRow(ctx,
		`SELECT rollback_status FROM change_email_applications WHERE application_id = $1`, applicationID,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return autherror.ErrApplicationNotFound
		}

		return fmt.Errorf("failed to read rollback status: %w", err)
	}

	switch status {
	case domain.RollbackCompleted:
		return autherror.ErrAlreadyRolledBack
	case domain.RollbackExpired:
		return autherror.ErrRollbackExpired
	default:
		return autherror.ErrRollbackUnavailable
	}
}

// Reset-password applications

func (r *PostgresRepository) CreateResetPassword(ctx context.Context, app *domain.ResetPasswordApplication) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reset_password_applications (application_id, user_id, timestamp, status)
		VALUES ($1, $2, $3, $4)
	`, app.ID, app.UserID, app.Timestamp, app.Status)
	if err != nil {
		return fmt.Errorf("failed to create reset password application: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetResetPassword(ctx context.Context, applicationID string) (*domain.ResetPasswordApplication, error) {
	row := r.db.QueryRow(ctx, `
		SELECT application_id, user_id, timestamp, status
		FROM reset_password_applications
		WHERE application_id = $1
	`, applicationID)

	var app domain.ResetPasswordApplication
	err := row.Scan(&app.ID, &app.UserID, &app.Timestamp, &app.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get reset password application: %w", err)
	}

	return &app, nil
}

// FinishResetPassword marks the application used, swaps the password and
// revokes every session: after a reset no session is trustworthy.
func (r *PostgresRepository) FinishResetPassword(ctx context.Context, applicationID, userID, newHash string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE reset_password_applications SET status = $2
		WHERE application_id = $1 AND status = $3
	`, applicationID, domain.StatusUsed, domain.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to mark reset password application used: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return classifyStatus(ctx, tx, "reset_password_applications", applicationID)
	}

	tag, err = tx.Exec(ctx, `UPDATE account_data SET hashed_password = $2 WHERE user_id = $1`, userID, newHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrUserNotFound
	}

	_, err = tx.Exec(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}

	return tx.Commit(ctx)
}

// Upgrade-account applications

func (r *PostgresRepository) CreateUpgradeAccount(ctx context.Context, app *domain.UpgradeAccountApplication) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO upgrade_account_applications
			(application_id, user_id, username, email, hashed_password,
			 timestamp, confirmation_code, failed_attempts, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, app.ID, app.UserID, app.Username, app.Email, app.HashedPassword,
		app.Timestamp, app.ConfirmationCode, app.FailedAttempts, app.Status)
	if err != nil {
		return fmt.Errorf("failed to create upgrade account application: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetUpgradeAccount(ctx context.Context, applicationID string) (*domain.UpgradeAccountApplication, error) {
	row := r.db.QueryRow(ctx, `
		SELECT application_id, user_id, username, email, hashed_password,
		       timestamp, confirmation_code, failed_attempts, status
		FROM upgrade_account_applications
		WHERE application_id = $1
	`, applicationID)

	var app domain.UpgradeAccountApplication
	err := row.Scan(&app.ID, &app.UserID, &app.Username, &app.Email, &app.HashedPassword,
		&app.Timestamp, &app.ConfirmationCode, &app.FailedAttempts, &app.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get upgrade account application: %w", err)
	}

	return &app, nil
}

// FinishUpgradeAccount confirms the application and promotes the guest:
// is_guest flips and the account data row appears in the same unit.
func (r *PostgresRepository) FinishUpgradeAccount(ctx context.Context, applicationID string, user *domain.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE upgrade_account_applications SET status = $2
		WHERE application_id = $1 AND status = $3
	`, applicationID, domain.StatusConfirmed, domain.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to confirm upgrade account application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return classifyStatus(ctx, tx, "upgrade_account_applications", applicationID)
	}

	tag, err = tx.Exec(ctx, `UPDATE users SET is_guest = FALSE WHERE user_id = $1 AND is_guest`, user.ID)
	if err != nil {
		return fmt.Errorf("failed to promote guest user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrNotGuest
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO account_data (user_id, username, hashed_password, email)
		VALUES ($1, $2, $3, $4)
	`, user.ID, user.Account.Username, user.Account.HashedPassword, user.Account.Email)
	if err != nil {
		return mapUniqueViolation(err)
	}

	return tx.Commit(ctx)
}

// Shared state-machine operations

// RecordFailedAttempt persists the incremented counter before the error
// is reported, so lockout state survives restarts. The row flips to
// failed exactly when the counter reaches the limit.
func (r *PostgresRepository) RecordFailedAttempt(ctx context.Context, kind domain.ApplicationKind, applicationID string) (int, domain.ApplicationStatus, error) {
	table := applicationTable(kind)

	row := r.db.QueryRow(ctx, `
		UPDATE `+table+`
		SET failed_attempts = failed_attempts + 1,
		    status = CASE WHEN failed_attempts + 1 >= $2 THEN 'failed' ELSE status END
		WHERE application_id = $1 AND status = $3
		RETURNING failed_attempts, status
	`, applicationID, constant.MaxFailedAttempts, domain.StatusPending)

	var attempts int
	var status domain.ApplicationStatus
	if err := row.Scan(&attempts, &status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, "", classifyStatus(ctx, r.db, table, applicationID)
		}

		return 0, "", fmt.Errorf("failed to record failed attempt: %w", err)
	}

	return attempts, status, nil
}

// ExpireOne is the write-on-read half of expiry: a reader that noticed a
// logically stale pending row persists the transition itself instead of
// waiting for the sweeper. Racing with the sweeper is harmless since
// both updates are conditional on the row still being pending.
func (r *PostgresRepository) ExpireOne(ctx context.Context, kind domain.ApplicationKind, applicationID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE `+applicationTable(kind)+` SET status = $2
		WHERE application_id = $1 AND status = $3
	`, applicationID, domain.StatusExpired, domain.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to expire application: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ExpirePending(ctx context.Context, kind domain.ApplicationKind, olderThan time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE `+applicationTable(kind)+` SET status = $2
		WHERE status = $3 AND timestamp < $1
	`, olderThan, domain.StatusExpired, domain.StatusPending)
	if err != nil {
		return 0, fmt.Errorf("failed to expire pending applications: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *PostgresRepository) ExpireRollbacks(ctx context.Context, olderThan time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE change_email_applications SET rollback_status = $2
		WHERE rollback_status = $3 AND timestamp < $1
	`, olderThan, domain.RollbackExpired, domain.RollbackPending)
	if err != nil {
		return 0, fmt.Errorf("failed to expire rollback windows: %w", err)
	}

	return tag.RowsAffected(), nil
}
