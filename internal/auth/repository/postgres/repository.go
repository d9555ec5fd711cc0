package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ilyachernuha/real-time-chat/internal/auth/domain"
	autherror "github.com/ilyachernuha/real-time-chat/internal/errors"
)

// DB is the subset of pgxpool.Pool the repository needs. pgxmock pools
// satisfy it too, which keeps the tests driver-free.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// mapUniqueViolation turns a unique-constraint violation into the
// conflict error for the field that caused it, so a concurrent insert
// losing the race reports "taken" instead of an opaque driver error.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "account_data_username_key":
			return autherror.NewFieldError("username", autherror.ErrUsernameTaken)
		case "account_data_email_key":
			return autherror.NewFieldError("email", autherror.ErrEmailTaken)
		}
	}

	return err
}

const selectUser = `
	SELECT u.user_id, u.is_guest, u.name, a.username, a.hashed_password, a.email
	FROM users u
	LEFT JOIN account_data a ON a.user_id = u.user_id
`

func (r *PostgresRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var username, hashedPassword, email *string

	err := row.Scan(&user.ID, &user.IsGuest, &user.Name, &username, &hashedPassword, &email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	if username != nil {
		user.Account = &domain.AccountData{
			UserID:         user.ID,
			Username:       *username,
			HashedPassword: *hashedPassword,
			Email:          *email,
		}
	}

	return &user, nil
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.scanUser(r.db.QueryRow(ctx, selectUser+` WHERE u.user_id = $1`, userID))
}

func (r *PostgresRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.scanUser(r.db.QueryRow(ctx, selectUser+` WHERE a.username = $1`, username))
}

func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanUser(r.db.QueryRow(ctx, selectUser+` WHERE a.email = $1`, email))
}

func (r *PostgresRepository) CreateGuest(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (user_id, is_guest, name)
		VALUES ($1, TRUE, $2)
	`, user.ID, user.Name)
	if err != nil {
		return fmt.Errorf("failed to create guest user: %w", err)
	}

	return nil
}

func (r *PostgresRepository) UpdateName(ctx context.Context, userID, name string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET name = $2 WHERE user_id = $1`, userID, name)
	if err != nil {
		return fmt.Errorf("failed to update name: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrUserNotFound
	}

	return nil
}

func (r *PostgresRepository) UpdateUsername(ctx context.Context, userID, username string) error {
	tag, err := r.db.Exec(ctx, `UPDATE account_data SET username = $2 WHERE user_id = $1`, userID, username)
	if err != nil {
		return mapUniqueViolation(err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrUserNotFound
	}

	return nil
}

// ChangePassword swaps the hash and revokes every other session in one
// transaction: the session performing the change is the only survivor.
func (r *PostgresRepository) ChangePassword(ctx context.Context, userID, newHash, keepSessionID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `UPDATE account_data SET hashed_password = $2 WHERE user_id = $1`, userID, newHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrUserNotFound
	}

	_, err = tx.Exec(ctx, `DELETE FROM sessions WHERE user_id = $1 AND session_id <> $2`, userID, keepSessionID)
	if err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}

	return tx.Commit(ctx)
}

// Sessions

func (r *PostgresRepository) CreateSession(ctx context.Context, session *domain.Session) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sessions (session_id, user_id, refresh_token_hash, device_info, latest_activity)
		VALUES ($1, $2, $3, $4, $5)
	`, session.ID, session.UserID, session.RefreshTokenHash, session.DeviceInfo, session.LatestActivity)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	row := r.db.QueryRow(ctx, `
		SELECT session_id, user_id, refresh_token_hash, device_info, latest_activity
		FROM sessions
		WHERE session_id = $1
	`, sessionID)

	var s domain.Session
	err := row.Scan(&s.ID, &s.UserID, &s.RefreshTokenHash, &s.DeviceInfo, &s.LatestActivity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &s, nil
}

// Rotate replaces the stored hash in a single conditional update. Zero
// matched rows means the old raw token has already been rotated away
// (or never existed); the caller treats that as an invalid token.
func (r *PostgresRepository) RotateSession(ctx context.Context, oldHash, newHash string, now time.Time) (*domain.Session, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE sessions
		SET refresh_token_hash = $2, latest_activity = $3
		WHERE refresh_token_hash = $1
		RETURNING session_id, user_id, device_info
	`, oldHash, newHash, now)

	var s domain.Session
	err := row.Scan(&s.ID, &s.UserID, &s.DeviceInfo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	s.RefreshTokenHash = newHash
	s.LatestActivity = now

	return &s, nil
}

func (r *PostgresRepository) ListSessionsByUser(ctx context.Context, userID string) ([]domain.Session, error) {
	rows, err := r.db.Query(ctx, `
		SELECT session_id, user_id, refresh_token_hash, device_info, latest_activity
		FROM sessions
		WHERE user_id = $1
		ORDER BY latest_activity DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.RefreshTokenHash, &s.DeviceInfo, &s.LatestActivity); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

func (r *PostgresRepository) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (r *PostgresRepository) DeleteSessionsByUser(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}

	return nil
}
