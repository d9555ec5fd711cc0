package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilyachernuha/real-time-chat/internal/auth/domain"
	repo "github.com/ilyachernuha/real-time-chat/internal/auth/repository/postgres"
	autherror "github.com/ilyachernuha/real-time-chat/internal/errors"
)

var userColumns = []string{"user_id", "is_guest", "name", "username", "hashed_password", "email"}

func TestGetUserByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("account holder", func(t *testing.T) {
		mock.ExpectQuery("SELECT u.user_id, u.is_guest, u.name").
			WithArgs("bob@example.com").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow("user-1", false, "Bob", ptr("bob"), ptr("hash"), ptr("bob@example.com")))

		user, err := r.GetUserByEmail(ctx, "bob@example.com")
		require.NoError(t, err)
		require.NotNil(t, user.Account)
		assert.Equal(t, "user-1", user.ID)
		assert.Equal(t, "bob", user.Account.Username)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT u.user_id, u.is_guest, u.name").
			WithArgs("nobody@example.com").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetUserByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT u.user_id, u.is_guest, u.name").
			WithArgs("bob@example.com").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetUserByEmail(ctx, "bob@example.com")
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByID_Guest(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	// Guests have no account_data row: the LEFT JOIN yields NULLs.
	mock.ExpectQuery("SELECT u.user_id, u.is_guest, u.name").
		WithArgs("guest-1").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow("guest-1", true, "visitor", nil, nil, nil))

	user, err := r.GetUserByID(context.Background(), "guest-1")
	require.NoError(t, err)

	assert.True(t, user.IsGuest)
	assert.Nil(t, user.Account)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGuest(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("guest-1", "visitor").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = r.CreateGuest(context.Background(), domain.NewGuestUser("guest-1", "visitor"))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE account_data SET username").
			WithArgs("user-1", "newbob").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, r.UpdateUsername(ctx, "user-1", "newbob"))
	})

	t.Run("no account row", func(t *testing.T) {
		mock.ExpectExec("UPDATE account_data SET username").
			WithArgs("ghost", "newbob").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := r.UpdateUsername(ctx, "ghost", "newbob")
		assert.ErrorIs(t, err, autherror.ErrUserNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChangePassword(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE account_data SET hashed_password").
		WithArgs("user-1", "new-hash").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("DELETE FROM sessions WHERE user_id = \\$1 AND session_id <> \\$2").
		WithArgs("user-1", "keep-session").
		WillReturnResult(pgxmock.NewResult("DELETE", 3))
	mock.ExpectCommit()

	err = r.ChangePassword(context.Background(), "user-1", "new-hash", "keep-session")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRotateSession(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("UPDATE sessions").
			WithArgs("old-hash", "new-hash", now).
			WillReturnRows(pgxmock.NewRows([]string{"session_id", "user_id", "device_info"}).
				AddRow("session-1", "user-1", "Chrome"))

		session, err := r.RotateSession(ctx, "old-hash", "new-hash", now)
		require.NoError(t, err)

		assert.Equal(t, "session-1", session.ID)
		assert.Equal(t, "new-hash", session.RefreshTokenHash)
		assert.Equal(t, now, session.LatestActivity)
	})

	t.Run("unknown hash reports replay", func(t *testing.T) {
		mock.ExpectQuery("UPDATE sessions").
			WithArgs("stale-hash", "new-hash", now).
			WillReturnError(pgx.ErrNoRows)

		session, err := r.RotateSession(ctx, "stale-hash", "new-hash", now)
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSessionsByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	now := time.Now()

	mock.ExpectQuery("SELECT session_id, user_id, refresh_token_hash").
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"session_id", "user_id", "refresh_token_hash", "device_info", "latest_activity"}).
			AddRow("s1", "user-1", "h1", "Chrome", now).
			AddRow("s2", "user-1", "h2", "Firefox", now.Add(-time.Hour)))

	sessions, err := r.ListSessionsByUser(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, sessions, 2)
	assert.Equal(t, "s1", sessions[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func ptr(s string) *string { return &s }
