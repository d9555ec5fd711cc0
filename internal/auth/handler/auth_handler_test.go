package handler_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilyachernuha/real-time-chat/internal/auth/domain"
	"github.com/ilyachernuha/real-time-chat/internal/auth/handler"
	"github.com/ilyachernuha/real-time-chat/internal/auth/service"
	autherror "github.com/ilyachernuha/real-time-chat/internal/errors"
	"github.com/ilyachernuha/real-time-chat/internal/mocks"
)

type handlerFixture struct {
	users    *mocks.MockUserRepository
	sessions *mocks.MockSessionRepository
	apps     *mocks.MockApplicationRepository
	tokens   *mocks.MockTokenGenerator
	hasher   *mocks.MockPasswordHasher
	notifier *mocks.MockNotifier
	app      *fiber.App
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	ctrl := gomock.NewController(t)

	f := &handlerFixture{
		users:    mocks.NewMockUserRepository(ctrl),
		sessions: mocks.NewMockSessionRepository(ctrl),
		apps:     mocks.NewMockApplicationRepository(ctrl),
		tokens:   mocks.NewMockTokenGenerator(ctrl),
		hasher:   mocks.NewMockPasswordHasher(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
	}

	sessionService := service.NewSessionService(f.sessions, f.tokens)
	userService := service.NewUserService(f.users, sessionService, f.hasher)
	applicationService := service.NewApplicationService(
		f.apps, f.users, f.sessions, f.tokens, f.hasher, f.notifier,
		15*time.Minute, 72*time.Hour)

	f.app = fiber.New()
	handler.RegisterRoutes(f.app, handler.NewAuthHandler(userService, sessionService, applicationService, f.tokens))

	return f
}

func (f *handlerFixture) request(t *testing.T, method, path string, body any, header map[string]string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range header {
		req.Header.Set(key, value)
	}

	resp, err := f.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}

	return resp.StatusCode, decoded
}

func basicAuth(login, password string) map[string]string {
	return map[string]string{
		"Authorization": "Basic " + base64.StdEncoding.EncodeToString([]byte(login+":"+password)),
	}
}

func bearerAuth(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.users.EXPECT().GetUserByUsername(gomock.Any(), "newuser").Return(nil, nil)
		f.users.EXPECT().GetUserByEmail(gomock.Any(), "new@example.com").Return(nil, nil)
		f.apps.EXPECT().GetPendingRollbackByOldEmail(gomock.Any(), "new@example.com").Return(nil, nil)
		f.hasher.EXPECT().Hash("password123").Return("hashed", nil)
		f.apps.EXPECT().CreateRegister(gomock.Any(), gomock.Any()).Return(nil)
		f.notifier.EXPECT().SendRegistrationCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		status, body := f.request(t, "POST", "/api/v1/register", fiber.Map{
			"username":    "newuser",
			"email":       "new@example.com",
			"password":    "password123",
			"device_info": "Chrome",
		}, nil)

		assert.Equal(t, fiber.StatusCreated, status)
		assert.NotEmpty(t, body["application_id"])
		assert.Equal(t, true, body["email_sent"])
	})

	t.Run("validation error names the field", func(t *testing.T) {
		f := newHandlerFixture(t)

		status, body := f.request(t, "POST", "/api/v1/register", fiber.Map{
			"username": "u!",
			"email":    "new@example.com",
			"password": "password123",
		}, nil)

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "username", body["field"])
	})

	t.Run("taken username is a conflict", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.users.EXPECT().GetUserByUsername(gomock.Any(), "taken").
			Return(domain.NewRegisteredUser(uuid.NewString(), "x", "taken", "h", "x@example.com"), nil)

		status, body := f.request(t, "POST", "/api/v1/register", fiber.Map{
			"username": "taken",
			"email":    "new@example.com",
			"password": "password123",
		}, nil)

		assert.Equal(t, fiber.StatusConflict, status)
		assert.Equal(t, "username", body["field"])
	})
}

func TestConfirmRegisterEndpoint(t *testing.T) {
	appID := uuid.NewString()

	newPendingRegister := func() *domain.RegisterApplication {
		app := &domain.RegisterApplication{
			Application: domain.Application{
				ID:               appID,
				Timestamp:        time.Now(),
				ConfirmationCode: "1234",
				Status:           domain.StatusPending,
			},
		}
		return app
	}

	t.Run("wrong code", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.apps.EXPECT().GetRegister(gomock.Any(), appID).Return(newPendingRegister(), nil)
		f.apps.EXPECT().RecordFailedAttempt(gomock.Any(), domain.KindRegister, appID).
			Return(1, domain.StatusPending, nil)

		status, _ := f.request(t, "POST", "/api/v1/register/confirm", fiber.Map{
			"application_id":    appID,
			"confirmation_code": "0000",
		}, nil)

		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("expired application is forbidden", func(t *testing.T) {
		f := newHandlerFixture(t)

		app := newPendingRegister()
		app.Status = domain.StatusExpired
		f.apps.EXPECT().GetRegister(gomock.Any(), appID).Return(app, nil)

		status, _ := f.request(t, "POST", "/api/v1/register/confirm", fiber.Map{
			"application_id":    appID,
			"confirmation_code": "1234",
		}, nil)

		assert.Equal(t, fiber.StatusForbidden, status)
	})

	t.Run("unknown application", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.apps.EXPECT().GetRegister(gomock.Any(), appID).Return(nil, nil)

		status, _ := f.request(t, "POST", "/api/v1/register/confirm", fiber.Map{
			"application_id":    appID,
			"confirmation_code": "1234",
		}, nil)

		assert.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		f := newHandlerFixture(t)

		status, _ := f.request(t, "POST", "/api/v1/login", nil, nil)
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("success", func(t *testing.T) {
		f := newHandlerFixture(t)

		user := domain.NewRegisteredUser(uuid.NewString(), "bob", "bob", "stored-hash", "bob@example.com")
		f.users.EXPECT().GetUserByUsername(gomock.Any(), "bob").Return(user, nil)
		f.hasher.EXPECT().Compare("stored-hash", "password123").Return(nil)
		f.tokens.EXPECT().GenerateRefreshToken().Return("raw-refresh", nil)
		f.tokens.EXPECT().HashRefreshToken("raw-refresh").Return("refresh-hash")
		f.sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil)
		f.tokens.EXPECT().GenerateAccessToken(user.ID, gomock.Any()).Return("access", nil)

		status, body := f.request(t, "POST", "/api/v1/login", nil, basicAuth("bob", "password123"))

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "raw-refresh", body["refresh_token"])
		assert.Equal(t, "access", body["access_token"])
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newHandlerFixture(t)

		user := domain.NewRegisteredUser(uuid.NewString(), "bob", "bob", "stored-hash", "bob@example.com")
		f.users.EXPECT().GetUserByUsername(gomock.Any(), "bob").Return(user, nil)
		f.hasher.EXPECT().Compare("stored-hash", "wrong-password").Return(autherror.ErrInvalidCredentials)

		status, _ := f.request(t, "POST", "/api/v1/login", nil, basicAuth("bob", "wrong-password"))
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})
}

func TestRefreshEndpoint_Replay(t *testing.T) {
	f := newHandlerFixture(t)

	f.tokens.EXPECT().GenerateRefreshToken().Return("new-raw", nil)
	f.tokens.EXPECT().HashRefreshToken("stolen").Return("stolen-hash")
	f.tokens.EXPECT().HashRefreshToken("new-raw").Return("new-hash")
	f.sessions.EXPECT().RotateSession(gomock.Any(), "stolen-hash", "new-hash", gomock.Any()).Return(nil, nil)

	status, _ := f.request(t, "POST", "/api/v1/token/refresh", fiber.Map{"refresh_token": "stolen"}, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestSessionsEndpoint(t *testing.T) {
	t.Run("requires bearer token", func(t *testing.T) {
		f := newHandlerFixture(t)

		status, _ := f.request(t, "GET", "/api/v1/sessions", nil, nil)
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("lists own sessions", func(t *testing.T) {
		f := newHandlerFixture(t)

		userID := uuid.NewString()
		f.tokens.EXPECT().VerifyAccessToken("token").Return(userID, "session-1", nil)
		f.sessions.EXPECT().ListSessionsByUser(gomock.Any(), userID).Return([]domain.Session{
			{ID: "session-1", UserID: userID, DeviceInfo: "Chrome", LatestActivity: time.Now()},
		}, nil)

		status, body := f.request(t, "GET", "/api/v1/sessions", nil, bearerAuth("token"))

		assert.Equal(t, fiber.StatusOK, status)
		sessions, ok := body["sessions"].([]any)
		require.True(t, ok)
		assert.Len(t, sessions, 1)
	})

	t.Run("closing a foreign session is forbidden", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.tokens.EXPECT().VerifyAccessToken("token").Return("user-1", "session-1", nil)
		f.sessions.EXPECT().GetSessionByID(gomock.Any(), "other-session").
			Return(&domain.Session{ID: "other-session", UserID: "somebody-else"}, nil)

		status, _ := f.request(t, "DELETE", "/api/v1/sessions/other-session", nil, bearerAuth("token"))
		assert.Equal(t, fiber.StatusForbidden, status)
	})
}

func TestRollbackEndpoint(t *testing.T) {
	appID := uuid.NewString()

	t.Run("completed window", func(t *testing.T) {
		f := newHandlerFixture(t)

		app := &domain.ChangeEmailApplication{
			Application: domain.Application{
				ID:        appID,
				Timestamp: time.Now(),
				Status:    domain.StatusRolledBack,
			},
			RollbackStatus: domain.RollbackCompleted,
		}
		f.apps.EXPECT().GetChangeEmail(gomock.Any(), appID).Return(app, nil)

		status, _ := f.request(t, "POST", "/api/v1/account/email/rollback/"+appID, nil, nil)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("open window succeeds", func(t *testing.T) {
		f := newHandlerFixture(t)

		app := &domain.ChangeEmailApplication{
			Application: domain.Application{
				ID:        appID,
				Timestamp: time.Now(),
				Status:    domain.StatusConfirmed,
			},
			UserID:         "user-1",
			OldEmail:       "old@example.com",
			RollbackStatus: domain.RollbackPending,
		}
		f.apps.EXPECT().GetChangeEmail(gomock.Any(), appID).Return(app, nil)
		f.apps.EXPECT().RollbackChangeEmail(gomock.Any(), appID, "user-1", "old@example.com").Return(nil)

		status, _ := f.request(t, "POST", "/api/v1/account/email/rollback/"+appID, nil, nil)
		assert.Equal(t, fiber.StatusNoContent, status)
	})
}
