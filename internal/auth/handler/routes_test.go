package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilyachernuha/real-time-chat/internal/auth/domain"
)

// TestRegisterRoutes verifies every route is mounted: a mounted route
// never answers 404 or 405, whatever else it does with the request.
func TestRegisterRoutes(t *testing.T) {
	f := newHandlerFixture(t)

	// The two lookup-by-path endpoints reach the repository even for a
	// probe request; give them something that is not a 404.
	f.apps.EXPECT().GetChangeEmail(gomock.Any(), gomock.Any()).
		Return(&domain.ChangeEmailApplication{
			Application:    domain.Application{ID: "some-id", Timestamp: time.Now(), Status: domain.StatusRolledBack},
			RollbackStatus: domain.RollbackCompleted,
		}, nil).AnyTimes()
	f.apps.EXPECT().GetResetPassword(gomock.Any(), gomock.Any()).
		Return(&domain.ResetPasswordApplication{
			Application: domain.Application{ID: "some-id", Timestamp: time.Now(), Status: domain.StatusPending},
		}, nil).AnyTimes()

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/register"},
		{http.MethodPost, "/api/v1/register/confirm"},
		{http.MethodPost, "/api/v1/login"},
		{http.MethodPost, "/api/v1/guest-login"},
		{http.MethodPost, "/api/v1/token/refresh"},
		{http.MethodPut, "/api/v1/account/name"},
		{http.MethodPut, "/api/v1/account/username"},
		{http.MethodPost, "/api/v1/account/email"},
		{http.MethodPost, "/api/v1/account/email/confirm"},
		{http.MethodPost, "/api/v1/account/email/rollback/some-id"},
		{http.MethodPut, "/api/v1/account/password"},
		{http.MethodPost, "/api/v1/account/upgrade"},
		{http.MethodPost, "/api/v1/account/upgrade/confirm"},
		{http.MethodPost, "/api/v1/password-reset"},
		{http.MethodGet, "/api/v1/password-reset/some-id"},
		{http.MethodPost, "/api/v1/password-reset/confirm"},
		{http.MethodGet, "/api/v1/sessions"},
		{http.MethodDelete, "/api/v1/sessions/some-id"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s %s", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := f.app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
			assert.NotEqual(t, http.StatusMethodNotAllowed, resp.StatusCode)
		})
	}
}
