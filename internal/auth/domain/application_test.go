package domain

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfirmationCode(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{4}$`)

	// Leading zeros must survive: the code is a string, not a number.
	for i := 0; i < 100; i++ {
		assert.Regexp(t, pattern, NewConfirmationCode())
	}
}

func TestNewApplication(t *testing.T) {
	now := time.Now()
	app := NewApplication("app-1", now)

	assert.Equal(t, "app-1", app.ID)
	assert.Equal(t, now, app.Timestamp)
	assert.Equal(t, StatusPending, app.Status)
	assert.Zero(t, app.FailedAttempts)
	assert.Len(t, app.ConfirmationCode, 4)
}

func TestApplicationExpiredAt(t *testing.T) {
	now := time.Now()
	app := NewApplication("app-1", now)
	ttl := 15 * time.Minute

	assert.False(t, app.ExpiredAt(now, ttl))
	assert.False(t, app.ExpiredAt(now.Add(14*time.Minute), ttl))
	assert.True(t, app.ExpiredAt(now.Add(16*time.Minute), ttl))
}
