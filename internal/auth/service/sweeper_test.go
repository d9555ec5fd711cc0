package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ilyachernuha/real-time-chat/internal/auth/domain"
	"github.com/ilyachernuha/real-time-chat/internal/mocks"
)

func TestSweepApplications(t *testing.T) {
	ctrl := gomock.NewController(t)
	apps := mocks.NewMockApplicationRepository(ctrl)
	sweeper := NewSweeper(apps, 15*time.Minute, 72*time.Hour, time.Minute, time.Hour)

	now := time.Now()
	cutoff := now.Add(-15 * time.Minute)

	for _, kind := range applicationKinds {
		apps.EXPECT().ExpirePending(gomock.Any(), kind, cutoff).Return(int64(2), nil)
	}

	assert.NoError(t, sweeper.SweepApplications(context.Background(), now))
}

func TestSweepApplications_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	apps := mocks.NewMockApplicationRepository(ctrl)
	sweeper := NewSweeper(apps, 15*time.Minute, 72*time.Hour, time.Minute, time.Hour)

	apps.EXPECT().ExpirePending(gomock.Any(), domain.KindRegister, gomock.Any()).
		Return(int64(0), errors.New("db down"))

	assert.Error(t, sweeper.SweepApplications(context.Background(), time.Now()))
}

func TestSweepRollbacks(t *testing.T) {
	ctrl := gomock.NewController(t)
	apps := mocks.NewMockApplicationRepository(ctrl)
	sweeper := NewSweeper(apps, 15*time.Minute, 72*time.Hour, time.Minute, time.Hour)

	now := time.Now()
	apps.EXPECT().ExpireRollbacks(gomock.Any(), now.Add(-72*time.Hour)).Return(int64(1), nil)

	assert.NoError(t, sweeper.SweepRollbacks(context.Background(), now))
}

// Re-running a sweep over already-expired rows is a no-op: the
// conditional updates simply match nothing.
func TestSweep_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	apps := mocks.NewMockApplicationRepository(ctrl)
	sweeper := NewSweeper(apps, 15*time.Minute, 72*time.Hour, time.Minute, time.Hour)

	now := time.Now()
	for _, kind := range applicationKinds {
		apps.EXPECT().ExpirePending(gomock.Any(), kind, gomock.Any()).Return(int64(0), nil).Times(2)
	}

	assert.NoError(t, sweeper.SweepApplications(context.Background(), now))
	assert.NoError(t, sweeper.SweepApplications(context.Background(), now))
}
