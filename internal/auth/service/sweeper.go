package service

import (
	"context"
	"log"
	"time"

	"github.com/ilyachernuha/real-time-chat/internal/auth/domain"
)

var applicationKinds = []domain.ApplicationKind{
	domain.KindRegister,
	domain.KindChangeEmail,
	domain.KindResetPassword,
	domain.KindUpgradeAccount,
}

// Sweeper is the single source of truth for the expired status: it
// periodically bulk-transitions stale pending applications and stale
// rollback windows. Both sweeps are conditional updates, so re-running
// them is a no-op on rows that already reached a terminal state.
type Sweeper struct {
	apps                domain.ApplicationRepository
	applicationTTL      time.Duration
	rollbackTTL         time.Duration
	applicationInterval time.Duration
	rollbackInterval    time.Duration
}

func NewSweeper(apps domain.ApplicationRepository, applicationTTL, rollbackTTL, applicationInterval, rollbackInterval time.Duration) *Sweeper {
	return &Sweeper{
		apps:                apps,
		applicationTTL:      applicationTTL,
		rollbackTTL:         rollbackTTL,
		applicationInterval: applicationInterval,
		rollbackInterval:    rollbackInterval,
	}
}

// SweepApplications expires every pending application older than the
// TTL across all four kinds.
func (s *Sweeper) SweepApplications(ctx context.Context, now time.Time) error {
	cutoff := now.Add(-s.applicationTTL)
	for _, kind := range applicationKinds {
		if _, err := s.apps.ExpirePending(ctx, kind, cutoff); err != nil {
			return err
		}
	}

	return nil
}

func (s *Sweeper) SweepRollbacks(ctx context.Context, now time.Time) error {
	_, err := s.apps.ExpireRollbacks(ctx, now.Add(-s.rollbackTTL))
	return err
}

// Run starts the two sweep loops and blocks until the context is done.
func (s *Sweeper) Run(ctx context.Context) {
	go s.loop(ctx, s.applicationInterval, s.SweepApplications)
	s.loop(ctx, s.rollbackInterval, s.SweepRollbacks)
}

func (s *Sweeper) loop(ctx context.Context, interval time.Duration, sweep func(context.Context, time.Time) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if err := sweep(ctx, now); err != nil {
				log.Printf("warn: sweep failed: %v", err)
			}
		}
	}
}
