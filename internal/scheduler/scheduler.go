// Package scheduler runs the periodic job that re-scrapes stale candidate
// profiles so stored data stays within the freshness window.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultBatchSize limits how many stale profiles a single sweep refreshes.
const DefaultBatchSize = 25

// Refresher re-scrapes profiles older than the given window.
type Refresher interface {
	RefreshStale(ctx context.Context, window time.Duration, limit int) (int, error)
}

// Scheduler wraps robfig/cron and manages the refresh loop.
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	window    time.Duration
	batchSize int
	spec      string
}

// New creates a Scheduler that fires every intervalHours hours and refreshes
// profiles older than window.
func New(refresher Refresher, window time.Duration, intervalHours int) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithLogger(cron.DefaultLogger)),
		refresher: refresher,
		window:    window,
		batchSize: DefaultBatchSize,
		spec:      fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runRefresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to register refresh job: %w", err)
	}

	s.cron.Start()
	log.Printf("[SCHEDULER] Started, spec: %s, window: %s", s.spec, s.window)
	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[SCHEDULER] Stopped")
}

func (s *Scheduler) runRefresh(ctx context.Context) {
	log.Println("[SCHEDULER] Refresh cycle started")

	count, err := s.refresher.RefreshStale(ctx, s.window, s.batchSize)
	if err != nil {
		log.Printf("[SCHEDULER] Refresh failed: %v", err)
		return
	}

	if count == 0 {
		log.Println("[SCHEDULER] No stale profiles to refresh")
		return
	}
	log.Printf("[SCHEDULER] Refreshed %d profile(s)", count)
}
