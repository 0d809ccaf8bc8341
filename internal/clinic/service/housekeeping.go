package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/robfig/cron/v3"
)

// DefaultHousekeepingSchedule runs session cleanup at the top of every hour.
const DefaultHousekeepingSchedule = "@hourly"

// HousekeepingService deletes sessions that expired or were signed out so
// the sessions table does not grow without bound.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Schedule cron.Schedule
	Clock    Clock

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService parses spec as a standard cron expression (or a
// descriptor like @hourly). An empty spec uses DefaultHousekeepingSchedule.
func NewHousekeepingService(st store.Store, logger *slog.Logger, spec string) (*HousekeepingService, error) {
	if spec == "" {
		spec = DefaultHousekeepingSchedule
	}

	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("housekeeping schedule %q: %w", spec, err)
	}

	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Schedule: schedule,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins the background worker. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "next_run", s.Schedule.Next(s.Clock.now()))
}

// Stop blocks until any in-progress cleanup has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	// Run cleanup immediately on startup
	s.Cleanup(context.Background())

	for {
		wait := time.Until(s.Schedule.Next(s.Clock.now()))
		timer := time.NewTimer(max(wait, time.Second))

		select {
		case <-timer.C:
			s.Cleanup(context.Background())
		case <-s.stopCh:
			timer.Stop()
			return
		}
	}
}

// Cleanup deletes stale sessions once. Failures are logged, never fatal.
func (s *HousekeepingService) Cleanup(ctx context.Context) int64 {
	n, err := s.Store.Sessions().DeleteStaleSessions(ctx)
	if err != nil {
		s.Logger.Error("failed to delete stale sessions", "error", err)
		return 0
	}

	s.Logger.Info("housekeeping cleanup completed", "sessions_deleted", n)
	return n
}
