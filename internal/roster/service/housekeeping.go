package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/roster/internal/roster/store"
)

// HousekeepingService periodically reports employee/office links whose
// office has been deleted. It never removes them: office deletion leaves
// links in place and the read views skip them.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates the worker. If interval is 0 or negative it
// defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the worker in the background until Stop is called.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until an in-progress check has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.check(context.Background())

	for {
		select {
		case <-ticker.C:
			s.check(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// check logs the number of dangling links and returns it.
func (s *HousekeepingService) check(ctx context.Context) int64 {
	n, err := s.Store.Assignments().CountDanglingAssignments(ctx)
	if err != nil {
		s.Logger.Error("failed to count dangling office links", "error", err)
		return 0
	}

	if n > 0 {
		s.Logger.Warn("found office links to deleted offices", "dangling_links", n)
	} else {
		s.Logger.Debug("no dangling office links")
	}
	return n
}
