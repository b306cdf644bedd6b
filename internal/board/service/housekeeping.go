package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
)

// HousekeepingService periodically scans for tasks whose due date falls
// inside the warning window and raises due_soon notifications for them.
// One notification per task; a task already warned about is skipped even if
// its notification was read or deleted and recreated by edits.
type HousekeepingService struct {
	Store         store.Store
	Logger        *slog.Logger
	Interval      time.Duration
	DueSoonWindow time.Duration

	// Now is injectable so tests can pin the clock.
	Now func() time.Time

	stopCh chan struct{}
	doneCh chan struct{}

	warned map[string]struct{}
}

// NewHousekeepingService creates the service. Interval defaults to 1 hour,
// the warning window to 48 hours.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval, window time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}
	if window <= 0 {
		window = 48 * time.Hour
	}

	return &HousekeepingService{
		Store:         st,
		Logger:        logger,
		Interval:      interval,
		DueSoonWindow: window,
		Now:           func() time.Time { return time.Now().UTC() },
		stopCh:        make(chan struct{}),
		doneCh:        make(chan struct{}),
		warned:        make(map[string]struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop to shut it
// down gracefully.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started",
		"interval", s.Interval, "due_soon_window", s.DueSoonWindow)
}

// Stop shuts the worker down and blocks until any in-progress scan is done.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Scan immediately on startup so seeded near-due tasks get warnings.
	s.Scan(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Scan(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Scan performs one pass. Exported so tests can drive it directly without
// timers.
func (s *HousekeepingService) Scan(ctx context.Context) {
	tasks, err := s.Store.Tasks().ListTasks(ctx)
	if err != nil {
		s.Logger.Error("housekeeping: list tasks failed", "error", err)
		return
	}

	now := s.Now()
	raised := 0
	for _, t := range tasks {
		if t.Status == domain.StatusDone || t.DueDate == "" {
			continue
		}
		if _, ok := s.warned[t.ID]; ok {
			continue
		}

		due, err := time.ParseInLocation(DateLayout, t.DueDate, time.UTC)
		if err != nil {
			// Malformed due dates are tolerated everywhere else, so just
			// skip them here too.
			continue
		}

		until := due.Sub(now)
		if until < 0 || until > s.DueSoonWindow {
			continue
		}

		n := domain.Notification{
			ID:        idx.New().String(),
			Type:      domain.NotificationDueSoon,
			Title:     "Task due soon",
			Message:   fmt.Sprintf("Task %q is due on %s", t.Title, t.DueDate),
			CreatedAt: now,
			TaskID:    t.ID,
		}
		if err := s.Store.Notifications().CreateNotification(ctx, n); err != nil {
			s.Logger.Error("housekeeping: create notification failed", "task_id", t.ID, "error", err)
			continue
		}
		s.warned[t.ID] = struct{}{}
		raised++
	}

	if raised > 0 {
		s.Logger.Info("housekeeping scan completed", "due_soon_raised", raised)
	}
}
