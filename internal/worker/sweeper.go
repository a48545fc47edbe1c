// Package worker runs the due-reminder sweep: the in-process replacement for
// the platform's cron entrypoint that checks pending reminders approaching
// their deadline. Acting on a due reminder (push, email, websocket) stays
// with downstream consumers; the default notifier only reports it.
package worker

import (
	"context"
	"log/slog"
	"time"

	"recruit-reminders/internal/pkg/clock"
	"recruit-reminders/internal/pkg/config"
	"recruit-reminders/internal/usecase/queries"
)

// Notifier receives each reminder whose due time falls inside the sweep
// window. Implementations must tolerate being called repeatedly for the same
// reminder across sweeps.
type Notifier interface {
	NotifyDue(ctx context.Context, view *queries.ReminderView) error
}

type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyDue(_ context.Context, view *queries.ReminderView) error {
	n.logger.Info("Reminder nearing deadline",
		"reminder_id", view.ID.String(),
		"employer_id", view.EmployerID.String(),
		"task_type", view.TaskType,
		"due_at", view.DueAt,
	)
	return nil
}

type Sweeper struct {
	q        queries.ReminderQueries
	notifier Notifier
	clock    clock.Clock
	logger   *slog.Logger
	interval time.Duration
	window   time.Duration
}

func NewSweeper(q queries.ReminderQueries, notifier Notifier, clk clock.Clock, logger *slog.Logger, cfg config.SweeperConfig) *Sweeper {
	return &Sweeper{
		q:        q,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
		interval: cfg.Interval,
		window:   cfg.DeadlineWindow,
	}
}

// Run sweeps until ctx is cancelled. One sweep failure does not stop the loop.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				s.logger.Error("reminder sweep failed", "error", err.Error())
			}
		}
	}
}

// Sweep reports every pending reminder due within the deadline window and
// returns the processed count. A notifier failure on one reminder skips it
// and continues with the rest.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	threshold := s.clock.Now().Add(s.window)

	views, err := s.q.ListDueBefore(ctx, threshold)
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, view := range views {
		if err := s.notifier.NotifyDue(ctx, view); err != nil {
			s.logger.Error("Skipping reminder after notify failure",
				"reminder_id", view.ID.String(),
				"error", err.Error())
			continue
		}
		processed++
	}

	s.logger.Info("Reminder sweep completed",
		"matched", len(views),
		"processed", processed,
		"window", s.window.String())
	return processed, nil
}
