// Package scheduler runs the daily aggregation inside the service process.
package scheduler

import (
	"context"
	"log/slog"
	"time"
	_ "time/tzdata"

	"tankwatch/config"
	"tankwatch/internal/delivery"
	"tankwatch/internal/errors"
	"tankwatch/internal/usecase"

	"go.uber.org/fx"
)

type dailyScheduler struct {
	logger       *slog.Logger
	aggregatorUC usecase.AggregatorUsecase
	location     *time.Location
	hour, minute int
	enabled      bool
	stopCh       chan struct{}
	now          func() time.Time
	after        func(time.Duration) <-chan time.Time
}

// SchedulerParams holds dependencies for the daily scheduler
type SchedulerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	AggregatorUC usecase.AggregatorUsecase
}

// NewScheduler creates the delivery that triggers the aggregator once a day at aggregator.runAt
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	location, err := time.LoadLocation(params.Cfg.Aggregator.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load aggregator timezone %q", params.Cfg.Aggregator.Timezone)
	}

	hour, minute, err := parseRunAt(params.Cfg.Aggregator.RunAt)
	if err != nil {
		return nil, err
	}

	s := &dailyScheduler{
		logger:       params.Logger,
		aggregatorUC: params.AggregatorUC,
		location:     location,
		hour:         hour,
		minute:       minute,
		enabled:      params.Cfg.Aggregator.SchedulerEnabled,
		stopCh:       make(chan struct{}),
		now:          time.Now,
		after:        time.After,
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// parseRunAt parses an "HH:MM" wall-clock time.
func parseRunAt(runAt string) (hour, minute int, err error) {
	parsed, err := time.Parse("15:04", runAt)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid aggregator.runAt %q", runAt)
	}

	return parsed.Hour(), parsed.Minute(), nil
}

// nextRun returns the first hour:minute in loc strictly after now.
func nextRun(now time.Time, loc *time.Location, hour, minute int) time.Time {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, hour, minute, 0, 0, loc)
	}

	return next
}

// Serve blocks until the scheduler is stopped, running the aggregation at every tick.
func (s *dailyScheduler) Serve(ctx context.Context) error {
	if !s.enabled {
		s.logger.Info("Daily scheduler disabled")

		return nil
	}

	for {
		next := nextRun(s.now(), s.location, s.hour, s.minute)
		s.logger.Info("Daily aggregation scheduled", slog.Time("next_run", next))

		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case fired := <-s.after(next.Sub(s.now())):
			s.runOnce(ctx, fired)
		}
	}
}

func (s *dailyScheduler) runOnce(ctx context.Context, now time.Time) {
	summary, err := s.aggregatorUC.RunDaily(ctx, now)
	if err != nil {
		s.logger.Error("Daily aggregation failed", slog.Any("error", err))

		return
	}

	s.logger.Info("Daily aggregation completed",
		slog.String("date", summary.Date),
		slog.Int("users", summary.Users),
		slog.Int("processed", summary.Processed),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", summary.Failed),
	)
}

func (s *dailyScheduler) stop(_ context.Context) error {
	s.logger.Info("Stopping daily scheduler")
	close(s.stopCh)

	return nil
}
