package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"
	_ "time/tzdata" // aggregation timezone must resolve in minimal containers

	"tankwatch/config"
	deliverycontext "tankwatch/internal/delivery/context"
	"tankwatch/internal/domain/constants"
	domainerrors "tankwatch/internal/domain/errors"
	"tankwatch/internal/domain/repository"
	"tankwatch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AggregatorServiceParams holds dependencies for the daily aggregator, injected by Fx.
type AggregatorServiceParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	TankRepo repository.TankRepository
}

type aggregatorService struct {
	tankRepo repository.TankRepository
	location *time.Location
	workers  int
	logger   *slog.Logger
}

type userOutcome int

const (
	outcomeProcessed userOutcome = iota
	outcomeSkipped
	outcomeFailed
)

// NewAggregatorService creates the daily statistics aggregator
func NewAggregatorService(params AggregatorServiceParams) (usecase.AggregatorUsecase, error) {
	cfg := params.Config.Aggregator

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid aggregator timezone %q", cfg.Timezone)
	}

	return &aggregatorService{
		tankRepo: params.TankRepo,
		location: location,
		workers:  max(cfg.Workers, 1),
		logger:   params.Logger,
	}, nil
}

func (s *aggregatorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RunDaily aggregates the calendar day before now in the aggregator timezone.
func (s *aggregatorService) RunDaily(ctx context.Context, now time.Time) (*usecase.AggregationSummary, error) {
	date := previousDate(now, s.location)

	return s.AggregateDate(ctx, date)
}

// AggregateDate computes daily_stats for every user, one user per worker at a time.
func (s *aggregatorService) AggregateDate(ctx context.Context, date string) (*usecase.AggregationSummary, error) {
	if _, err := time.Parse(constants.DateLayout, date); err != nil {
		return nil, domainerrors.ErrInvalidArgument.WithMessage("date must be formatted as YYYY-MM-DD")
	}

	logger := s.log(ctx).With(slog.String("date", date))

	uids, err := s.tankRepo.ListUserIDs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	summary := &usecase.AggregationSummary{Date: date, Users: len(uids)}
	if len(uids) == 0 {
		logger.Info("No users to aggregate")

		return summary, nil
	}

	uidCh := make(chan string)
	outcomeCh := make(chan userOutcome)

	workerGroup := s.startAggregationWorkers(ctx, date, uidCh, outcomeCh, min(s.workers, len(uids)))
	go dispatchUsers(ctx, uidCh, uids)

	go func() {
		workerGroup.Wait()
		close(outcomeCh)
	}()

	for outcome := range outcomeCh {
		switch outcome {
		case outcomeProcessed:
			summary.Processed++
		case outcomeSkipped:
			summary.Skipped++
		case outcomeFailed:
			summary.Failed++
		}
	}

	logger.Info("Daily aggregation completed",
		slog.Int("users", summary.Users),
		slog.Int("processed", summary.Processed),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", summary.Failed),
	)

	if err := ctx.Err(); err != nil {
		return summary, errors.Wrap(err, "daily aggregation interrupted")
	}

	return summary, nil
}

func (s *aggregatorService) startAggregationWorkers(
	ctx context.Context,
	date string,
	uidCh <-chan string,
	outcomeCh chan<- userOutcome,
	workerCount int,
) *sync.WaitGroup {
	var workerGroup sync.WaitGroup

	for i := 0; i < workerCount; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			for uid := range uidCh {
				outcomeCh <- s.aggregateUser(ctx, uid, date)
			}
		}()
	}

	return &workerGroup
}

func dispatchUsers(ctx context.Context, uidCh chan<- string, uids []string) {
	defer close(uidCh)

	for _, uid := range uids {
		if ctx.Err() != nil {
			return
		}

		uidCh <- uid
	}
}

// aggregateUser never returns an error so one user cannot abort the others.
func (s *aggregatorService) aggregateUser(ctx context.Context, uid, date string) userOutcome {
	logger := s.log(ctx).With(slog.String("uid", uid), slog.String("date", date))

	entries, err := s.tankRepo.GetHistory(ctx, uid, date)
	if err != nil {
		logger.Error("Failed to read history", slog.Any("error", err))

		return outcomeFailed
	}
	if len(entries) == 0 {
		logger.Debug("No history for date, skipping")

		return outcomeSkipped
	}

	stats := computeDailyStats(date, entries)
	if err := s.tankRepo.SaveDailyStats(ctx, uid, stats); err != nil {
		logger.Error("Failed to save daily stats", slog.Any("error", err))

		return outcomeFailed
	}

	logger.Debug("Daily stats saved",
		slog.Float64("total_water_consumed", stats.TotalWaterConsumed),
		slog.Int("pump_on_count", stats.PumpOnCount),
	)

	return outcomeProcessed
}

func previousDate(now time.Time, location *time.Location) string {
	local := now.In(location)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, location)

	return midnight.AddDate(0, 0, -1).Format(constants.DateLayout)
}
