package usecase

import (
	"context"
	"time"
)

// AggregationSummary reports the outcome of one aggregation run
type AggregationSummary struct {
	Date      string
	Users     int
	Processed int
	Skipped   int
	Failed    int
}

// AggregatorUsecase derives daily_stats from the previous day's history
type AggregatorUsecase interface {
	// RunDaily aggregates the calendar day before now, in the configured timezone.
	RunDaily(ctx context.Context, now time.Time) (*AggregationSummary, error)

	// AggregateDate aggregates an explicit date (YYYY-MM-DD) for every user.
	AggregateDate(ctx context.Context, date string) (*AggregationSummary, error)
}
