package main

import (
	"context"
	"fmt"
	"time"

	"tankwatch/internal/usecase"

	"github.com/spf13/cobra"
)

func aggregateCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Compute daily stats for every tank",
		Long:  "Compute daily stats for every tank. Without --date the previous day in the aggregator timezone is used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateDate(date); err != nil {
				return err
			}

			var aggregator usecase.AggregatorUsecase

			return run(func(ctx context.Context) error {
				var (
					summary *usecase.AggregationSummary
					err     error
				)
				if date == "" {
					summary, err = aggregator.RunDaily(ctx, time.Now())
				} else {
					summary, err = aggregator.AggregateDate(ctx, date)
				}
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "date=%s users=%d processed=%d skipped=%d failed=%d\n",
					summary.Date, summary.Users, summary.Processed, summary.Skipped, summary.Failed)

				return nil
			}, &aggregator)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date to aggregate (YYYY-MM-DD)")

	return cmd
}
