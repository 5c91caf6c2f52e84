package main

import (
	"context"
	"fmt"
	"io"

	"tankwatch/internal/domain/constants"
	"tankwatch/internal/domain/service"
	"tankwatch/internal/errors"

	"github.com/spf13/cobra"
)

func emitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Publish a change event to the worker",
	}
	cmd.AddCommand(emitLevelCmd())
	cmd.AddCommand(emitPumpCmd())
	cmd.AddCommand(emitDailyCmd())

	return cmd
}

func emitLevelCmd() *cobra.Command {
	var (
		uid           string
		before, after float64
	)
	cmd := &cobra.Command{
		Use:   "level",
		Short: "Publish a water_level change",
		RunE: func(cmd *cobra.Command, args []string) error {
			return publish(cmd, levelEvent(uid, before, after))
		},
	}
	cmd.Flags().StringVar(&uid, "uid", "", "Tank owner uid")
	cmd.Flags().Float64Var(&before, "before", 0, "Water level before the write")
	cmd.Flags().Float64Var(&after, "after", 0, "Water level after the write")
	_ = cmd.MarkFlagRequired("uid")
	_ = cmd.MarkFlagRequired("after")

	return cmd
}

func emitPumpCmd() *cobra.Command {
	var (
		uid           string
		before, after bool
	)
	cmd := &cobra.Command{
		Use:   "pump",
		Short: "Publish a pump_status change",
		RunE: func(cmd *cobra.Command, args []string) error {
			return publish(cmd, pumpEvent(uid, before, after))
		},
	}
	cmd.Flags().StringVar(&uid, "uid", "", "Tank owner uid")
	cmd.Flags().BoolVar(&before, "before", false, "Pump status before the write")
	cmd.Flags().BoolVar(&after, "after", false, "Pump status after the write")
	_ = cmd.MarkFlagRequired("uid")
	_ = cmd.MarkFlagRequired("after")

	return cmd
}

func emitDailyCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Publish a daily_stats trigger",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateDate(date); err != nil {
				return err
			}

			return publish(cmd, &service.ChangeEvent{Type: constants.EventDailyStats, Date: date})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date to aggregate (YYYY-MM-DD), empty for the previous day")

	return cmd
}

func levelEvent(uid string, before, after float64) *service.ChangeEvent {
	return &service.ChangeEvent{
		Type:        constants.EventWaterLevel,
		UID:         uid,
		LevelBefore: &before,
		LevelAfter:  &after,
	}
}

func pumpEvent(uid string, before, after bool) *service.ChangeEvent {
	return &service.ChangeEvent{
		Type:       constants.EventPumpStatus,
		UID:        uid,
		PumpBefore: &before,
		PumpAfter:  &after,
	}
}

func publish(cmd *cobra.Command, event *service.ChangeEvent) error {
	var publisher service.EventPublisher

	return run(func(ctx context.Context) error {
		return publishEvent(ctx, publisher, cmd.OutOrStdout(), event)
	}, &publisher)
}

func publishEvent(ctx context.Context, publisher service.EventPublisher, out io.Writer, event *service.ChangeEvent) error {
	if err := publisher.PublishChangeEvent(ctx, event); err != nil {
		return errors.Wrapf(err, "publish %s event", event.Type)
	}
	fmt.Fprintf(out, "published %s event_id=%s\n", event.Type, event.EventID)

	return nil
}
