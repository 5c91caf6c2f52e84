// Command tankctl runs one-off maintenance tasks against the tank backend.
//
// Usage:
//
//	tankctl aggregate --date 2024-05-01
//	tankctl emit level --uid abc --before 96 --after 100
//	tankctl emit pump --uid abc --before=false --after=true
//	tankctl emit daily --date 2024-05-01
//	tankctl qr encode --hardware-id tank-01 --api-key <secret> --out tank-01.png
//	tankctl qr decode '<payload>'
//	tankctl version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"tankwatch/config"
	"tankwatch/internal/errors"
	"tankwatch/internal/infra/firebase"
	logs "tankwatch/internal/infra/log"
	"tankwatch/internal/infra/persistence/rtdb"
	"tankwatch/internal/infra/pubsub"
	"tankwatch/internal/infra/qrcode"
	"tankwatch/internal/usecase/impl"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var version = "dev"

const stopTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tankctl",
		Short:        "Tank backend maintenance CLI",
		Version:      version,
		SilenceUsage: true,
	}

	root.AddCommand(aggregateCmd())
	root.AddCommand(emitCmd())
	root.AddCommand(qrCmd())
	root.AddCommand(versionCmd())

	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tankctl version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func provideCLI() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewApp,
		firebase.NewDatabaseClient,
		rtdb.NewTankRepository,
		impl.NewAggregatorService,
		pubsub.NewEventPublisher,
		qrcode.NewQRCodeService,
	)
}

// run builds only the dependencies behind targets, starts them, and calls fn.
func run(fn func(ctx context.Context) error, targets ...any) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	app := fx.New(
		fx.NopLogger,
		provideCLI(),
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "build dependencies")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "start dependencies")
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	}()

	return fn(ctx)
}
