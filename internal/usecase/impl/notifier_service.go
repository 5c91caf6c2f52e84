package impl

import (
	"context"
	"log/slog"

	"tankwatch/config"
	deliverycontext "tankwatch/internal/delivery/context"
	"tankwatch/internal/domain/entity"
	"tankwatch/internal/domain/hysteresis"
	"tankwatch/internal/domain/repository"
	"tankwatch/internal/domain/service"
	"tankwatch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NotifierServiceParams holds dependencies for the notifier, injected by Fx.
type NotifierServiceParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	TankRepo repository.TankRepository
	Gate     usecase.PreferenceGateUsecase
	PushSvc  service.PushService
}

type notifierService struct {
	tankRepo repository.TankRepository
	gate     usecase.PreferenceGateUsecase
	pushSvc  service.PushService
	full     hysteresis.Latch
	empty    hysteresis.Latch
	logger   *slog.Logger
}

// NewNotifierService creates the hysteresis notifier
func NewNotifierService(params NotifierServiceParams) usecase.NotifierUsecase {
	fullLevel, fullRearm := params.Config.Notifier.FullThresholds()
	emptyLevel, emptyRearm := params.Config.Notifier.EmptyThresholds()

	return &notifierService{
		tankRepo: params.TankRepo,
		gate:     params.Gate,
		pushSvc:  params.PushSvc,
		full:     hysteresis.Full(fullLevel, fullRearm),
		empty:    hysteresis.Empty(emptyLevel, emptyRearm),
		logger:   params.Logger,
	}
}

func (s *notifierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// HandleLevelChange runs both latches against the new level and persists the flags.
func (s *notifierService) HandleLevelChange(ctx context.Context, uid string, before, after float64) error {
	if before == after {
		return nil
	}

	logger := s.log(ctx).With(slog.String("uid", uid))

	allowed, err := s.gate.NotificationsAllowed(ctx, uid)
	if err != nil {
		return err
	}
	if !allowed {
		logger.Debug("Notifications disabled, skipping level change")

		return nil
	}

	autoMode, err := s.tankRepo.GetAutoMode(ctx, uid)
	if err != nil {
		return errors.Wrap(err, "failed to read auto mode")
	}

	flags, err := s.tankRepo.GetNotificationFlags(ctx, uid)
	if err != nil {
		return errors.Wrap(err, "failed to read notification flags")
	}

	var staged *entity.Notification

	nextFull, fullFired := s.full.Step(after, flags.LoggedFull)
	if fullFired {
		staged = fullNotification(autoMode)
	}

	// Evaluated after the full check so it wins when both fire.
	nextEmpty, emptyFired := s.empty.Step(after, flags.LoggedEmpty)
	if emptyFired {
		staged = emptyNotification(after, autoMode)
	}

	next := &entity.NotificationFlags{LoggedFull: nextFull, LoggedEmpty: nextEmpty}
	if err := s.tankRepo.SetNotificationFlags(ctx, uid, next); err != nil {
		return errors.Wrap(err, "failed to save notification flags")
	}

	if staged == nil {
		return nil
	}

	logger.Info("Level threshold crossed",
		slog.Float64("level", after),
		slog.String("title", staged.Title),
	)

	return s.deliver(ctx, uid, staged)
}

// HandlePumpChange notifies on every pump state transition.
func (s *notifierService) HandlePumpChange(ctx context.Context, uid string, before, after bool) error {
	if before == after {
		return nil
	}

	allowed, err := s.gate.NotificationsAllowed(ctx, uid)
	if err != nil {
		return err
	}
	if !allowed {
		s.log(ctx).Debug("Notifications disabled, skipping pump change", slog.String("uid", uid))

		return nil
	}

	autoMode, err := s.tankRepo.GetAutoMode(ctx, uid)
	if err != nil {
		return errors.Wrap(err, "failed to read auto mode")
	}

	return s.deliver(ctx, uid, pumpNotification(after, autoMode))
}

// deliver fans the notification out to every token of the user.
// Delivery failures are logged and never returned.
func (s *notifierService) deliver(ctx context.Context, uid string, notification *entity.Notification) error {
	logger := s.log(ctx).With(slog.String("uid", uid))

	tokens, err := s.tankRepo.GetPushTokens(ctx, uid)
	if err != nil {
		return errors.Wrap(err, "failed to read push tokens")
	}
	if len(tokens) == 0 {
		logger.Info("No push tokens registered")

		return nil
	}

	report, err := s.pushSvc.SendMulticast(ctx, tokens, notification)
	if err != nil {
		logger.Error("Failed to send notification",
			slog.String("title", notification.Title),
			slog.Int("token_count", len(tokens)),
			slog.Any("error", err),
		)

		return nil
	}

	logger.Info("Notification sent",
		slog.String("title", notification.Title),
		slog.Int("success_count", report.SuccessCount),
		slog.Int("failure_count", report.FailureCount),
	)

	for _, result := range report.Results {
		if result.Success {
			continue
		}
		logger.Warn("Push delivery failed for token",
			slog.String("token_prefix", result.Token[:min(10, len(result.Token))]),
			slog.Any("error", result.Error),
		)
	}

	return nil
}
