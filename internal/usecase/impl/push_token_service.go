package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "tankwatch/internal/delivery/context"
	domainerrors "tankwatch/internal/domain/errors"
	"tankwatch/internal/domain/repository"
	"tankwatch/internal/usecase"

	"github.com/pkg/errors"
)

const pushTokenSavedMessage = "Token saved successfully."

// Characters the realtime store rejects in keys
const forbiddenKeyChars = ".$#[]/"

type pushTokenService struct {
	tankRepo repository.TankRepository
	logger   *slog.Logger
}

// NewPushTokenService creates the push token registrar
func NewPushTokenService(tankRepo repository.TankRepository, logger *slog.Logger) usecase.PushTokenUsecase {
	return &pushTokenService{
		tankRepo: tankRepo,
		logger:   logger,
	}
}

// SavePushToken records the token as a member of the caller's token set.
func (s *pushTokenService) SavePushToken(ctx context.Context, uid, token string) (*usecase.SavePushTokenResult, error) {
	if uid == "" {
		return nil, domainerrors.ErrSavePushTokenUnauthenticated
	}
	if token == "" {
		return nil, domainerrors.ErrPushTokenRequired
	}
	if strings.ContainsAny(token, forbiddenKeyChars) {
		return nil, domainerrors.ErrPushTokenRequired.WithMessage("The 'token' argument contains characters that are not allowed.")
	}

	if err := s.tankRepo.AddPushToken(ctx, uid, token); err != nil {
		return nil, errors.Wrap(err, "failed to save push token")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Push token saved", slog.String("uid", uid))

	return &usecase.SavePushTokenResult{Success: true, Message: pushTokenSavedMessage}, nil
}
