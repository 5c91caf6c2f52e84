// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"

	"tankwatch/internal/domain/repository"
	"tankwatch/internal/usecase"

	"github.com/pkg/errors"
)

type preferenceGate struct {
	tankRepo repository.TankRepository
}

// NewPreferenceGate creates the notification preference gate
func NewPreferenceGate(tankRepo repository.TankRepository) usecase.PreferenceGateUsecase {
	return &preferenceGate{
		tankRepo: tankRepo,
	}
}

// NotificationsAllowed only accepts a stored boolean true; "true", 1 or an absent value all halt.
func (g *preferenceGate) NotificationsAllowed(ctx context.Context, uid string) (bool, error) {
	value, err := g.tankRepo.GetNotificationSetting(ctx, uid)
	if err != nil {
		return false, errors.Wrap(err, "failed to read notification setting")
	}

	enabled, ok := value.(bool)

	return ok && enabled, nil
}
