package usecase

import "context"

// PreferenceGateUsecase decides whether a user wants notifications at all
type PreferenceGateUsecase interface {
	// NotificationsAllowed is true only when settings/notifications_enabled is exactly boolean true.
	NotificationsAllowed(ctx context.Context, uid string) (bool, error)
}
