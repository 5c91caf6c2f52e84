package usecase

import "context"

// NotifierUsecase reacts to device writes and fans notifications out to the user's push tokens
type NotifierUsecase interface {
	// HandleLevelChange runs the full/empty hysteresis for a live_data/water_level write.
	HandleLevelChange(ctx context.Context, uid string, before, after float64) error

	// HandlePumpChange notifies about a controls/pump_status write.
	HandlePumpChange(ctx context.Context, uid string, before, after bool) error
}
