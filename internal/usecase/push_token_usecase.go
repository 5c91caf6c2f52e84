package usecase

import "context"

// SavePushTokenResult is the callable acknowledgement of saveFCMToken
type SavePushTokenResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PushTokenUsecase records client push tokens under their user
type PushTokenUsecase interface {
	// SavePushToken adds token to the user's token set. An empty uid means the caller is unauthenticated.
	SavePushToken(ctx context.Context, uid, token string) (*SavePushTokenResult, error)
}
