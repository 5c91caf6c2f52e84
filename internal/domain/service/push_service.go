package service

import (
	"context"

	"tankwatch/internal/domain/entity"
)

// PushService defines the interface for push notification delivery
type PushService interface {
	// SendMulticast delivers one notification to every token, in batches of at most 500.
	// Per-token failures are reported, not returned; err is set only when nothing could be attempted.
	SendMulticast(ctx context.Context, tokens []string, notification *entity.Notification) (*entity.DeliveryReport, error)
}
