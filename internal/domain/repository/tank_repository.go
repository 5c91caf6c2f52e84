// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"tankwatch/internal/domain/entity"
)

// TankRepository defines access to the per-user tank record kept under tanks/{uid}.
type TankRepository interface {
	// GetNotificationSetting returns the raw settings/notifications_enabled value, nil when absent.
	GetNotificationSetting(ctx context.Context, uid string) (any, error)

	// GetAutoMode reads controls/auto_mode. Absent or non-boolean values read as false.
	GetAutoMode(ctx context.Context, uid string) (bool, error)

	// GetNotificationFlags reads notification_flags. Absent flags read as false.
	GetNotificationFlags(ctx context.Context, uid string) (*entity.NotificationFlags, error)

	// SetNotificationFlags overwrites notification_flags.
	SetNotificationFlags(ctx context.Context, uid string, flags *entity.NotificationFlags) error

	// GetPushTokens returns the members of fcm_tokens.
	GetPushTokens(ctx context.Context, uid string) ([]string, error)

	// AddPushToken adds a token to fcm_tokens. Adding an existing token is a no-op.
	AddPushToken(ctx context.Context, uid, token string) error

	// ListUserIDs returns the ids of every tank record.
	ListUserIDs(ctx context.Context) ([]string, error)

	// GetHistory returns the samples recorded for a date (YYYY-MM-DD), in no particular order.
	GetHistory(ctx context.Context, uid, date string) ([]entity.HistoryEntry, error)

	// SaveDailyStats overwrites daily_stats/{date} and stamps lastUpdated with the server time.
	SaveDailyStats(ctx context.Context, uid string, stats *entity.DailyStats) error
}
