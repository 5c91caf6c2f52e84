package service

import (
	"context"
)

// ChangeEvent is a tank change delivered to the worker for processing
type ChangeEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	EventID   string `json:"event_id"`
	Type      string `json:"type"` // water_level, pump_status or daily_stats
	UID       string `json:"uid,omitempty"`

	// water_level payload
	LevelBefore *float64 `json:"level_before,omitempty"`
	LevelAfter  *float64 `json:"level_after,omitempty"`

	// pump_status payload
	PumpBefore *bool `json:"pump_before,omitempty"`
	PumpAfter  *bool `json:"pump_after,omitempty"`

	// daily_stats payload, empty means the previous day
	Date string `json:"date,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishChangeEvent publishes a change event for async processing
	PublishChangeEvent(ctx context.Context, event *ChangeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
