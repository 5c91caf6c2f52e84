// Package constants holds values shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Change event types carried over Pub/Sub to the worker.
const (
	EventWaterLevel = "water_level"
	EventPumpStatus = "pump_status"
	EventDailyStats = "daily_stats"
)

// DateLayout is the key format of history and daily_stats buckets.
const DateLayout = "2006-01-02"
