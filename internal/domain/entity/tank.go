package entity

// NotificationFlags holds the sticky "already notified" latches of a tank.
type NotificationFlags struct {
	LoggedFull  bool `json:"loggedFull"`
	LoggedEmpty bool `json:"loggedEmpty"`
}

// HistoryEntry is one sample recorded by the device under history/{date}/{timestamp}.
type HistoryEntry struct {
	Timestamp  string
	WaterLevel *float64
	PumpStatus bool
}

// DailyStats is the derived usage record stored under daily_stats/{date}.
type DailyStats struct {
	Date               string  `json:"date"`
	TotalWaterConsumed float64 `json:"totalWaterConsumed"`
	PumpOnCount        int     `json:"pumpOnCount"`
}
