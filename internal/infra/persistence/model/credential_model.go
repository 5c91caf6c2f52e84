package model

import "time"

// DeviceCredentialModel is the GORM-specific struct for the 'device_credentials' table.
// One row per hardware id; re-registration overwrites the row.
type DeviceCredentialModel struct {
	HardwareID string    `gorm:"type:varchar(255);primaryKey"`
	UID        string    `gorm:"type:varchar(128);not null;index"`
	APIKey     string    `gorm:"type:char(64);not null;uniqueIndex"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceCredentialModel) TableName() string {
	return "device_credentials"
}
