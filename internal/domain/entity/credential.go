package entity

import "time"

// DeviceCredential binds a hardware identifier to its owning user.
// APIKey is the device secret; it is returned to the caller only when issued.
type DeviceCredential struct {
	HardwareID string
	UID        string
	APIKey     string
	CreatedAt  time.Time
}
