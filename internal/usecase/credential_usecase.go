package usecase

import "context"

// IssuedCredential is returned once, when a device secret is minted
type IssuedCredential struct {
	APIKey string `json:"apiKey"`

	// ProvisioningQR is a PNG of the hardware id and secret, only when requested
	ProvisioningQR []byte `json:"provisioningQr,omitempty"`
}

// RegisterDeviceInput carries the callable arguments of registerDevice
type RegisterDeviceInput struct {
	HardwareID string
	WithQR     bool
}

// DeviceCredentialUsecase binds hardware ids to users
type DeviceCredentialUsecase interface {
	// RegisterDevice mints a new secret for the hardware id, replacing any previous one.
	// An empty uid means the caller is unauthenticated.
	RegisterDevice(ctx context.Context, uid string, input *RegisterDeviceInput) (*IssuedCredential, error)
}
