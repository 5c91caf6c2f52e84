package service

// QRCodeService defines the interface for device provisioning QR codes
type QRCodeService interface {
	// GenerateProvisioningQR renders the hardware id and its secret as a PNG QR code
	GenerateProvisioningQR(hardwareID, apiKey string) ([]byte, error)

	// ParseProvisioningQR returns the hardware id and secret encoded in a provisioning QR payload
	ParseProvisioningQR(qrData string) (hardwareID, apiKey string, err error)
}
