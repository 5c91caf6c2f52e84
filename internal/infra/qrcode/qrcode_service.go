package qrcode

import (
	"encoding/json"

	"tankwatch/config"
	"tankwatch/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const provisioningType = "tank_provisioning"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ProvisioningData is the payload a device reads during setup
type ProvisioningData struct {
	Type       string `json:"type"`
	HardwareID string `json:"hardwareId"`
	APIKey     string `json:"apiKey"`
}

// NewQRCodeService creates a new QR code service instance from the qrcode config section
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := 256, "M"
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateProvisioningQR renders the hardware id and its secret as a PNG
func (s *qrcodeService) GenerateProvisioningQR(hardwareID, apiKey string) ([]byte, error) {
	if hardwareID == "" || apiKey == "" {
		return nil, errors.New("hardware id and api key are required")
	}

	jsonData, err := json.Marshal(ProvisioningData{
		Type:       provisioningType,
		HardwareID: hardwareID,
		APIKey:     apiKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseProvisioningQR decodes a scanned provisioning payload
func (s *qrcodeService) ParseProvisioningQR(qrData string) (hardwareID, apiKey string, err error) {
	var data ProvisioningData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != provisioningType {
		return "", "", errors.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.HardwareID == "" || data.APIKey == "" {
		return "", "", errors.New("QR code is missing hardware id or api key")
	}

	return data.HardwareID, data.APIKey, nil
}
