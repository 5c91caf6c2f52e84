package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "tankwatch/internal/delivery/context"
	"tankwatch/internal/domain/entity"
	domainerrors "tankwatch/internal/domain/errors"
	"tankwatch/internal/domain/repository"
	"tankwatch/internal/domain/service"
	"tankwatch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CredentialServiceParams holds dependencies for the credential issuer, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	Logger         *slog.Logger
	CredentialRepo repository.CredentialRepository
	Secrets        service.SecretGenerator
	QRCode         service.QRCodeService
}

type credentialService struct {
	credentialRepo repository.CredentialRepository
	secrets        service.SecretGenerator
	qrCode         service.QRCodeService
	logger         *slog.Logger
	now            func() time.Time
}

// NewCredentialService creates the device credential issuer
func NewCredentialService(params CredentialServiceParams) usecase.DeviceCredentialUsecase {
	return &credentialService{
		credentialRepo: params.CredentialRepo,
		secrets:        params.Secrets,
		qrCode:         params.QRCode,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (s *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RegisterDevice issues a fresh secret for the hardware id. Any previous secret stops working
// because the record is overwritten.
func (s *credentialService) RegisterDevice(ctx context.Context, uid string, input *usecase.RegisterDeviceInput) (*usecase.IssuedCredential, error) {
	if uid == "" {
		return nil, domainerrors.ErrRegisterDeviceUnauthenticated
	}
	if input == nil || input.HardwareID == "" {
		return nil, domainerrors.ErrHardwareIDRequired
	}
	// Hardware ids become document keys.
	if strings.Contains(input.HardwareID, "/") {
		return nil, domainerrors.ErrInvalidArgument.WithMessage("hardwareId must not contain \"/\".")
	}

	apiKey, err := s.secrets.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate device secret")
	}

	credential := &entity.DeviceCredential{
		HardwareID: input.HardwareID,
		UID:        uid,
		APIKey:     apiKey,
		CreatedAt:  s.now().UTC(),
	}

	if err := s.credentialRepo.SaveCredential(ctx, credential); err != nil {
		return nil, errors.Wrap(err, "failed to save device credential")
	}

	s.log(ctx).Info("Device registered",
		slog.String("uid", uid),
		slog.String("hardware_id", input.HardwareID),
	)

	issued := &usecase.IssuedCredential{APIKey: apiKey}

	if input.WithQR {
		png, err := s.qrCode.GenerateProvisioningQR(input.HardwareID, apiKey)
		if err != nil {
			s.log(ctx).Warn("Failed to render provisioning QR code",
				slog.String("hardware_id", input.HardwareID),
				slog.Any("error", err),
			)
		} else {
			issued.ProvisioningQR = png
		}
	}

	return issued, nil
}
