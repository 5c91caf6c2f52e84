package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tankwatch/internal/domain/entity"
	domainerrors "tankwatch/internal/domain/errors"
	mockRepo "tankwatch/internal/mocks/repository"
	mockSvc "tankwatch/internal/mocks/service"
	"tankwatch/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type credentialServiceFixtures struct {
	service        usecase.DeviceCredentialUsecase
	credentialRepo *mockRepo.MockCredentialRepository
	secrets        *mockSvc.MockSecretGenerator
	qrCode         *mockSvc.MockQRCodeService
}

func createTestCredentialService(t *testing.T) credentialServiceFixtures {
	credentialRepo := mockRepo.NewMockCredentialRepository(t)
	secrets := mockSvc.NewMockSecretGenerator(t)
	qrCode := mockSvc.NewMockQRCodeService(t)

	svc := NewCredentialService(CredentialServiceParams{
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		CredentialRepo: credentialRepo,
		Secrets:        secrets,
		QRCode:         qrCode,
	})

	return credentialServiceFixtures{
		service:        svc,
		credentialRepo: credentialRepo,
		secrets:        secrets,
		qrCode:         qrCode,
	}
}

const testAPIKey = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"

func TestCredentialService_RegisterDevice_Success(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()

	fx.secrets.EXPECT().Generate().Return(testAPIKey, nil)
	fx.credentialRepo.EXPECT().
		SaveCredential(ctx, mock.MatchedBy(func(c *entity.DeviceCredential) bool {
			return c.HardwareID == "esp32-aa" && c.UID == testUID && c.APIKey == testAPIKey && !c.CreatedAt.IsZero()
		})).
		Return(nil)

	issued, err := fx.service.RegisterDevice(ctx, testUID, &usecase.RegisterDeviceInput{HardwareID: "esp32-aa"})
	require.NoError(t, err)
	assert.Equal(t, testAPIKey, issued.APIKey)
	assert.Nil(t, issued.ProvisioningQR)
}

func TestCredentialService_RegisterDevice_WithQR(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.secrets.EXPECT().Generate().Return(testAPIKey, nil)
	fx.credentialRepo.EXPECT().SaveCredential(ctx, mock.Anything).Return(nil)
	fx.qrCode.EXPECT().GenerateProvisioningQR("esp32-aa", testAPIKey).Return(png, nil)

	issued, err := fx.service.RegisterDevice(ctx, testUID, &usecase.RegisterDeviceInput{HardwareID: "esp32-aa", WithQR: true})
	require.NoError(t, err)
	assert.Equal(t, png, issued.ProvisioningQR)
}

func TestCredentialService_RegisterDevice_QRFailureStillIssues(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()

	fx.secrets.EXPECT().Generate().Return(testAPIKey, nil)
	fx.credentialRepo.EXPECT().SaveCredential(ctx, mock.Anything).Return(nil)
	fx.qrCode.EXPECT().GenerateProvisioningQR("esp32-aa", testAPIKey).Return(nil, errors.New("too large"))

	issued, err := fx.service.RegisterDevice(ctx, testUID, &usecase.RegisterDeviceInput{HardwareID: "esp32-aa", WithQR: true})
	require.NoError(t, err)
	assert.Equal(t, testAPIKey, issued.APIKey)
	assert.Nil(t, issued.ProvisioningQR)
}

func TestCredentialService_RegisterDevice_Unauthenticated(t *testing.T) {
	fx := createTestCredentialService(t)

	issued, err := fx.service.RegisterDevice(context.Background(), "", &usecase.RegisterDeviceInput{HardwareID: "esp32-aa"})
	require.Error(t, err)
	assert.Nil(t, issued)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	// no Generate or SaveCredential expectations: nothing is written
}

func TestCredentialService_RegisterDevice_InvalidArgument(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.RegisterDeviceInput
	}{
		{name: "nil input", input: nil},
		{name: "empty hardware id", input: &usecase.RegisterDeviceInput{}},
		{name: "path separator", input: &usecase.RegisterDeviceInput{HardwareID: "a/b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCredentialService(t)

			_, err := fx.service.RegisterDevice(context.Background(), testUID, tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
		})
	}
}

func TestCredentialService_RegisterDevice_SaveFailure(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()

	fx.secrets.EXPECT().Generate().Return(testAPIKey, nil)
	fx.credentialRepo.EXPECT().SaveCredential(ctx, mock.Anything).Return(errors.New("deadline exceeded"))

	issued, err := fx.service.RegisterDevice(ctx, testUID, &usecase.RegisterDeviceInput{HardwareID: "esp32-aa"})
	require.Error(t, err)
	assert.Nil(t, issued)
}
