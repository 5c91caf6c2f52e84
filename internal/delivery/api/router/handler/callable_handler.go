package handler

import (
	"log/slog"

	"tankwatch/internal/delivery/api/response"
	deliverycontext "tankwatch/internal/delivery/context"
	domainerrors "tankwatch/internal/domain/errors"
	"tankwatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// callableRequest is the callable protocol envelope: {"data": {...}}
type callableRequest[T any] struct {
	Data T `json:"data"`
}

// RegisterDeviceRequest holds the registerDevice arguments
type RegisterDeviceRequest struct {
	HardwareID string `json:"hardwareId" validate:"required"`
	WithQR     bool   `json:"withQr"`
}

// SaveFCMTokenRequest holds the saveFCMToken arguments
type SaveFCMTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// CallableHandlerParams holds dependencies for CallableHandler, injected by Fx.
type CallableHandlerParams struct {
	fx.In

	CredentialUC usecase.DeviceCredentialUsecase
	PushTokenUC  usecase.PushTokenUsecase
	Logger       *slog.Logger
}

// CallableHandler serves the user-facing callables
type CallableHandler struct {
	credentialUC usecase.DeviceCredentialUsecase
	pushTokenUC  usecase.PushTokenUsecase
	logger       *slog.Logger
}

// NewCallableHandler is the constructor for CallableHandler
func NewCallableHandler(params CallableHandlerParams) *CallableHandler {
	return &CallableHandler{
		credentialUC: params.CredentialUC,
		pushTokenUC:  params.PushTokenUC,
		logger:       params.Logger,
	}
}

// RegisterDevice mints a device secret for the caller's hardware id
func (h *CallableHandler) RegisterDevice(c echo.Context) error {
	uid := deliverycontext.GetCallerUID(c)
	if uid == "" {
		return response.HandleAppError(c, domainerrors.ErrRegisterDeviceUnauthenticated)
	}

	var req callableRequest[RegisterDeviceRequest]
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrHardwareIDRequired)
	}

	if err := c.Validate(&req.Data); err != nil {
		return response.HandleAppError(c, domainerrors.ErrHardwareIDRequired)
	}

	issued, err := h.credentialUC.RegisterDevice(c.Request().Context(), uid, &usecase.RegisterDeviceInput{
		HardwareID: req.Data.HardwareID,
		WithQR:     req.Data.WithQR,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Result(c, issued)
}

// SaveFCMToken records a push token for the caller
func (h *CallableHandler) SaveFCMToken(c echo.Context) error {
	uid := deliverycontext.GetCallerUID(c)
	if uid == "" {
		return response.HandleAppError(c, domainerrors.ErrSavePushTokenUnauthenticated)
	}

	var req callableRequest[SaveFCMTokenRequest]
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrPushTokenRequired)
	}

	if err := c.Validate(&req.Data); err != nil {
		return response.HandleAppError(c, domainerrors.ErrPushTokenRequired)
	}

	result, err := h.pushTokenUC.SavePushToken(c.Request().Context(), uid, req.Data.Token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Result(c, result)
}
