package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"tankwatch/internal/delivery/api/response"
	mockUC "tankwatch/internal/mocks/usecase"
	"tankwatch/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type callableHandlerFixtures struct {
	handler        *CallableHandler
	mockCredential *mockUC.MockDeviceCredentialUsecase
	mockPushToken  *mockUC.MockPushTokenUsecase
}

func createTestCallableHandler(t *testing.T) *callableHandlerFixtures {
	mockCredential := mockUC.NewMockDeviceCredentialUsecase(t)
	mockPushToken := mockUC.NewMockPushTokenUsecase(t)

	handler := NewCallableHandler(CallableHandlerParams{
		CredentialUC: mockCredential,
		PushTokenUC:  mockPushToken,
		Logger:       discardLogger(),
	})

	return &callableHandlerFixtures{
		handler:        handler,
		mockCredential: mockCredential,
		mockPushToken:  mockPushToken,
	}
}

func decodeCallableError(t *testing.T, body []byte) *response.ErrorInfo {
	t.Helper()

	var payload response.CallableError
	require.NoError(t, json.Unmarshal(body, &payload))
	require.NotNil(t, payload.Error)

	return payload.Error
}

func TestCallableHandler_RegisterDevice_Success(t *testing.T) {
	fx := createTestCallableHandler(t)
	e := newTestEcho()
	c, rec := newCallableContext(e, testUID, `{"data":{"hardwareId":"ESP32-ABC"}}`)

	fx.mockCredential.EXPECT().
		RegisterDevice(mock.Anything, testUID, &usecase.RegisterDeviceInput{HardwareID: "ESP32-ABC"}).
		Return(&usecase.IssuedCredential{APIKey: "a1b2"}, nil)

	require.NoError(t, fx.handler.RegisterDevice(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"result":{"apiKey":"a1b2"}}`, rec.Body.String())
}

func TestCallableHandler_RegisterDevice_Unauthenticated(t *testing.T) {
	fx := createTestCallableHandler(t)
	e := newTestEcho()
	c, rec := newCallableContext(e, "", `{"data":{"hardwareId":"ESP32-ABC"}}`)

	require.NoError(t, fx.handler.RegisterDevice(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	info := decodeCallableError(t, rec.Body.Bytes())
	assert.Equal(t, "UNAUTHENTICATED", info.Status)
	assert.Equal(t, "You must be logged in to register a device.", info.Message)
}

func TestCallableHandler_RegisterDevice_MissingHardwareID(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty data", body: `{"data":{}}`},
		{name: "empty string", body: `{"data":{"hardwareId":""}}`},
		{name: "wrong type", body: `{"data":{"hardwareId":42}}`},
		{name: "no envelope", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCallableHandler(t)
			e := newTestEcho()
			c, rec := newCallableContext(e, testUID, tt.body)

			require.NoError(t, fx.handler.RegisterDevice(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			info := decodeCallableError(t, rec.Body.Bytes())
			assert.Equal(t, "INVALID_ARGUMENT", info.Status)
			assert.Equal(t, "The function must be called with a 'hardwareId' argument.", info.Message)
		})
	}
}

func TestCallableHandler_RegisterDevice_UsecaseFailurePassesThrough(t *testing.T) {
	fx := createTestCallableHandler(t)
	e := newTestEcho()
	c, _ := newCallableContext(e, testUID, `{"data":{"hardwareId":"ESP32-ABC"}}`)

	fx.mockCredential.EXPECT().
		RegisterDevice(mock.Anything, testUID, mock.Anything).
		Return(nil, errors.New("firestore unavailable"))

	err := fx.handler.RegisterDevice(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "firestore unavailable")
}

func TestCallableHandler_SaveFCMToken_Success(t *testing.T) {
	fx := createTestCallableHandler(t)
	e := newTestEcho()
	c, rec := newCallableContext(e, testUID, `{"data":{"token":"fcm-token-1"}}`)

	fx.mockPushToken.EXPECT().
		SavePushToken(mock.Anything, testUID, "fcm-token-1").
		Return(&usecase.SavePushTokenResult{Success: true, Message: "Token saved successfully."}, nil)

	require.NoError(t, fx.handler.SaveFCMToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"result":{"success":true,"message":"Token saved successfully."}}`, rec.Body.String())
}

func TestCallableHandler_SaveFCMToken_Unauthenticated(t *testing.T) {
	fx := createTestCallableHandler(t)
	e := newTestEcho()
	c, rec := newCallableContext(e, "", `{"data":{}}`)

	require.NoError(t, fx.handler.SaveFCMToken(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	info := decodeCallableError(t, rec.Body.Bytes())
	assert.Equal(t, "You must be logged in to save a token.", info.Message)
}

func TestCallableHandler_SaveFCMToken_MissingToken(t *testing.T) {
	fx := createTestCallableHandler(t)
	e := newTestEcho()
	c, rec := newCallableContext(e, testUID, `{"data":{"token":""}}`)

	require.NoError(t, fx.handler.SaveFCMToken(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	info := decodeCallableError(t, rec.Body.Bytes())
	assert.Equal(t, "INVALID_ARGUMENT", info.Status)
	assert.Equal(t, "The function must be called with a 'token' argument.", info.Message)
}
