package main

import (
	"bytes"
	"context"
	"testing"

	"tankwatch/internal/domain/constants"
	"tankwatch/internal/domain/service"
	mockSvc "tankwatch/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	assert.ElementsMatch(t, []string{"aggregate", "emit", "qr", "version"}, names)
}

func TestVersionCmd(t *testing.T) {
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, version+"\n", out.String())
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{name: "empty means previous day", date: ""},
		{name: "valid", date: "2024-05-01"},
		{name: "wrong layout", date: "01/05/2024", wantErr: true},
		{name: "impossible day", date: "2024-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDate(tt.date)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLevelEvent(t *testing.T) {
	event := levelEvent("uid-1", 96, 100)

	assert.Equal(t, constants.EventWaterLevel, event.Type)
	assert.Equal(t, "uid-1", event.UID)
	require.NotNil(t, event.LevelBefore)
	require.NotNil(t, event.LevelAfter)
	assert.Equal(t, 96.0, *event.LevelBefore)
	assert.Equal(t, 100.0, *event.LevelAfter)
	assert.Empty(t, event.EventID)
}

func TestPumpEvent(t *testing.T) {
	event := pumpEvent("uid-1", false, true)

	assert.Equal(t, constants.EventPumpStatus, event.Type)
	require.NotNil(t, event.PumpBefore)
	require.NotNil(t, event.PumpAfter)
	assert.False(t, *event.PumpBefore)
	assert.True(t, *event.PumpAfter)
}

func TestEmitLevel_RequiresUID(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"emit", "level", "--after", "100"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "uid" not set`)
}

func TestAggregate_RejectsBadDate(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"aggregate", "--date", "yesterday"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --date")
}

func TestQRDecode_RequiresPayload(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"qr", "decode"})

	assert.Error(t, root.Execute())
}

func TestPublishEvent(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	ctx := context.Background()
	event := levelEvent("uid-1", 96, 100)

	publisher.EXPECT().
		PublishChangeEvent(ctx, event).
		Run(func(_ context.Context, e *service.ChangeEvent) { e.EventID = "evt-1" }).
		Return(nil).
		Once()

	var out bytes.Buffer
	require.NoError(t, publishEvent(ctx, publisher, &out, event))
	assert.Equal(t, "published water_level event_id=evt-1\n", out.String())
}

func TestPublishEvent_Failure(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)

	publisher.EXPECT().
		PublishChangeEvent(mock.Anything, mock.Anything).
		Return(errors.New("topic not found"))

	var out bytes.Buffer
	err := publishEvent(context.Background(), publisher, &out, pumpEvent("uid-1", false, true))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish pump_status event")
	assert.Empty(t, out.String())
}
