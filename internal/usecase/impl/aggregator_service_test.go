package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tankwatch/config"
	"tankwatch/internal/domain/entity"
	domainerrors "tankwatch/internal/domain/errors"
	mockRepo "tankwatch/internal/mocks/repository"
	"tankwatch/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type aggregatorServiceFixtures struct {
	service  usecase.AggregatorUsecase
	tankRepo *mockRepo.MockTankRepository
}

func createTestAggregatorService(t *testing.T) aggregatorServiceFixtures {
	tankRepo := mockRepo.NewMockTankRepository(t)

	svc, err := NewAggregatorService(AggregatorServiceParams{
		Config: &config.Config{
			Aggregator: &config.AggregatorConfig{Timezone: "Asia/Kolkata", RunAt: "00:01", Workers: 3},
		},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		TankRepo: tankRepo,
	})
	require.NoError(t, err)

	return aggregatorServiceFixtures{
		service:  svc,
		tankRepo: tankRepo,
	}
}

func sampleHistory() []entity.HistoryEntry {
	return []entity.HistoryEntry{
		{Timestamp: "1000", WaterLevel: levelPtr(80), PumpStatus: false},
		{Timestamp: "2000", WaterLevel: levelPtr(80), PumpStatus: true},
		{Timestamp: "3000", WaterLevel: levelPtr(60), PumpStatus: true},
		{Timestamp: "4000", WaterLevel: levelPtr(70), PumpStatus: false},
		{Timestamp: "5000", WaterLevel: levelPtr(50), PumpStatus: true},
	}
}

func TestAggregatorService_RunDaily_TargetsPreviousLocalDay(t *testing.T) {
	fx := createTestAggregatorService(t)
	ctx := context.Background()

	// 2024-05-03 00:01 in Asia/Kolkata
	now := time.Date(2024, 5, 2, 18, 31, 0, 0, time.UTC)

	fx.tankRepo.EXPECT().ListUserIDs(ctx).Return([]string{"user-1"}, nil)
	fx.tankRepo.EXPECT().GetHistory(ctx, "user-1", "2024-05-02").Return(sampleHistory(), nil)
	fx.tankRepo.EXPECT().
		SaveDailyStats(ctx, "user-1", &entity.DailyStats{
			Date:               "2024-05-02",
			TotalWaterConsumed: 40,
			PumpOnCount:        2,
		}).
		Return(nil)

	summary, err := fx.service.RunDaily(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, &usecase.AggregationSummary{Date: "2024-05-02", Users: 1, Processed: 1}, summary)
}

func TestAggregatorService_AggregateDate_FailuresAreIsolated(t *testing.T) {
	fx := createTestAggregatorService(t)
	ctx := context.Background()
	date := "2024-05-02"

	fx.tankRepo.EXPECT().ListUserIDs(ctx).Return([]string{"broken", "idle", "busy", "unsaved"}, nil)
	fx.tankRepo.EXPECT().GetHistory(ctx, "broken", date).Return(nil, errors.New("read timeout"))
	fx.tankRepo.EXPECT().GetHistory(ctx, "idle", date).Return(nil, nil)
	fx.tankRepo.EXPECT().GetHistory(ctx, "busy", date).Return(sampleHistory(), nil)
	fx.tankRepo.EXPECT().GetHistory(ctx, "unsaved", date).Return(sampleHistory(), nil)
	fx.tankRepo.EXPECT().SaveDailyStats(ctx, "busy", mock.AnythingOfType("*entity.DailyStats")).Return(nil)
	fx.tankRepo.EXPECT().
		SaveDailyStats(ctx, "unsaved", mock.AnythingOfType("*entity.DailyStats")).
		Return(errors.New("permission denied"))

	summary, err := fx.service.AggregateDate(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Users)
	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 2, summary.Failed)
}

func TestAggregatorService_AggregateDate_Idempotent(t *testing.T) {
	fx := createTestAggregatorService(t)
	ctx := context.Background()
	date := "2024-05-02"

	var saved []*entity.DailyStats

	fx.tankRepo.EXPECT().ListUserIDs(ctx).Return([]string{"user-1"}, nil).Times(2)
	fx.tankRepo.EXPECT().GetHistory(ctx, "user-1", date).Return(sampleHistory(), nil).Times(2)
	fx.tankRepo.EXPECT().
		SaveDailyStats(ctx, "user-1", mock.AnythingOfType("*entity.DailyStats")).
		Run(func(_ context.Context, _ string, stats *entity.DailyStats) {
			saved = append(saved, stats)
		}).
		Return(nil).
		Times(2)

	_, err := fx.service.AggregateDate(ctx, date)
	require.NoError(t, err)
	_, err = fx.service.AggregateDate(ctx, date)
	require.NoError(t, err)

	require.Len(t, saved, 2)
	assert.Equal(t, saved[0], saved[1])
}

func TestAggregatorService_AggregateDate_NoUsers(t *testing.T) {
	fx := createTestAggregatorService(t)
	ctx := context.Background()

	fx.tankRepo.EXPECT().ListUserIDs(ctx).Return(nil, nil)

	summary, err := fx.service.AggregateDate(ctx, "2024-05-02")
	require.NoError(t, err)
	assert.Zero(t, summary.Users)
}

func TestAggregatorService_AggregateDate_InvalidDate(t *testing.T) {
	fx := createTestAggregatorService(t)

	_, err := fx.service.AggregateDate(context.Background(), "02/05/2024")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestAggregatorService_AggregateDate_ListFailure(t *testing.T) {
	fx := createTestAggregatorService(t)
	ctx := context.Background()

	fx.tankRepo.EXPECT().ListUserIDs(ctx).Return(nil, errors.New("unavailable"))

	_, err := fx.service.AggregateDate(ctx, "2024-05-02")
	require.Error(t, err)
}

func TestNewAggregatorService_InvalidTimezone(t *testing.T) {
	_, err := NewAggregatorService(AggregatorServiceParams{
		Config: &config.Config{
			Aggregator: &config.AggregatorConfig{Timezone: "Mars/Olympus_Mons", Workers: 1},
		},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		TankRepo: mockRepo.NewMockTankRepository(t),
	})
	require.Error(t, err)
}

func TestPreviousDate(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 2024-03-01 00:01 IST is still February in UTC
	now := time.Date(2024, 2, 29, 18, 31, 0, 0, time.UTC)
	assert.Equal(t, "2024-02-29", previousDate(now, kolkata))

	// New year rollover
	now = time.Date(2025, 1, 1, 0, 1, 0, 0, kolkata)
	assert.Equal(t, "2024-12-31", previousDate(now, kolkata))
}
