package impl

import (
	"testing"

	"tankwatch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func levelPtr(v float64) *float64 {
	return &v
}

func history(levels []float64, pumps []bool) []entity.HistoryEntry {
	entries := make([]entity.HistoryEntry, 0, len(levels))
	for i := range levels {
		entries = append(entries, entity.HistoryEntry{
			Timestamp:  string(rune('a' + i)),
			WaterLevel: levelPtr(levels[i]),
			PumpStatus: pumps[i],
		})
	}

	return entries
}

func TestComputeDailyStats_Consumption(t *testing.T) {
	entries := history(
		[]float64{80, 80, 60, 70, 50},
		[]bool{false, false, false, false, false},
	)

	stats := computeDailyStats("2024-05-01", entries)

	assert.Equal(t, "2024-05-01", stats.Date)
	assert.Equal(t, 40.0, stats.TotalWaterConsumed)
	assert.Equal(t, 0, stats.PumpOnCount)
}

func TestComputeDailyStats_PumpStarts(t *testing.T) {
	entries := history(
		[]float64{50, 50, 50, 50, 50},
		[]bool{false, true, true, false, true},
	)

	stats := computeDailyStats("2024-05-01", entries)

	assert.Equal(t, 2, stats.PumpOnCount)
	assert.Zero(t, stats.TotalWaterConsumed)
}

func TestComputeDailyStats_FirstSampleWithPumpOnCounts(t *testing.T) {
	entries := history([]float64{40}, []bool{true})

	stats := computeDailyStats("2024-05-01", entries)

	assert.Equal(t, 1, stats.PumpOnCount)
}

func TestComputeDailyStats_OrdersNumericKeys(t *testing.T) {
	entries := []entity.HistoryEntry{
		{Timestamp: "1714550400000", WaterLevel: levelPtr(60)},
		{Timestamp: "900000000000", WaterLevel: levelPtr(90)},
		{Timestamp: "1714500000000", WaterLevel: levelPtr(80)},
	}

	stats := computeDailyStats("2024-05-01", entries)

	// 90 -> 80 -> 60
	assert.Equal(t, 30.0, stats.TotalWaterConsumed)
}

func TestComputeDailyStats_MissingLevelBreaksChain(t *testing.T) {
	entries := []entity.HistoryEntry{
		{Timestamp: "1", WaterLevel: levelPtr(90)},
		{Timestamp: "2"},
		{Timestamp: "3", WaterLevel: levelPtr(70)},
		{Timestamp: "4", WaterLevel: levelPtr(60)},
	}

	stats := computeDailyStats("2024-05-01", entries)

	assert.Equal(t, 10.0, stats.TotalWaterConsumed)
}

func TestComputeDailyStats_Idempotent(t *testing.T) {
	entries := history(
		[]float64{80, 80, 60, 70, 50},
		[]bool{false, true, true, false, true},
	)

	first := computeDailyStats("2024-05-01", entries)
	second := computeDailyStats("2024-05-01", entries)

	assert.Equal(t, first, second)
}

func TestCompareHistoryKeys(t *testing.T) {
	assert.Negative(t, compareHistoryKeys("9", "10"))
	assert.Positive(t, compareHistoryKeys("b", "a"))
	assert.Negative(t, compareHistoryKeys("10", "a"))
	assert.Zero(t, compareHistoryKeys("12", "12"))
}
