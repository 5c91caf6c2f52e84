package impl

import (
	"cmp"
	"slices"
	"strconv"

	"tankwatch/internal/domain/entity"
)

// computeDailyStats walks the samples in chronological key order.
// Consumption adds every strict decrease between consecutive levels; a pump start is
// counted on each false -> true transition, with the pump assumed off before the first sample.
func computeDailyStats(date string, entries []entity.HistoryEntry) *entity.DailyStats {
	ordered := slices.Clone(entries)
	slices.SortStableFunc(ordered, func(a, b entity.HistoryEntry) int {
		return compareHistoryKeys(a.Timestamp, b.Timestamp)
	})

	stats := &entity.DailyStats{Date: date}

	var previousLevel *float64
	wasPumpOn := false

	for _, entry := range ordered {
		current := entry.WaterLevel
		if current != nil && previousLevel != nil && *current < *previousLevel {
			stats.TotalWaterConsumed += *previousLevel - *current
		}
		previousLevel = current

		if entry.PumpStatus && !wasPumpOn {
			stats.PumpOnCount++
		}
		wasPumpOn = entry.PumpStatus
	}

	return stats
}

// compareHistoryKeys orders integer keys numerically and everything else lexicographically,
// integers first.
func compareHistoryKeys(a, b string) int {
	ai, aErr := strconv.ParseInt(a, 10, 64)
	bi, bErr := strconv.ParseInt(b, 10, 64)

	switch {
	case aErr == nil && bErr == nil:
		return cmp.Compare(ai, bi)
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}
