package rtdb

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"

	domainerrors "tankwatch/internal/domain/errors"
	"tankwatch/internal/domain/entity"
	"tankwatch/internal/domain/repository"

	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
)

const tanksRoot = "tanks"

// serverTimestamp asks the database to substitute its own clock
var serverTimestamp = map[string]string{".sv": "timestamp"}

type tankRepository struct {
	store store
}

// NewTankRepository creates the tank repository on a Realtime Database client
func NewTankRepository(client *db.Client) repository.TankRepository {
	return &tankRepository{store: &clientStore{client: client}}
}

func tankPath(uid string, segments ...string) string {
	path := tanksRoot + "/" + uid
	for _, segment := range segments {
		path += "/" + segment
	}

	return path
}

func wrapStoreError(err error, details string) error {
	return errors.WithStack(domainerrors.NewDatabaseExecuteError(err, details))
}

// GetNotificationSetting returns the raw stored value so callers can insist on a real boolean.
func (r *tankRepository) GetNotificationSetting(ctx context.Context, uid string) (any, error) {
	var value any
	if err := r.store.Get(ctx, tankPath(uid, "settings", "notifications_enabled"), &value); err != nil {
		return nil, wrapStoreError(err, "read notifications_enabled")
	}

	return value, nil
}

func (r *tankRepository) GetAutoMode(ctx context.Context, uid string) (bool, error) {
	var value any
	if err := r.store.Get(ctx, tankPath(uid, "controls", "auto_mode"), &value); err != nil {
		return false, wrapStoreError(err, "read auto_mode")
	}

	autoMode, _ := value.(bool)

	return autoMode, nil
}

func (r *tankRepository) GetNotificationFlags(ctx context.Context, uid string) (*entity.NotificationFlags, error) {
	var raw map[string]any
	if err := r.store.Get(ctx, tankPath(uid, "notification_flags"), &raw); err != nil {
		return nil, wrapStoreError(err, "read notification_flags")
	}

	loggedFull, _ := raw["loggedFull"].(bool)
	loggedEmpty, _ := raw["loggedEmpty"].(bool)

	return &entity.NotificationFlags{LoggedFull: loggedFull, LoggedEmpty: loggedEmpty}, nil
}

func (r *tankRepository) SetNotificationFlags(ctx context.Context, uid string, flags *entity.NotificationFlags) error {
	if err := r.store.Set(ctx, tankPath(uid, "notification_flags"), flags); err != nil {
		return wrapStoreError(err, "write notification_flags")
	}

	return nil
}

func (r *tankRepository) GetPushTokens(ctx context.Context, uid string) ([]string, error) {
	var members map[string]any
	if err := r.store.GetShallow(ctx, tankPath(uid, "fcm_tokens"), &members); err != nil {
		return nil, wrapStoreError(err, "read fcm_tokens")
	}

	tokens := make([]string, 0, len(members))
	for token := range members {
		tokens = append(tokens, token)
	}

	return tokens, nil
}

func (r *tankRepository) AddPushToken(ctx context.Context, uid, token string) error {
	if err := r.store.Set(ctx, tankPath(uid, "fcm_tokens", token), true); err != nil {
		return wrapStoreError(err, "write fcm_tokens")
	}

	return nil
}

func (r *tankRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	var tanks map[string]any
	if err := r.store.GetShallow(ctx, tanksRoot, &tanks); err != nil {
		return nil, wrapStoreError(err, "list tanks")
	}

	uids := make([]string, 0, len(tanks))
	for uid := range tanks {
		uids = append(uids, uid)
	}

	return uids, nil
}

// historySample is the shape a device writes under history/{date}/{timestamp}
type historySample struct {
	WaterLevel *float64 `json:"water_level"`
	PumpStatus any      `json:"pump_status"`
}

func (s *historySample) entry(key string) entity.HistoryEntry {
	pumpOn, _ := s.PumpStatus.(bool)

	return entity.HistoryEntry{Timestamp: key, WaterLevel: s.WaterLevel, PumpStatus: pumpOn}
}

func (r *tankRepository) GetHistory(ctx context.Context, uid, date string) ([]entity.HistoryEntry, error) {
	var raw json.RawMessage
	if err := r.store.Get(ctx, tankPath(uid, "history", date), &raw); err != nil {
		return nil, wrapStoreError(err, "read history")
	}

	entries, err := decodeHistory(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "decode history of %s/%s", uid, date)
	}

	return entries, nil
}

// decodeHistory accepts both encodings the database uses for a history node: an object keyed by
// timestamp, or an array when the keys happen to be small sequential integers.
func decodeHistory(raw json.RawMessage) ([]entity.HistoryEntry, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var samples []*historySample
		if err := json.Unmarshal(trimmed, &samples); err != nil {
			return nil, errors.WithStack(err)
		}

		entries := make([]entity.HistoryEntry, 0, len(samples))
		for idx, sample := range samples {
			if sample == nil {
				continue
			}
			entries = append(entries, sample.entry(strconv.Itoa(idx)))
		}

		return entries, nil
	}

	var samples map[string]*historySample
	if err := json.Unmarshal(trimmed, &samples); err != nil {
		return nil, errors.WithStack(err)
	}

	entries := make([]entity.HistoryEntry, 0, len(samples))
	for key, sample := range samples {
		if sample == nil {
			continue
		}
		entries = append(entries, sample.entry(key))
	}

	return entries, nil
}

// dailyStatsRecord is the stored shape of daily_stats/{date}
type dailyStatsRecord struct {
	Date               string            `json:"date"`
	TotalWaterConsumed float64           `json:"totalWaterConsumed"`
	PumpOnCount        int               `json:"pumpOnCount"`
	LastUpdated        map[string]string `json:"lastUpdated"`
}

func (r *tankRepository) SaveDailyStats(ctx context.Context, uid string, stats *entity.DailyStats) error {
	record := &dailyStatsRecord{
		Date:               stats.Date,
		TotalWaterConsumed: stats.TotalWaterConsumed,
		PumpOnCount:        stats.PumpOnCount,
		LastUpdated:        serverTimestamp,
	}

	if err := r.store.Set(ctx, tankPath(uid, "daily_stats", stats.Date), record); err != nil {
		return wrapStoreError(err, "write daily_stats")
	}

	return nil
}
