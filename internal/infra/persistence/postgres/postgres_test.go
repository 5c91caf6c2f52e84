package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"tankwatch/config"
	deliverycontext "tankwatch/internal/delivery/context"
	"tankwatch/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "translated", err: errors.WithStack(gorm.ErrDuplicatedKey), want: true},
		{name: "driver message", err: errors.New(`ERROR: duplicate key value violates unique constraint "idx_device_credentials_api_key" (SQLSTATE 23505)`), want: true},
		{name: "other", err: errors.New("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestCredentialModelConversion(t *testing.T) {
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	credential := &entity.DeviceCredential{
		HardwareID: "ESP32-ABC",
		UID:        "user-1",
		APIKey:     strings.Repeat("ab", 32),
		CreatedAt:  created,
	}

	assert.Equal(t, credential, toCredentialDomain(fromCredentialDomain(credential)))
}

func newBufferedGormLogger(buf *bytes.Buffer, debug bool) *gormSlogLogger {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg).(*gormSlogLogger)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	query := func() (string, int64) { return "SELECT * FROM device_credentials", 1 }

	t.Run("record not found is not an error", func(t *testing.T) {
		var buf bytes.Buffer
		l := newBufferedGormLogger(&buf, false)

		l.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("failures are logged with sql", func(t *testing.T) {
		var buf bytes.Buffer
		l := newBufferedGormLogger(&buf, false)

		l.Trace(context.Background(), time.Now(), query, errors.New("connection reset"))
		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "device_credentials")
	})

	t.Run("slow queries warn", func(t *testing.T) {
		var buf bytes.Buffer
		l := newBufferedGormLogger(&buf, false)

		l.Trace(context.Background(), time.Now().Add(-time.Second), query, nil)
		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast queries only in debug", func(t *testing.T) {
		var quiet, verbose bytes.Buffer

		newBufferedGormLogger(&quiet, false).Trace(context.Background(), time.Now(), query, nil)
		newBufferedGormLogger(&verbose, true).Trace(context.Background(), time.Now(), query, nil)

		assert.Empty(t, quiet.String())
		assert.Contains(t, verbose.String(), "GORM query")
	})

	t.Run("silent mode", func(t *testing.T) {
		var buf bytes.Buffer
		l := newBufferedGormLogger(&buf, true).LogMode(logger.Silent)

		l.Trace(context.Background(), time.Now(), query, errors.New("boom"))
		assert.Empty(t, buf.String())
	})
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newBufferedGormLogger(&base, false)

	ctx := deliverycontext.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-1")))
	l.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-1")
}

func TestGormSlogLogger_TruncatesLongSQL(t *testing.T) {
	l := newBufferedGormLogger(&bytes.Buffer{}, true)
	long := strings.Repeat("x", maxLoggedSQLLength+10)

	attrs := l.buildQueryAttrs(func() (string, int64) { return long, 0 }, time.Millisecond)

	assert.Len(t, attrs[2].Value.String(), maxLoggedSQLLength+3)
}
