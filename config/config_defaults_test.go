package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, CredentialStoreFirestore, cfg.CredentialStore.Driver)
	assert.Equal(t, "devices", cfg.CredentialStore.Collection)
	assert.Equal(t, IdentityProviderFirebase, cfg.IdentityToken.Provider)
	assert.Equal(t, time.Hour, cfg.IdentityToken.TTL)

	require.NotNil(t, cfg.Notifier.FullLevel)
	assert.Equal(t, 100.0, *cfg.Notifier.FullLevel)
	require.NotNil(t, cfg.Notifier.FullRearmLevel)
	assert.Equal(t, 95.0, *cfg.Notifier.FullRearmLevel)
	require.NotNil(t, cfg.Notifier.EmptyLevel)
	assert.Equal(t, 5.0, *cfg.Notifier.EmptyLevel)
	require.NotNil(t, cfg.Notifier.EmptyRearmLevel)
	assert.Equal(t, 10.0, *cfg.Notifier.EmptyRearmLevel)
	assert.Equal(t, 500, cfg.Notifier.PushBatchSize)

	assert.Equal(t, "Asia/Kolkata", cfg.Aggregator.Timezone)
	assert.Equal(t, "00:01", cfg.Aggregator.RunAt)
	assert.Equal(t, defaultAggregatorWorkers, cfg.Aggregator.Workers)
}

func TestApplyDefaults_PushBatchSizeCappedAtFCMLimit(t *testing.T) {
	cfg := &Config{Notifier: &NotifierConfig{PushBatchSize: 2000}}

	require.NoError(t, cfg.applyDefaults())
	assert.Equal(t, 500, cfg.Notifier.PushBatchSize)
}

func TestApplyDefaults_PostgresDriverRequiresSection(t *testing.T) {
	cfg := &Config{CredentialStore: &CredentialStoreConfig{Driver: CredentialStorePostgres}}

	err := cfg.applyDefaults()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres section is required")
}

func TestApplyDefaults_UnknownDriver(t *testing.T) {
	cfg := &Config{CredentialStore: &CredentialStoreConfig{Driver: "redis"}}

	err := cfg.applyDefaults()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown credential store driver")
}

func TestApplyDefaults_JWTProviderRequiresSecret(t *testing.T) {
	cfg := &Config{IdentityToken: &IdentityTokenConfig{Provider: IdentityProviderJWT}}

	err := cfg.applyDefaults()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "identityToken.secret is required")
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestApplyDefaults_ExplicitZeroThresholdIsKept(t *testing.T) {
	cfg := &Config{Notifier: &NotifierConfig{EmptyLevel: floatPtr(0)}}

	require.NoError(t, cfg.applyDefaults())

	level, rearm := cfg.Notifier.EmptyThresholds()
	assert.Equal(t, 0.0, level)
	assert.Equal(t, 10.0, rearm)
}

func TestApplyDefaults_RejectsBadThresholds(t *testing.T) {
	tests := []struct {
		name     string
		notifier *NotifierConfig
		wantErr  string
	}{
		{
			name:     "full rearm not below full",
			notifier: &NotifierConfig{FullLevel: floatPtr(90), FullRearmLevel: floatPtr(95)},
			wantErr:  "fullRearmLevel (95) must be below fullLevel (90)",
		},
		{
			name:     "full rearm equal to full",
			notifier: &NotifierConfig{FullRearmLevel: floatPtr(100)},
			wantErr:  "must be below fullLevel",
		},
		{
			name:     "empty rearm not above empty",
			notifier: &NotifierConfig{EmptyLevel: floatPtr(20)},
			wantErr:  "emptyRearmLevel (10) must be above emptyLevel (20)",
		},
		{
			name:     "out of range",
			notifier: &NotifierConfig{FullLevel: floatPtr(120)},
			wantErr:  "notifier.fullLevel must be within 0..100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Notifier: tt.notifier}

			err := cfg.applyDefaults()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyDefaults_OverlappingBandsAreAllowed(t *testing.T) {
	cfg := &Config{Notifier: &NotifierConfig{
		FullLevel:       floatPtr(50),
		FullRearmLevel:  floatPtr(45),
		EmptyLevel:      floatPtr(60),
		EmptyRearmLevel: floatPtr(65),
	}}

	assert.NoError(t, cfg.applyDefaults())
}
