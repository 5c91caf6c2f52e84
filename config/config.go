package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultFullLevel       = 100
	defaultFullRearmLevel  = 95
	defaultEmptyLevel      = 5
	defaultEmptyRearmLevel = 10
	defaultPushBatchSize   = 500

	defaultAggregatorTimezone = "Asia/Kolkata"
	defaultAggregatorRunAt    = "00:01"
	defaultAggregatorWorkers  = 8

	defaultIdentityTokenTTL = time.Hour
	defaultRateLimitRPS     = 1
	defaultRateLimitBurst   = 5
)

// Credential store drivers.
const (
	CredentialStoreFirestore = "firestore"
	CredentialStorePostgres  = "postgres"
	CredentialStoreMemory    = "memory"
)

// Identity token providers.
const (
	IdentityProviderFirebase = "firebase"
	IdentityProviderJWT      = "jwt"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		WorkerPort         int    `json:"workerPort" yaml:"workerPort"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// TrustProxy takes the client IP from X-Forwarded-For, as set by the load balancer
		TrustProxy         bool   `json:"trustProxy" yaml:"trustProxy"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Firebase project hosting the realtime tank store, Firestore and FCM
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// CredentialStore selects where device credentials are kept
	CredentialStore *CredentialStoreConfig `json:"credentialStore" yaml:"credentialStore"`

	// Postgres is only read when CredentialStore.Driver is "postgres"
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// IdentityToken configures minting and verification of identity tokens
	IdentityToken *IdentityTokenConfig `json:"identityToken" yaml:"identityToken"`

	Notifier *NotifierConfig `json:"notifier" yaml:"notifier"`

	Aggregator *AggregatorConfig `json:"aggregator" yaml:"aggregator"`

	// PubSub configuration for change events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// RateLimit applies to the unauthenticated token exchange endpoint
	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// QRCode configuration for device provisioning codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines the Firebase project used by the service
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	DatabaseURL     string `json:"databaseURL" yaml:"databaseURL"`
}

// CredentialStoreConfig defines the device credential backend
type CredentialStoreConfig struct {
	// Driver is one of "firestore", "postgres" or "memory"
	Driver string `json:"driver" yaml:"driver"`

	// Collection is the Firestore collection holding credentials
	Collection string `json:"collection" yaml:"collection"`
}

// IdentityTokenConfig defines how device identity tokens are minted and how callers are verified
type IdentityTokenConfig struct {
	// Provider is "firebase" (custom tokens / ID tokens) or "jwt" (HS256, for self-hosted setups)
	Provider string        `json:"provider" yaml:"provider"`
	Secret   string        `json:"secret" yaml:"secret"`
	Issuer   string        `json:"issuer" yaml:"issuer"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
}

// NotifierConfig holds the hysteresis thresholds of the level notifier
type NotifierConfig struct {
	// Thresholds are pointers so an explicit 0 is kept; nil takes the default
	FullLevel       *float64 `json:"fullLevel" yaml:"fullLevel"`
	FullRearmLevel  *float64 `json:"fullRearmLevel" yaml:"fullRearmLevel"`
	EmptyLevel      *float64 `json:"emptyLevel" yaml:"emptyLevel"`
	EmptyRearmLevel *float64 `json:"emptyRearmLevel" yaml:"emptyRearmLevel"`

	// PushBatchSize caps tokens per multicast call (FCM allows 500)
	PushBatchSize int `json:"pushBatchSize" yaml:"pushBatchSize"`
}

// AggregatorConfig defines when and how the daily statistics job runs
type AggregatorConfig struct {
	Timezone         string `json:"timezone" yaml:"timezone"`
	RunAt            string `json:"runAt" yaml:"runAt"` // HH:MM local time
	Workers          int    `json:"workers" yaml:"workers"`
	SchedulerEnabled bool   `json:"schedulerEnabled" yaml:"schedulerEnabled"`
}

// PubSubConfig defines Pub/Sub configuration for change events
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// RateLimitConfig defines per-client limits for the token exchange endpoint
type RateLimitConfig struct {
	RPS   float64 `json:"rps" yaml:"rps"`
	Burst int     `json:"burst" yaml:"burst"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Align each env segment with existing YAML keys.
			// Example: FIREBASE_DATABASEURL -> firebase.databaseURL
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills optional sections and validates the ones that must be consistent.
func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.CredentialStore == nil {
		cfg.CredentialStore = &CredentialStoreConfig{}
	}
	if cfg.CredentialStore.Driver == "" {
		cfg.CredentialStore.Driver = CredentialStoreFirestore
	}
	if cfg.CredentialStore.Collection == "" {
		cfg.CredentialStore.Collection = "devices"
	}
	switch cfg.CredentialStore.Driver {
	case CredentialStoreFirestore, CredentialStoreMemory:
	case CredentialStorePostgres:
		if cfg.Postgres == nil {
			return errors.New("postgres section is required for the postgres credential store")
		}
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	default:
		return errors.Errorf("unknown credential store driver: %s", cfg.CredentialStore.Driver)
	}

	if cfg.IdentityToken == nil {
		cfg.IdentityToken = &IdentityTokenConfig{}
	}
	if cfg.IdentityToken.Provider == "" {
		cfg.IdentityToken.Provider = IdentityProviderFirebase
	}
	if cfg.IdentityToken.TTL <= 0 {
		cfg.IdentityToken.TTL = defaultIdentityTokenTTL
	}
	if cfg.IdentityToken.Provider == IdentityProviderJWT && cfg.IdentityToken.Secret == "" {
		return errors.New("identityToken.secret is required for the jwt provider")
	}

	if cfg.Notifier == nil {
		cfg.Notifier = &NotifierConfig{}
	}
	if err := cfg.Notifier.applyDefaults(); err != nil {
		return err
	}

	if cfg.Aggregator == nil {
		cfg.Aggregator = &AggregatorConfig{}
	}
	if cfg.Aggregator.Timezone == "" {
		cfg.Aggregator.Timezone = defaultAggregatorTimezone
	}
	if cfg.Aggregator.RunAt == "" {
		cfg.Aggregator.RunAt = defaultAggregatorRunAt
	}
	if cfg.Aggregator.Workers <= 0 {
		cfg.Aggregator.Workers = defaultAggregatorWorkers
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.RPS <= 0 {
		cfg.RateLimit.RPS = defaultRateLimitRPS
	}
	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = defaultRateLimitBurst
	}

	return nil
}

func (n *NotifierConfig) applyDefaults() error {
	n.FullLevel = orDefault(n.FullLevel, defaultFullLevel)
	n.FullRearmLevel = orDefault(n.FullRearmLevel, defaultFullRearmLevel)
	n.EmptyLevel = orDefault(n.EmptyLevel, defaultEmptyLevel)
	n.EmptyRearmLevel = orDefault(n.EmptyRearmLevel, defaultEmptyRearmLevel)
	if n.PushBatchSize <= 0 || n.PushBatchSize > defaultPushBatchSize {
		n.PushBatchSize = defaultPushBatchSize
	}

	fullLevel, fullRearm := n.FullThresholds()
	emptyLevel, emptyRearm := n.EmptyThresholds()
	for name, level := range map[string]float64{
		"fullLevel":       fullLevel,
		"fullRearmLevel":  fullRearm,
		"emptyLevel":      emptyLevel,
		"emptyRearmLevel": emptyRearm,
	} {
		if level < 0 || level > 100 {
			return errors.Errorf("notifier.%s must be within 0..100, got %v", name, level)
		}
	}
	if fullRearm >= fullLevel {
		return errors.Errorf("notifier.fullRearmLevel (%v) must be below fullLevel (%v)", fullRearm, fullLevel)
	}
	if emptyRearm <= emptyLevel {
		return errors.Errorf("notifier.emptyRearmLevel (%v) must be above emptyLevel (%v)", emptyRearm, emptyLevel)
	}

	return nil
}

// FullThresholds returns the full trigger level and the level that rearms it.
func (n *NotifierConfig) FullThresholds() (trigger, rearm float64) {
	return valueOr(n.FullLevel, defaultFullLevel), valueOr(n.FullRearmLevel, defaultFullRearmLevel)
}

// EmptyThresholds returns the empty trigger level and the level that rearms it.
func (n *NotifierConfig) EmptyThresholds() (trigger, rearm float64) {
	return valueOr(n.EmptyLevel, defaultEmptyLevel), valueOr(n.EmptyRearmLevel, defaultEmptyRearmLevel)
}

func orDefault(v *float64, def float64) *float64 {
	if v != nil {
		return v
	}

	return &def
}

func valueOr(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}

	return def
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
