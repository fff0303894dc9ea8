package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "30M"
	defaultAPIPrefix          = "/api"
	defaultPort               = 5000

	defaultImageFolder      = "pol-products"
	defaultImageMaxFiles    = 5
	defaultImageMaxFileSize = 5 * 1024 * 1024

	defaultCleanupSchedule    = "@every 1m"
	defaultCleanupMaxAttempts = 5
	defaultCleanupBatchSize   = 50
	defaultCleanupRetryDelay  = time.Minute

	defaultTicketSequenceStart = 1000
	defaultTokenTTL            = 24 * time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		APIPrefix          string   `json:"apiPrefix" yaml:"apiPrefix"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		CORSOrigins        []string `json:"corsOrigins" yaml:"corsOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Images *ImagesConfig `json:"images" yaml:"images"`

	// Cleanup configures the background sweep that retries failed remote image deletes
	Cleanup *CleanupConfig `json:"cleanup" yaml:"cleanup"`

	TicketSequence *TicketSequenceConfig `json:"ticketSequence" yaml:"ticketSequence"`

	// Events configuration for catalog change events
	Events *EventsConfig `json:"events" yaml:"events"`

	// QRCode configuration for ticket QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// DatabaseConfig selects the gorm dialector.
type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite"
	Driver string `json:"driver" yaml:"driver"`
	// DSN is only read by the sqlite driver; postgres uses the postgres section
	DSN                string        `json:"dsn" yaml:"dsn"`
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL          time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	MinPasswordLength int           `json:"minPasswordLength" yaml:"minPasswordLength"`
	AdminUsername     string        `json:"adminUsername" yaml:"adminUsername"`
	AdminPassword     string        `json:"adminPassword" yaml:"adminPassword"`
}

// ImagesConfig defines the remote image host
type ImagesConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. file:///var/lib/storefront/media or s3://bucket
	BucketURL     string `json:"bucketUrl" yaml:"bucketUrl"`
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	Folder        string `json:"folder" yaml:"folder"`
	MaxFiles      int    `json:"maxFiles" yaml:"maxFiles"`
	MaxFileSize   int64  `json:"maxFileSize" yaml:"maxFileSize"`
}

type CleanupConfig struct {
	Enabled     bool          `json:"enabled" yaml:"enabled"`
	Schedule    string        `json:"schedule" yaml:"schedule"`
	MaxAttempts int           `json:"maxAttempts" yaml:"maxAttempts"`
	BatchSize   int           `json:"batchSize" yaml:"batchSize"`
	RetryDelay  time.Duration `json:"retryDelay" yaml:"retryDelay"`
}

// TicketSequenceConfig defines where ticket numbers are allocated
type TicketSequenceConfig struct {
	// Provider is "gorm" (default) or "redis"
	Provider string      `json:"provider" yaml:"provider"`
	StartAt  int64       `json:"startAt" yaml:"startAt"`
	Redis    RedisConfig `json:"redis" yaml:"redis"`
}

type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// EventsConfig defines where domain events are published
type EventsConfig struct {
	// Provider type: "" disables publishing, "kafka" publishes to Brokers,
	// "pubsub" publishes to Topic in the Google Cloud project ProjectID
	Provider  string   `json:"provider" yaml:"provider"`
	Brokers   []string `json:"brokers" yaml:"brokers"`
	Topic     string   `json:"topic" yaml:"topic"`
	ProjectID string   `json:"projectId" yaml:"projectId"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf, then overlays environment variables.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	configFile, err := findConfigFile(currEnv, configPath...)
	if err != nil {
		return nil, err
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// ENV_VAR_NAME is aligned with the YAML key casing, e.g. IMAGES_BUCKETURL -> images.bucketUrl
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
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
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, configPath ...string) (string, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", slog.Any("error", err))
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section so callers never nil-check them.
func (cfg *Config) ApplyDefaults() {
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultPort
	}
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.APIPrefix == "" {
		cfg.HTTP.APIPrefix = defaultAPIPrefix
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}
	if cfg.Auth.MinPasswordLength <= 0 {
		cfg.Auth.MinPasswordLength = 8
	}

	if cfg.Images == nil {
		cfg.Images = &ImagesConfig{}
	}
	if cfg.Images.Folder == "" {
		cfg.Images.Folder = defaultImageFolder
	}
	if cfg.Images.MaxFiles <= 0 {
		cfg.Images.MaxFiles = defaultImageMaxFiles
	}
	if cfg.Images.MaxFileSize <= 0 {
		cfg.Images.MaxFileSize = defaultImageMaxFileSize
	}

	if cfg.Cleanup == nil {
		cfg.Cleanup = &CleanupConfig{Enabled: true}
	}
	if cfg.Cleanup.Schedule == "" {
		cfg.Cleanup.Schedule = defaultCleanupSchedule
	}
	if cfg.Cleanup.MaxAttempts <= 0 {
		cfg.Cleanup.MaxAttempts = defaultCleanupMaxAttempts
	}
	if cfg.Cleanup.BatchSize <= 0 {
		cfg.Cleanup.BatchSize = defaultCleanupBatchSize
	}
	if cfg.Cleanup.RetryDelay <= 0 {
		cfg.Cleanup.RetryDelay = defaultCleanupRetryDelay
	}

	if cfg.TicketSequence == nil {
		cfg.TicketSequence = &TicketSequenceConfig{}
	}
	if cfg.TicketSequence.Provider == "" {
		cfg.TicketSequence.Provider = "gorm"
	}
	if cfg.TicketSequence.StartAt <= 0 {
		cfg.TicketSequence.StartAt = defaultTicketSequenceStart
	}
	if cfg.TicketSequence.Redis.KeyPrefix == "" {
		cfg.TicketSequence.Redis.KeyPrefix = "storefront:seq:"
	}

	if cfg.Events == nil {
		cfg.Events = &EventsConfig{}
	}
	if cfg.Events.Topic == "" {
		cfg.Events.Topic = "storefront_events"
	}
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

// buildReplicasFromEnv builds read replicas from POSTGRES_REPLICAS_{index}_{field}.
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
