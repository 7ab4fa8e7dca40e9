package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	dbconfig "github.com/initia-labs/bridgeinfo/orm/config"
	"github.com/initia-labs/bridgeinfo/types"
)

var (
	Version    = "dev"
	CommitHash = "unknown"

	// Singleton instance
	configInstance *Config
	configOnce     sync.Once
)

// Default configuration constants
const (
	// Port settings
	DefaultAPIPort     = "8080"
	DefaultMetricsPort = "9090"
	MinPortNumber      = 1
	MaxPortNumber      = 65535

	// RPC settings
	DefaultRPCPath   = "/"
	DefaultBodyLimit = 1 << 20

	// Database settings
	DefaultDBMaxConns     = 10
	DefaultDBIdleConns    = 2
	DefaultDBMigrationDir = "orm/migrations"

	// Store settings
	StoreBackendPostgres = "postgres"
	StoreBackendMemory   = "memory"

	// Cache settings
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 10 * time.Second

	// Concurrent store read settings
	DefaultMaxConcurrentReads = 50
	MaxAllowedConcurrentReads = 1000

	// Metrics settings
	DefaultMetricsPath = "/metrics"

	// Default environment
	DefaultEnvironment = "local"
)

type MetricsConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
	Port    string `json:"port"`
}

// StoreConfig selects and tunes the key-value store backend
type StoreConfig struct {
	Backend            string        `json:"backend"`
	FixturePath        string        `json:"fixture_path"` // memory backend only
	MaxConcurrentReads int           `json:"max_concurrent_reads"`
	CacheSize          int           `json:"cache_size"`
	CacheTTL           time.Duration `json:"cache_ttl"`
}

// SentryConfig contains configuration for Sentry integration
type SentryConfig struct {
	DSN              string  `json:"dsn"`
	SampleRate       float64 `json:"sample_rate"`
	TracesSampleRate float64 `json:"traces_sample_rate"`
	Environment      string  `json:"environment"`
}

func SetBuildInfo(v, commit string) {
	Version = v
	CommitHash = commit
}

type Config struct {
	listenPort    string
	rpcPath       string
	proxyHeader   string
	bodyLimit     int
	dbConfig      *dbconfig.Config
	storeConfig   *StoreConfig
	logLevel      string
	logFormat     string
	metricsConfig *MetricsConfig
	sentryConfig  *SentryConfig
}

func setDefaults() {
	viper.SetDefault("PORT", DefaultAPIPort)
	viper.SetDefault("RPC_PATH", DefaultRPCPath)
	viper.SetDefault("PROXY_HEADER", "")
	viper.SetDefault("BODY_LIMIT", DefaultBodyLimit)
	viper.SetDefault("STORE_BACKEND", StoreBackendPostgres)
	viper.SetDefault("STORE_FIXTURE", "")
	viper.SetDefault("DB_AUTO_MIGRATE", false)
	viper.SetDefault("DB_MAX_CONNS", DefaultDBMaxConns)
	viper.SetDefault("DB_IDLE_CONNS", DefaultDBIdleConns)
	viper.SetDefault("DB_MIGRATION_DIR", DefaultDBMigrationDir)
	viper.SetDefault("MAX_CONCURRENT_READS", DefaultMaxConcurrentReads)
	viper.SetDefault("CACHE_SIZE", DefaultCacheSize)
	viper.SetDefault("CACHE_TTL", DefaultCacheTTL)
	viper.SetDefault("LOG_LEVEL", "warn")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("METRICS_ENABLED", false)
	viper.SetDefault("METRICS_PATH", DefaultMetricsPath)
	viper.SetDefault("METRICS_PORT", DefaultMetricsPort)
	viper.SetDefault("ENVIRONMENT", DefaultEnvironment)

	// Sentry defaults
	viper.SetDefault("SENTRY_DSN", "")
	viper.SetDefault("SENTRY_SAMPLE_RATE", 0.01)
	viper.SetDefault("SENTRY_TRACES_SAMPLE_RATE", 0.01)

	// DB_DSN has no default
}

func GetConfig() (*Config, error) {
	var err error

	configOnce.Do(func() {
		configInstance, err = loadConfig()
	})

	return configInstance, err
}

func loadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// just log without panic, local testing purpose only
		fmt.Fprintln(os.Stderr, "No .env file found")
	}
	viper.AutomaticEnv()
	setDefaults()

	config := &Config{
		listenPort:  viper.GetString("PORT"),
		rpcPath:     viper.GetString("RPC_PATH"),
		proxyHeader: strings.TrimSpace(viper.GetString("PROXY_HEADER")),
		bodyLimit:   viper.GetInt("BODY_LIMIT"),
		dbConfig: &dbconfig.Config{
			DSN:          viper.GetString("DB_DSN"),
			AutoMigrate:  viper.GetBool("DB_AUTO_MIGRATE"),
			MaxConns:     viper.GetInt("DB_MAX_CONNS"),
			IdleConns:    viper.GetInt("DB_IDLE_CONNS"),
			MigrationDir: viper.GetString("DB_MIGRATION_DIR"),
		},
		storeConfig: &StoreConfig{
			Backend:            strings.ToLower(viper.GetString("STORE_BACKEND")),
			FixturePath:        viper.GetString("STORE_FIXTURE"),
			MaxConcurrentReads: viper.GetInt("MAX_CONCURRENT_READS"),
			CacheSize:          viper.GetInt("CACHE_SIZE"),
			CacheTTL:           viper.GetDuration("CACHE_TTL"),
		},
		logLevel:  viper.GetString("LOG_LEVEL"),
		logFormat: viper.GetString("LOG_FORMAT"),
		metricsConfig: &MetricsConfig{
			Enabled: viper.GetBool("METRICS_ENABLED"),
			Path:    viper.GetString("METRICS_PATH"),
			Port:    viper.GetString("METRICS_PORT"),
		},
		sentryConfig: &SentryConfig{
			DSN:              viper.GetString("SENTRY_DSN"),
			SampleRate:       viper.GetFloat64("SENTRY_SAMPLE_RATE"),
			TracesSampleRate: viper.GetFloat64("SENTRY_TRACES_SAMPLE_RATE"),
			Environment:      viper.GetString("ENVIRONMENT"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c Config) GetListenPort() string {
	return c.listenPort
}

func (c Config) GetRPCPath() string {
	if c.rpcPath == "" {
		return DefaultRPCPath
	}
	return c.rpcPath
}

// SetRPCPath assigns the RPC path for testing purposes.
func (c *Config) SetRPCPath(path string) {
	c.rpcPath = path
}

// GetProxyHeader returns the header the client identity is read from, or ""
// to use the connection's remote address.
func (c Config) GetProxyHeader() string {
	return c.proxyHeader
}

// SetProxyHeader assigns the proxy header for testing purposes.
func (c *Config) SetProxyHeader(header string) {
	c.proxyHeader = header
}

func (c Config) GetBodyLimit() int {
	return c.bodyLimit
}

// SetDBConfig assigns the DB config for testing purposes.
func (c *Config) SetDBConfig(dbCfg *dbconfig.Config) {
	c.dbConfig = dbCfg
}

func (c Config) GetDBConfig() *dbconfig.Config {
	return c.dbConfig
}

// SetStoreConfig assigns the store config for testing purposes.
func (c *Config) SetStoreConfig(storeCfg *StoreConfig) {
	c.storeConfig = storeCfg
}

func (c Config) GetStoreConfig() *StoreConfig {
	return c.storeConfig
}

func (c Config) GetStoreBackend() string {
	if c.storeConfig == nil {
		return StoreBackendPostgres
	}
	return c.storeConfig.Backend
}

func (c Config) GetSentryConfig() *SentryConfig {
	if c.sentryConfig == nil || c.sentryConfig.DSN == "" {
		return nil
	}
	return c.sentryConfig
}

func (c Config) GetLogLevel() slog.Level {
	switch c.logLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func (c Config) GetMetricsConfig() *MetricsConfig {
	return c.metricsConfig
}

// SetMetricsConfig assigns the metrics config for testing purposes.
func (c *Config) SetMetricsConfig(metricsCfg *MetricsConfig) {
	c.metricsConfig = metricsCfg
}

func (c Config) GetLogFormat() string {
	if c.logFormat == "json" {
		return "json"
	}
	return "plain"
}

func (c Config) Validate() error {
	if err := c.validatePort(); err != nil {
		return err
	}
	if err := c.validateRPCSettings(); err != nil {
		return err
	}
	if err := c.validateLogSettings(); err != nil {
		return err
	}
	if err := c.validateStoreConfig(); err != nil {
		return err
	}
	if err := c.validateMetricsConfig(); err != nil {
		return err
	}
	return nil
}

// validatePort validates the listen port configuration
func (c Config) validatePort() error {
	if len(c.listenPort) == 0 {
		return types.NewValidationError("PORT", "required field is missing")
	}
	if port, err := strconv.Atoi(c.listenPort); err != nil || port < MinPortNumber || port > MaxPortNumber {
		return types.NewValidationError("PORT", fmt.Sprintf("must be a valid port number (%d-%d)", MinPortNumber, MaxPortNumber))
	}
	return nil
}

// validateRPCSettings validates the JSON-RPC endpoint configuration
func (c Config) validateRPCSettings() error {
	if c.rpcPath == "" || c.rpcPath[0] != '/' {
		return types.NewValidationError("RPC_PATH", "must start with '/'")
	}
	if c.bodyLimit < 1 {
		return types.NewValidationError("BODY_LIMIT", "must be positive")
	}
	return nil
}

// validateLogSettings validates log format and level configuration
func (c Config) validateLogSettings() error {
	switch c.logFormat {
	case "json", "plain":
		break
	default:
		return types.NewValidationError("LOG_FORMAT", fmt.Sprintf("invalid value '%s', must be 'json' or 'plain'", c.logFormat))
	}

	switch c.logLevel {
	case "debug", "info", "warn", "error":
		break
	default:
		return types.NewValidationError("LOG_LEVEL", fmt.Sprintf("invalid value '%s', must be one of: debug, info, warn, error", c.logLevel))
	}
	return nil
}

// validateStoreConfig validates the backend selection and its settings
func (c Config) validateStoreConfig() error {
	sc := c.storeConfig
	if sc == nil {
		return types.NewValidationError("STORE_BACKEND", "required field is missing")
	}

	switch sc.Backend {
	case StoreBackendPostgres:
		if c.dbConfig == nil {
			return types.NewValidationError("DB_DSN", "required field is missing")
		}
		if err := c.dbConfig.Validate(); err != nil {
			return types.NewConfigError("invalid database config", err)
		}
	case StoreBackendMemory:
		// an empty fixture is allowed; every lookup returns null
	default:
		return types.NewValidationError("STORE_BACKEND", fmt.Sprintf("invalid value '%s', must be '%s' or '%s'", sc.Backend, StoreBackendPostgres, StoreBackendMemory))
	}

	if sc.CacheSize < 0 {
		return types.NewValidationError("CACHE_SIZE", "must be non-negative")
	}
	if sc.CacheTTL < 0 {
		return types.NewValidationError("CACHE_TTL", "must be non-negative")
	}
	if sc.MaxConcurrentReads < 1 {
		return types.NewValidationError("MAX_CONCURRENT_READS", "must be at least 1")
	}
	if sc.MaxConcurrentReads > MaxAllowedConcurrentReads {
		return types.NewInvalidValueError("MAX_CONCURRENT_READS", fmt.Sprintf("%d", sc.MaxConcurrentReads), fmt.Sprintf("must not exceed %d", MaxAllowedConcurrentReads))
	}
	return nil
}

// validateMetricsConfig validates metrics configuration
func (c Config) validateMetricsConfig() error {
	if c.metricsConfig != nil && c.metricsConfig.Enabled {
		if err := c.validateMetricsPort(); err != nil {
			return err
		}
		if err := c.validateMetricsPath(); err != nil {
			return err
		}
	}
	return nil
}

// validateMetricsPort validates the metrics port configuration
func (c Config) validateMetricsPort() error {
	if port, err := strconv.Atoi(c.metricsConfig.Port); err != nil || port < MinPortNumber || port > MaxPortNumber {
		return types.NewValidationError("METRICS_PORT", fmt.Sprintf("must be a valid port number (%d-%d)", MinPortNumber, MaxPortNumber))
	}
	if c.metricsConfig.Port == c.listenPort {
		return types.NewValidationError("METRICS_PORT", fmt.Sprintf("metrics port %s conflicts with API port", c.metricsConfig.Port))
	}
	return nil
}

// validateMetricsPath validates the metrics path configuration
func (c Config) validateMetricsPath() error {
	if c.metricsConfig.Path == "" || c.metricsConfig.Path[0] != '/' {
		return types.NewValidationError("METRICS_PATH", "must start with '/'")
	}
	return nil
}
