package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "autonex"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	CORS         CORSConfig
	FeatureFlags FeatureFlagsConfig
	Idempotency  IdempotencyConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"AUTONEX_APP_ENV" required:"true"`
	Port         string `envconfig:"AUTONEX_APP_PORT" default:"8787"`
	LogLevel     string `envconfig:"AUTONEX_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"AUTONEX_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"AUTONEX_DB_DSN"`
	Driver string `envconfig:"AUTONEX_DB_DRIVER" default:"postgres"`

	// SQLitePath is only consulted when Driver is sqlite.
	SQLitePath string `envconfig:"AUTONEX_DB_SQLITE_PATH" default:"autonex.db"`

	MaxOpenConns    int           `envconfig:"AUTONEX_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"AUTONEX_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"AUTONEX_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"AUTONEX_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (d DBConfig) validate() error {
	switch d.Driver {
	case DriverPostgres:
		if d.DSN == "" {
			return fmt.Errorf("database DSN is required for the postgres driver")
		}
	case DriverSQLite:
		if d.SQLitePath == "" {
			return fmt.Errorf("sqlite path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", d.Driver)
	}
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"AUTONEX_REDIS_URL"`
	Address      string        `envconfig:"AUTONEX_REDIS_ADDR"`
	Password     string        `envconfig:"AUTONEX_REDIS_PASSWORD"`
	DB           int           `envconfig:"AUTONEX_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"AUTONEX_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"AUTONEX_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"AUTONEX_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"AUTONEX_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"AUTONEX_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint has been configured at all. The
// API degrades gracefully (no idempotency replay) when redis is absent.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"AUTONEX_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"AUTONEX_AUTO_MIGRATE" default:"false"`
	SeedOnStart bool `envconfig:"AUTONEX_SEED_ON_START" default:"true"`
}

type IdempotencyConfig struct {
	TTL time.Duration `envconfig:"AUTONEX_IDEMPOTENCY_TTL" default:"24h"`
}
