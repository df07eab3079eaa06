package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Dataset sources.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

type Config struct {
	Environment string          `mapstructure:"environment"`
	LogLevel    string          `mapstructure:"log_level"`
	Server      ServerConfig    `mapstructure:"server"`
	Dataset     DatasetConfig   `mapstructure:"dataset"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Redis       RedisConfig     `mapstructure:"redis"`
	Telemetry   TelemetryConfig `mapstructure:"telemetry"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// MaxBodyBytes caps query request bodies.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes"`
}

// DatasetConfig says where the match/odds table is loaded from at startup.
type DatasetConfig struct {
	Name   string `mapstructure:"name"`
	Source string `mapstructure:"source"`
	Path   string `mapstructure:"path"`
	Table  string `mapstructure:"table"`
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"dbname"`
	SSLMode         string `mapstructure:"sslmode"`
	DatabaseURL     string `mapstructure:"database_url"`
	MaxConns        int    `mapstructure:"max_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TTL      string `mapstructure:"ttl"`
}

type TelemetryConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	Exporter     string  `mapstructure:"exporter"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	SampleRate   float64 `mapstructure:"sample_rate"`
}

// DSN returns DatabaseURL when set, otherwise a key/value connection string.
func (c DatabaseConfig) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
	if c.MaxConns > 0 {
		dsn += fmt.Sprintf(" pool_max_conns=%d", c.MaxConns)
	}
	if c.ConnMaxLifetime != "" {
		dsn += " pool_max_conn_lifetime=" + c.ConnMaxLifetime
	}
	return dsn
}

// Addr returns host:port.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CacheTTL returns the parsed TTL; Load has already validated it.
func (c RedisConfig) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 0
	}
	return d
}

// Load reads configs/config.yaml (or ./config.yaml) when present, then
// environment variables, with nested keys joined by "_" (DATASET_PATH).
// A .env file in the working directory is loaded first if it exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	return load(v)
}

// LoadFile reads the configuration from path instead of the search paths.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file not found, use defaults and environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	config.Environment = strings.ToLower(config.Environment)
	config.Dataset.Source = strings.ToLower(config.Dataset.Source)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the settings that would otherwise fail at startup.
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case SourceCSV:
		if c.Dataset.Path == "" {
			return errors.New("dataset.path is required for the csv source")
		}
	case SourcePostgres:
		if c.Dataset.Table == "" {
			return errors.New("dataset.table is required for the postgres source")
		}
	default:
		return fmt.Errorf("unknown dataset source %q, want %s or %s", c.Dataset.Source, SourceCSV, SourcePostgres)
	}

	if c.Redis.Enabled {
		if _, err := time.ParseDuration(c.Redis.TTL); err != nil {
			return fmt.Errorf("invalid redis ttl: %w", err)
		}
	}

	if c.Database.ConnMaxLifetime != "" {
		if _, err := time.ParseDuration(c.Database.ConnMaxLifetime); err != nil {
			return fmt.Errorf("invalid database conn_max_lifetime: %w", err)
		}
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.max_body_bytes", 1<<20)

	v.SetDefault("dataset.name", "matches")
	v.SetDefault("dataset.source", SourceCSV)
	v.SetDefault("dataset.path", "data/matches.csv")
	v.SetDefault("dataset.table", "matches")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "oddsframe")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.database_url", "")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.conn_max_lifetime", "300s")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "10m")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.exporter", "otlp")
	v.SetDefault("telemetry.otlp_endpoint", "http://localhost:4318")
	v.SetDefault("telemetry.sample_rate", 1.0)
}
