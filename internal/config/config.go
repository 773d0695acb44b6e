package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/tair/product-catalog/pkg/database"
)

const (
	DataSourceSeed     = "seed"
	DataSourcePostgres = "postgres"
)

// Config holds the catalog service configuration
type Config struct {
	ServiceName string `mapstructure:"otel_service_name"`
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`

	HTTPPort string `mapstructure:"http_port"`
	GRPCPort string `mapstructure:"grpc_port"`

	DataSource string `mapstructure:"data_source"`
	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	DBSSLMode  string `mapstructure:"db_sslmode"`

	RedisAddr string        `mapstructure:"redis_addr"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`

	// RateLimitRequests of 0 disables rate limiting
	RateLimitRequests int           `mapstructure:"rate_limit_requests"`
	RateLimitWindow   time.Duration `mapstructure:"rate_limit_window"`

	KafkaBrokers []string `mapstructure:"kafka_brokers"`

	TracingEnabled bool   `mapstructure:"tracing_enabled"`
	JaegerEndpoint string `mapstructure:"jaeger_endpoint"`
}

// Load reads an optional .env file, then the process environment, on top of defaults
func Load() (*Config, error) {
	// A missing .env is normal outside local development
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.DataSource = strings.ToLower(strings.TrimSpace(cfg.DataSource))
	cfg.KafkaBrokers = cleanList(cfg.KafkaBrokers)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets default values using Viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("otel_service_name", "product-catalog")
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("http_port", "8081")
	v.SetDefault("grpc_port", "9091")
	v.SetDefault("data_source", DataSourceSeed)
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "postgres")
	v.SetDefault("db_name", "catalogdb")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("redis_addr", "")
	v.SetDefault("cache_ttl", 5*time.Minute)
	v.SetDefault("rate_limit_requests", 0)
	v.SetDefault("rate_limit_window", time.Minute)
	v.SetDefault("kafka_brokers", []string{})
	v.SetDefault("tracing_enabled", false)
	v.SetDefault("jaeger_endpoint", "http://localhost:14268/api/traces")
}

// Validate rejects values the service cannot start with
func (c *Config) Validate() error {
	switch c.DataSource {
	case DataSourceSeed, DataSourcePostgres:
	default:
		return fmt.Errorf("unsupported DATA_SOURCE %q (want %q or %q)", c.DataSource, DataSourceSeed, DataSourcePostgres)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive, got %s", c.CacheTTL)
	}
	if c.RateLimitRequests < 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must not be negative, got %d", c.RateLimitRequests)
	}
	if c.RateLimitRequests > 0 && c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.RateLimitWindow)
	}
	return nil
}

// IsDevelopment reports whether console logging should be used
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Database returns the connection settings for the postgres source
func (c *Config) Database() database.Config {
	return database.Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSSLMode,
	}
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
