package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr    string `env:"ADDR" envDefault:":8080"`
	Env     string `env:"ENV" envDefault:"development"`
	Version string `env:"VERSION" envDefault:"1.0.0"`
	APIURL  string `env:"EXTERNAL_URL" envDefault:"localhost:8080"`

	DB          DBConfig          `envPrefix:"DB_"`
	Redis       RedisConfig       `envPrefix:"REDIS_"`
	Views       ViewsConfig       `envPrefix:"VIEW_"`
	Auth        AuthConfig        `envPrefix:"AUTH_"`
	RateLimiter RateLimiterConfig `envPrefix:"RATELIMITER_"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"https://*,http://*" envSeparator:","`
}

type DBConfig struct {
	Addr         string        `env:"ADDR,required,notEmpty"`
	MaxOpenConns int32         `env:"MAX_OPEN_CONNS" envDefault:"30"`
	MaxIdleTime  time.Duration `env:"MAX_IDLE_TIME" envDefault:"15m"`
	AutoMigrate  bool          `env:"AUTO_MIGRATE" envDefault:"true"`
}

// RedisConfig is optional; an empty Addr disables the aggregate cache.
type RedisConfig struct {
	Addr     string        `env:"ADDR"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	CacheTTL time.Duration `env:"AGGREGATE_CACHE_TTL" envDefault:"1m"`
}

type ViewsConfig struct {
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"5m"`
}

type AuthConfig struct {
	Token TokenConfig `envPrefix:"TOKEN_"`
	Basic BasicConfig `envPrefix:"BASIC_"`
}

type TokenConfig struct {
	Secret string `env:"SECRET"`
	Iss    string `env:"ISS" envDefault:"wot"`
}

type BasicConfig struct {
	User string `env:"USER"`
	Pass string `env:"PASS"`
}

type RateLimiterConfig struct {
	Enabled              bool          `env:"ENABLED" envDefault:"false"`
	RequestsPerTimeFrame int           `env:"REQUESTS_COUNT" envDefault:"200"`
	TimeFrame            time.Duration `env:"TIME_FRAME" envDefault:"5s"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DB.MaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be positive, got %d", c.DB.MaxOpenConns)
	}
	if c.Views.RefreshInterval <= 0 {
		return fmt.Errorf("VIEW_REFRESH_INTERVAL must be positive, got %s", c.Views.RefreshInterval)
	}
	if c.Redis.Addr != "" && c.Redis.CacheTTL <= 0 {
		return fmt.Errorf("REDIS_AGGREGATE_CACHE_TTL must be positive, got %s", c.Redis.CacheTTL)
	}
	if c.RateLimiter.Enabled && c.RateLimiter.RequestsPerTimeFrame < 1 {
		return fmt.Errorf("RATELIMITER_REQUESTS_COUNT must be positive, got %d", c.RateLimiter.RequestsPerTimeFrame)
	}
	if c.Env == "production" && c.Auth.Basic.Pass == "" {
		return fmt.Errorf("AUTH_BASIC_PASS is required in production")
	}
	return nil
}
