package config

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is loaded from FUNNEL_-prefixed environment variables, e.g.
// FUNNEL_SERVER_PORT, FUNNEL_DATABASE_URL. Only the database URL is
// mandatory; everything else has a default.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Funnel   FunnelConfig   `koanf:"funnel"`
}

type ServerConfig struct {
	Port            string `koanf:"port"`
	ShutdownTimeout int    `koanf:"shutdown_timeout"`
}

type DatabaseConfig struct {
	URL             string `koanf:"url" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns"`
	MaxIdleConns    int    `koanf:"max_idle_conns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime"`
	MigrationsPath  string `koanf:"migrations_path"`
}

type FunnelConfig struct {
	QueryTimeout int `koanf:"query_timeout"`
}

const envPrefix = "FUNNEL_"

// Load reads the environment into a validated Config.
func Load() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 5
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 20
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 10
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 30
	}
	if c.Database.MigrationsPath == "" {
		c.Database.MigrationsPath = "migrations"
	}
	if c.Funnel.QueryTimeout == 0 {
		c.Funnel.QueryTimeout = 10
	}
}

func (c *Config) QueryTimeout() time.Duration {
	return time.Duration(c.Funnel.QueryTimeout) * time.Second
}

func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeout) * time.Second
}
