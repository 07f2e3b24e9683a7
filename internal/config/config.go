package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Server       ServerConfig
	Provider     ProviderConfig
	Upstream     UpstreamConfig
	Cache        CacheConfig
	Metrics      MetricsConfig
	Log          LogConfig
	PollInterval Duration
}

// ServerConfig controls the HTTP surface.
type ServerConfig struct {
	Port        string
	Env         string
	CorsOrigins []string
	SessionTTL  Duration
	// AdminToken guards the admin routes; empty disables them.
	AdminToken string
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// IsDevelopment reports whether the service runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// Load reads configuration from environment variables (and an optional .env file) with sensible defaults.
// Invalid values fall back to defaults; only an unreadable .env file is an error.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) Config {
	return Config{
		Server: ServerConfig{
			Port:        stringOrDefault(v, envPort, defaultPort),
			Env:         stringOrDefault(v, envEnv, defaultEnv),
			CorsOrigins: listOrDefault(v, envCorsOrigins, defaultCorsOrigins),
			SessionTTL:  durationOrDefault(v, envSessionTTL, defaultSessionTTL),
			AdminToken:  stringOrDefault(v, envAdminToken, ""),
		},
		Provider: loadProvider(v),
		Upstream: loadUpstream(v),
		Cache:    loadCache(v),
		Metrics:  loadMetrics(v),
		Log: LogConfig{
			Level:  stringOrDefault(v, envLogLevel, defaultLogLevel),
			Format: stringOrDefault(v, envLogFormat, defaultLogFormat),
		},
		PollInterval: durationOrDefault(v, envPollInterval, defaultPollInterval),
	}
}
