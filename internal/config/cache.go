package config

import "github.com/spf13/viper"

// CacheConfig controls the shared Redis read-through cache. An empty RedisURL disables it.
type CacheConfig struct {
	RedisURL string
	TTL      Duration
}

// Enabled reports whether a Redis URL was configured.
func (c CacheConfig) Enabled() bool {
	return c.RedisURL != ""
}

func loadCache(v *viper.Viper) CacheConfig {
	return CacheConfig{
		RedisURL: stringOrDefault(v, envRedisURL, ""),
		TTL:      durationOrDefault(v, envCacheTTL, defaultCacheTTL),
	}
}
