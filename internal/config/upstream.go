package config

import "github.com/spf13/viper"

// UpstreamConfig controls how we talk to the analytics backend.
type UpstreamConfig struct {
	BaseURL          string
	APIKey           string
	Timeout          Duration
	RateLimit        float64 // requests per second
	Burst            int
	BreakerThreshold int // consecutive failures before the breaker opens
	BreakerTimeout   Duration
}

func loadUpstream(v *viper.Viper) UpstreamConfig {
	return UpstreamConfig{
		BaseURL:          stringOrDefault(v, envUpstreamURL, defaultUpstreamURL),
		APIKey:           stringOrDefault(v, envUpstreamKey, ""),
		Timeout:          durationOrDefault(v, envUpstreamTO, defaultUpstreamTO),
		RateLimit:        floatOrDefault(v, envRateLimit, defaultRateLimit),
		Burst:            intOrDefault(v, envRateBurst, defaultRateBurst),
		BreakerThreshold: intOrDefault(v, envBreakerTrip, defaultBreakerTrip),
		BreakerTimeout:   durationOrDefault(v, envBreakerTimeout, defaultBreakerTimeout),
	}
}
