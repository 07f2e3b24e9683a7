package config

import "github.com/spf13/viper"

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics(v *viper.Viper) MetricsConfig {
	return MetricsConfig{
		Enabled:      boolOrDefault(v, envMetricsOn, true),
		Port:         stringOrDefault(v, envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: stringOrDefault(v, envOtelEndpoint, ""),
		ServiceName:  stringOrDefault(v, envOtelService, defaultServiceName),
		OtlpInsecure: boolOrDefault(v, envOtelInsecure, true),
	}
}
