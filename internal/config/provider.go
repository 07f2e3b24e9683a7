package config

import (
	"strings"

	"github.com/spf13/viper"
)

// ProviderConfig selects the data source backing rankings, consistency, and schedules.
type ProviderConfig struct {
	Name        string // fixture, analytics, or snapshot
	SnapshotDir string
}

func loadProvider(v *viper.Viper) ProviderConfig {
	return ProviderConfig{
		Name:        strings.ToLower(stringOrDefault(v, envProvider, defaultProvider)),
		SnapshotDir: stringOrDefault(v, envSnapshotDir, defaultSnapshotDir),
	}
}
