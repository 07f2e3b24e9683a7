package server

import (
	"log/slog"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/config"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers/analytics"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers/fixture"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers/snapshot"
)

const (
	sourceFixture   = "fixture"
	sourceAnalytics = "analytics"
	sourceSnapshot  = "snapshot"
)

func selectSource(cfg config.Config, logger *slog.Logger) providers.DataSource {
	switch cfg.Provider.Name {
	case sourceFixture, "":
		return fixture.New()
	case sourceAnalytics:
		return analytics.NewClient(analytics.Config{
			BaseURL: cfg.Upstream.BaseURL,
			APIKey:  cfg.Upstream.APIKey,
			Timeout: cfg.Upstream.Timeout,
		})
	case sourceSnapshot:
		return snapshot.NewFSStore(cfg.Provider.SnapshotDir)
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider.Name))
		}
		return fixture.New()
	}
}

// isRemote reports whether the source calls out over the network and needs quota protection.
func isRemote(source providers.DataSource) bool {
	_, ok := source.(*analytics.Client)
	return ok
}
