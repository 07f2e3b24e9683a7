package server

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/config"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/logging"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/metrics"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers/cache"
)

const cacheKeyPrefix = "fantasy-hoops"

// dialCache remains a var for tests to override.
var dialCache = func(rawURL string) (cacheKV, error) {
	kv, err := cache.Dial(rawURL, cacheKeyPrefix)
	if err != nil {
		return nil, err
	}
	return kv, nil
}

type cacheKV interface {
	cache.KV
	Ping(ctx context.Context) error
	io.Closer
}

// sourceFactory assembles the data source with shared wrappers.
type sourceFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// builtSource holds the assembled source chain. Upstream skips the cache so exports read fresh data.
type builtSource struct {
	source   providers.DataSource
	upstream providers.DataSource
	closers  []io.Closer
}

func newSourceFactory(logger *slog.Logger, recorder *metrics.Recorder) sourceFactory {
	return sourceFactory{logger: logger, metrics: recorder}
}

func (f sourceFactory) build(cfg config.Config) builtSource {
	return f.wrap(cfg, selectSource(cfg, f.logger))
}

// wrap applies cache(instrumented(breaker(ratelimit(base)))); rate limiting and the breaker
// only guard remote sources.
func (f sourceFactory) wrap(cfg config.Config, base providers.DataSource) builtSource {
	name := sourceName(cfg.Provider.Name, base)
	src := base
	if isRemote(base) {
		src = providers.NewRateLimitedSource(src, name, cfg.Upstream.RateLimit, cfg.Upstream.Burst, f.logger)
		src = providers.NewBreakerSource(src, name, cfg.Upstream.BreakerThreshold, cfg.Upstream.BreakerTimeout, f.logger)
	}
	src = providers.NewInstrumentedSource(src, name, f.metrics, f.logger)

	built := builtSource{source: src, upstream: src}
	if !cfg.Cache.Enabled() {
		return built
	}

	kv, err := dialCache(cfg.Cache.RedisURL)
	if err != nil {
		logging.Warn(f.logger, "cache disabled", "error", err)
		return built
	}
	ctx, cancel := context.WithTimeout(context.Background(), cacheDialTimeout)
	defer cancel()
	if err := kv.Ping(ctx); err != nil {
		// Keep the cache: reads fall through to the source while redis is down.
		logging.Warn(f.logger, "cache unreachable at startup", "error", err)
	}
	built.source = cache.New(src, kv, cfg.Cache.TTL, f.logger)
	built.closers = append(built.closers, kv)
	return built
}

// NewSource assembles the configured source chain for tools that run without the HTTP server.
// The returned func closes the cache connection when one was opened.
func NewSource(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (providers.DataSource, func() error) {
	built := newSourceFactory(logger, recorder).build(cfg)
	return built.source, func() error {
		var errs []error
		for _, c := range built.closers {
			errs = append(errs, c.Close())
		}
		return errors.Join(errs...)
	}
}
