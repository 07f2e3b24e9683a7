package config

import "time"

const (
	envPort           = "PORT"
	envEnv            = "ENV"
	envCorsOrigins    = "CORS_ORIGINS"
	envSessionTTL     = "SESSION_TTL"
	envAdminToken     = "ADMIN_TOKEN"
	envPollInterval   = "POLL_INTERVAL"
	envProvider       = "PROVIDER"
	envSnapshotDir    = "SNAPSHOT_DIR"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envRedisURL       = "REDIS_URL"
	envCacheTTL       = "CACHE_TTL"
	envUpstreamURL    = "ANALYTICS_BASE_URL"
	envUpstreamKey    = "ANALYTICS_API_KEY"
	envUpstreamTO     = "ANALYTICS_TIMEOUT"
	envRateLimit      = "UPSTREAM_RATE_LIMIT"
	envRateBurst      = "UPSTREAM_BURST"
	envBreakerTrip    = "BREAKER_THRESHOLD"
	envBreakerTimeout = "BREAKER_TIMEOUT"

	defaultPort        = "4000"
	defaultEnv         = "development"
	defaultCorsOrigins = "http://localhost:3000,http://127.0.0.1:3000"
	defaultSessionTTL  = 30 * Duration(time.Minute)
	// Team lists change rarely; refresh often enough to pick up renames mid-week.
	defaultPollInterval = 10 * Duration(time.Minute)
	defaultProvider     = "fixture"
	defaultSnapshotDir  = "data/snapshots"
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
	defaultMetricsPort  = "9090"
	defaultServiceName  = "fantasy-hoops-service"
	defaultCacheTTL     = 10 * Duration(time.Minute)
	defaultUpstreamURL  = "http://localhost:8000"
	defaultUpstreamTO   = 10 * Duration(time.Second)
	// Upstream stats endpoints are slow and quota-bound; keep well under their limits.
	defaultRateLimit      = 5.0
	defaultRateBurst      = 5
	defaultBreakerTrip    = 5
	defaultBreakerTimeout = 30 * Duration(time.Second)
)
