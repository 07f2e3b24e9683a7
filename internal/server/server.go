package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	appconsistency "github.com/preston-bernstein/fantasy-hoops-service/internal/app/consistency"
	apprankings "github.com/preston-bernstein/fantasy-hoops-service/internal/app/rankings"
	appschedule "github.com/preston-bernstein/fantasy-hoops-service/internal/app/schedule"
	appstandings "github.com/preston-bernstein/fantasy-hoops-service/internal/app/standings"
	appstrategy "github.com/preston-bernstein/fantasy-hoops-service/internal/app/strategy"
	appteams "github.com/preston-bernstein/fantasy-hoops-service/internal/app/teams"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/config"
	httpserver "github.com/preston-bernstein/fantasy-hoops-service/internal/http"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/http/handlers"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/logging"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/metrics"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/poller"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers/snapshot"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	sessions      *store.SessionStore
	teamsService  *appteams.Service
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
	closers       []io.Closer
}

// New constructs a server with the configured source, cache, and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithSource(cfg config.Config, logger *slog.Logger, source providers.DataSource) *Server {
	return newServerWithMetrics(cfg, logger, source, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, source providers.DataSource, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newSourceFactory(logger, recorder)
	var built builtSource
	if source == nil {
		built = factory.build(cfg)
	} else {
		built = factory.wrap(cfg, source)
	}

	teamSvc := appteams.NewService(store.NewTeamStore())
	sessions := store.NewSessionStore(cfg.Server.SessionTTL, sessionFactory(built.source, logger, recorder))
	plr := poller.New(built.source, teamSvc, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, built, sessions, teamSvc, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		sessions:      sessions,
		teamsService:  teamSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
		closers:       built.closers,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller, closers ...io.Closer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
		closers:    closers,
	}
}

// sessionFactory gives every session its own table, detail cache, and schedule view over the shared source.
func sessionFactory(source providers.DataSource, logger *slog.Logger, recorder *metrics.Recorder) store.SessionFactory {
	return func() (*apprankings.Table, *appschedule.View) {
		details := appconsistency.NewCache(source, logger, recorder)
		return apprankings.NewTable(source, details, logger), appschedule.NewView(source, logger, recorder)
	}
}

func buildHTTPServer(cfg config.Config, built builtSource, sessions *store.SessionStore, teamSvc *appteams.Service, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	handler := handlers.NewHandler(sessions, handlers.Services{
		Teams:     teamSvc,
		Strategy:  appstrategy.NewService(built.source, logger),
		Standings: appstandings.NewService(built.source, logger),
	}, logger, statusFn)

	routerCfg := httpserver.RouterConfig{
		Logger:      logger,
		Metrics:     recorder,
		CorsOrigins: cfg.Server.CorsOrigins,
	}
	if cfg.Server.AdminToken != "" {
		exporter := snapshot.NewExporter(built.upstream, snapshot.NewWriter(cfg.Provider.SnapshotDir), logger)
		routerCfg.Admin = handlers.NewAdminHandler(exporter, cfg.Server.AdminToken, logger)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpserver.NewRouter(handler, routerCfg),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	// Close the cache connection last; in-flight requests may still read it.
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			logging.Warn(s.logger, "close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", "addr", srv.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
