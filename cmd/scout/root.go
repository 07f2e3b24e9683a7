package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/config"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/logging"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/server"
)

type sourceBuilder func(cfg config.Config, logger *slog.Logger) (providers.DataSource, func() error)

func defaultSourceBuilder(cfg config.Config, logger *slog.Logger) (providers.DataSource, func() error) {
	return server.NewSource(cfg, logger, nil)
}

// cli carries state shared by every subcommand once the root pre-run has loaded config.
type cli struct {
	build    sourceBuilder
	provider string
	logLevel string

	cfg    config.Config
	logger *slog.Logger
	source providers.DataSource
	close  func() error
}

func newRootCmd(build sourceBuilder) *cobra.Command {
	c := &cli{build: build}

	root := &cobra.Command{
		Use:          "scout",
		Short:        "Fantasy hoops data CLI",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.teardown()
		},
	}
	root.PersistentFlags().StringVar(&c.provider, "provider", "", "data source: fixture, analytics, or snapshot (default from PROVIDER)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level (default from LOG_LEVEL)")

	root.AddCommand(
		newRankingsCmd(c),
		newScheduleCmd(c),
		newStrategyCmd(c),
		newStandingsCmd(c),
		newExportCmd(c),
	)
	return root
}

func (c *cli) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.provider != "" {
		cfg.Provider.Name = strings.ToLower(c.provider)
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	c.cfg = cfg
	c.logger = logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "scout",
		Output:  os.Stderr,
	})
	c.source, c.close = c.build(cfg, c.logger)
	if c.source == nil {
		return fmt.Errorf("no data source for provider %q", cfg.Provider.Name)
	}
	return nil
}

func (c *cli) teardown() error {
	if c.close == nil {
		return nil
	}
	return c.close()
}
