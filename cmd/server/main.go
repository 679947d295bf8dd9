package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/feedroom-server/internal/app"
	"github.com/vovakirdan/feedroom-server/internal/config"
	"github.com/vovakirdan/feedroom-server/internal/log"
)

func main() {
	var (
		configPath string
		overrides  config.Config
		logLevel   string
	)

	root := &cobra.Command{
		Use:          "feedroom-server",
		Short:        "Single-room chat server over WebSocket",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bootLogger := log.New(logLevel)

			cfg, path, err := config.Load(bootLogger, configPath)
			if err != nil {
				return err
			}
			applyOverrides(&cfg, cmd, overrides, logLevel)

			logger := log.New(cfg.LogLevel)
			logger.Info().Str("config", path).Str("addr", cfg.Addr).Msg("starting feedroom server")

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := app.New(cfg, logger).Run(ctx); err != nil {
				return err
			}
			logger.Info().Msg("server stopped")
			return nil
		},
	}

	defaults := config.Default()
	root.Flags().StringVar(&configPath, "config", "", "path to config file")
	root.Flags().StringVar(&overrides.Addr, "addr", defaults.Addr, "HTTP listen address")
	root.Flags().DurationVar(&overrides.ReadHeaderTimeout, "read-header-timeout", defaults.ReadHeaderTimeout, "HTTP read header timeout")
	root.Flags().DurationVar(&overrides.ShutdownTimeout, "shutdown-timeout", defaults.ShutdownTimeout, "graceful shutdown timeout")
	root.Flags().DurationVar(&overrides.AliveInterval, "alive-interval", defaults.AliveInterval, "heartbeat interval (0 disables)")
	root.Flags().Int64Var(&overrides.MaxFrameSize, "max-frame-size", defaults.MaxFrameSize, "maximum accepted WebSocket frame size in bytes")
	root.Flags().StringVar(&logLevel, "log-level", defaults.LogLevel, "log level (debug, info, warn, error)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// applyOverrides lets explicitly set flags win over file and env values.
func applyOverrides(cfg *config.Config, cmd *cobra.Command, overrides config.Config, logLevel string) {
	if cmd.Flags().Changed("addr") {
		cfg.Addr = overrides.Addr
	}
	if cmd.Flags().Changed("read-header-timeout") {
		cfg.ReadHeaderTimeout = overrides.ReadHeaderTimeout
	}
	if cmd.Flags().Changed("shutdown-timeout") {
		cfg.ShutdownTimeout = overrides.ShutdownTimeout
	}
	if cmd.Flags().Changed("alive-interval") {
		cfg.AliveInterval = overrides.AliveInterval
	}
	if cmd.Flags().Changed("max-frame-size") {
		cfg.MaxFrameSize = overrides.MaxFrameSize
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
}
