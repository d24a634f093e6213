// Package main is the entrypoint for the API server.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hpnchanel/scaffold/internal/config"
	"github.com/hpnchanel/scaffold/internal/handler"
	"github.com/hpnchanel/scaffold/internal/metrics"
	"github.com/hpnchanel/scaffold/internal/middleware"
	"github.com/hpnchanel/scaffold/internal/server"
)

func main() {
	startedAt := time.Now()

	if err := newRootCmd(startedAt).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the CLI. Running it without a subcommand serves HTTP.
func newRootCmd(startedAt time.Time) *cobra.Command {
	var port int

	root := &cobra.Command{
		Use:           "api",
		Short:         "Serve the HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				slog.Error("failed to load config", "error", err)
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			return serve(cmd.Context(), cfg, startedAt, os.Stdout)
		},
	}
	root.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides PORT)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the API version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), handler.APIVersion)
		},
	})

	return root
}

// serve wires the application together and blocks until shutdown.
func serve(ctx context.Context, cfg *config.Config, startedAt time.Time, logOutput io.Writer) error {
	logger := initLogger(cfg, logOutput)

	recorder := metrics.NewInMemory()

	h := handler.New(handler.Options{
		Logger:        logger,
		Metrics:       recorder,
		IsDevelopment: cfg.IsDevelopment(),
		StartedAt:     startedAt,
	})

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()

	r := handler.NewRouter(h, handler.RouterConfig{
		CORS:               corsCfg,
		MaxRequestBodySize: cfg.MaxRequestBodySize,
	})

	srv := server.New(r, server.Config{
		Port:            cfg.Port,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Environment:     cfg.EnvironmentName(),
	}, logger)

	srv.OnShutdown("metrics", logOutcomes(logger, recorder))

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		return err
	}
	return nil
}

// logOutcomes reports the request outcome totals once the listener has
// stopped accepting requests.
func logOutcomes(logger *slog.Logger, totals metrics.Snapshotter) server.ShutdownFunc {
	return func(ctx context.Context) error {
		logger.InfoContext(ctx, "request outcomes", "totals", totals.Snapshot())
		return nil
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
