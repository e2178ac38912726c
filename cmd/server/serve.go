package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johann/pinboard/internal/api"
	"github.com/johann/pinboard/internal/config"
	"github.com/johann/pinboard/internal/logging"
	"github.com/johann/pinboard/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  "Start the API server. Settings come from the config file, PINBOARD_* environment variables and flags, in increasing precedence.",
	RunE:  runServe,
}

var (
	serveListenAddr  string
	serveMetricsPort int
	serveBasePath    string
	serveLogLevel    string
)

func init() {
	serveCmd.Flags().StringVar(&serveListenAddr, "listen", "", "Listen address (default from config or :8080)")
	serveCmd.Flags().IntVar(&serveMetricsPort, "metrics-port", -1, "Port for Prometheus metrics, 0 disables (default from config)")
	serveCmd.Flags().StringVar(&serveBasePath, "base-path", "", "Path prefix of the API (default from config or /api)")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

func loadServerConfig(cmd *cobra.Command) (*config.ServerConfig, error) {
	cfg, err := config.LoadServer()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if serveListenAddr != "" {
		cfg.ListenAddr = serveListenAddr
	}
	if cmd.Flags().Changed("metrics-port") {
		cfg.MetricsPort = serveMetricsPort
	}
	if serveBasePath != "" {
		cfg.BasePath = serveBasePath
	}
	if serveLogLevel != "" {
		cfg.LogLevel = serveLogLevel
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadServerConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer logger.Sync()

	gin.SetMode(gin.ReleaseMode)

	routes, err := api.Mount(cfg.BasePath)
	if err != nil {
		return fmt.Errorf("failed to mount api: %w", err)
	}

	srv, err := server.New(cfg, routes, logger, nil)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	fmt.Printf("Starting server on %s\n", cfg.ListenAddr)
	fmt.Printf("API at %s/\n", cfg.BasePath)
	if cfg.MetricsPort > 0 {
		fmt.Printf("Prometheus metrics on :%d\n", cfg.MetricsPort)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return err
	}
	return nil
}

func configPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "server.json"), nil
}
