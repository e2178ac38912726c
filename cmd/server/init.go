package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johann/pinboard/internal/config"
	"github.com/johann/pinboard/internal/prompt"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize server configuration",
	Long:  "Interactive wizard to configure the server settings.",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	p := prompt.Stdio()

	fmt.Println("pinboard-server configuration wizard")
	fmt.Println("====================================")
	fmt.Println()

	// Load existing config or create default
	cfg, err := config.LoadServer()
	if err != nil {
		fmt.Printf("Ignoring existing config: %v\n\n", err)
		cfg = config.DefaultServerConfig()
	}

	p.Section("Server Configuration")
	cfg.ListenAddr = p.String("HTTP Listen Address", cfg.ListenAddr, ":8080")
	cfg.BasePath = p.String("API Base Path", cfg.BasePath, "/api")
	cfg.TLS = p.YesNo("Is the API served over HTTPS by a proxy in front of it?", cfg.TLS)
	cfg.TrustProxy = p.YesNo("Trust X-Forwarded-For and similar proxy headers?", cfg.TrustProxy)
	cfg.ShutdownSeconds = p.Int("Shutdown grace period (seconds)", cfg.ShutdownSeconds)
	fmt.Println()

	p.Section("Observability")
	cfg.MetricsPort = p.Int("Prometheus metrics port (0 disables)", cfg.MetricsPort)
	cfg.LogLevel = p.String("Log level", cfg.LogLevel, "info")
	cfg.LogFormat = p.String("Log format (json, console)", cfg.LogFormat, "json")
	fmt.Println()

	if err := config.SaveServer(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println("Configuration saved!")
	path, err := configPath()
	if err != nil {
		return err
	}
	fmt.Printf("Config file: %s\n", path)
	fmt.Println()
	fmt.Println("Start the server with:")
	fmt.Println("  pinboard-server serve")

	return nil
}
