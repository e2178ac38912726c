package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/johann/pinboard/internal/config"
	"github.com/johann/pinboard/internal/prompt"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize client configuration",
	Long:  "Interactive wizard to configure the server, bundle and publishing settings.",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	p := prompt.Stdio()

	fmt.Println("pinboard configuration wizard")
	fmt.Println("=============================")
	fmt.Println()

	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Printf("Ignoring existing config: %v\n\n", err)
		cfg = config.DefaultClientConfig()
	}

	p.Section("Server")
	cfg.ServerURL = p.String("Server URL", cfg.ServerURL, "http://localhost:8080")
	cfg.APIBase = p.String("API Base Path", cfg.APIBase, "/api")
	fmt.Println()

	p.Section("Bundle")
	cfg.OutDir = p.String("Output directory", cfg.OutDir, "dist")
	cfg.MountSelector = p.String("Mount selector", cfg.MountSelector, "#app")
	fmt.Println()

	if p.YesNo("Configure S3 publishing?", cfg.S3Bucket != "") {
		p.Section("S3 Storage Configuration")
		cfg.S3Endpoint = p.String("S3 Endpoint URL (empty for AWS)", cfg.S3Endpoint, "")
		cfg.S3Bucket = p.String("S3 Bucket Name", cfg.S3Bucket, "pinboard-web")
		cfg.S3AccessKey = p.String("S3 Access Key", cfg.S3AccessKey, "")
		cfg.S3SecretKey = p.Secret("S3 Secret Key", cfg.S3SecretKey)
		cfg.S3Region = p.String("S3 Region", cfg.S3Region, "us-east-1")
		cfg.S3Prefix = p.String("Key prefix", cfg.S3Prefix, "")
		fmt.Println()
	}

	if err := config.SaveClient(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	dir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("locate config dir: %w", err)
	}
	fmt.Println("Configuration saved!")
	fmt.Printf("Config file: %s\n", filepath.Join(dir, "client.json"))
	fmt.Println()
	fmt.Println("Build the client with:")
	fmt.Println("  pinboard bundle build")

	return nil
}
