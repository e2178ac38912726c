package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/johann/pinboard/internal/client"
	"github.com/johann/pinboard/internal/config"
)

var loginCmd = &cobra.Command{
	Use:   "login [server-url]",
	Short: "Point the client at a pinboard server",
	Long:  "Save the server URL after checking that it answers the API greeting.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

var (
	loginAPIBase string
	loginForce   bool
)

func init() {
	loginCmd.Flags().StringVar(&loginAPIBase, "api-base", "", "Path prefix of the API (default from config or /api)")
	loginCmd.Flags().BoolVar(&loginForce, "force", false, "Save even if the server does not answer")
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadClient()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ServerURL = args[0]
	if loginAPIBase != "" {
		cfg.APIBase = loginAPIBase
	}

	c, err := client.New(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	if _, err := c.Greeting(ctx); err != nil {
		if !loginForce {
			return fmt.Errorf("server check failed (use --force to save anyway): %w", err)
		}
		fmt.Printf("Warning: server check failed: %v\n", err)
	}

	if err := config.SaveClient(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("Using server %s\n", c.URL("/"))
	return nil
}
