package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/johann/pinboard/internal/client"
	"github.com/johann/pinboard/internal/config"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Fetch the API greeting from the configured server",
	RunE:  runPing,
}

func runPing(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadClient()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	c, err := client.New(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	start := time.Now()
	greeting, err := c.Greeting(ctx)
	if err != nil {
		return fmt.Errorf("GET %s: %w", c.URL("/"), err)
	}

	fmt.Printf("%s (%s in %s)\n", greeting, c.URL("/"), time.Since(start).Round(time.Millisecond))
	return nil
}
