package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "pinboard-server",
	Short:        "Pinboard API server",
	Long:         "pinboard-server serves the pinboard HTTP API.",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routesCmd)
}
