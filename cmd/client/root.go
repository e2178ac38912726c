package main

import (
	"github.com/spf13/cobra"

	"github.com/johann/pinboard/cmd/client/bundle"
)

var rootCmd = &cobra.Command{
	Use:          "pinboard",
	Short:        "Pinboard client tool",
	Long:         "pinboard builds, previews and publishes the pinboard web client, and talks to a pinboard server.",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(iconsCmd)
	rootCmd.AddCommand(bundle.Cmd)
}
