package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johann/pinboard/internal/icons"
	"github.com/johann/pinboard/internal/icons/solid"
)

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "List the icons available to the client",
	RunE:  runIcons,
}

func runIcons(cmd *cobra.Command, args []string) error {
	lib := icons.NewLibrary()
	lib.Add(solid.All...)

	for _, d := range lib.Definitions() {
		fmt.Println(icons.Describe(d))
	}
	return nil
}
