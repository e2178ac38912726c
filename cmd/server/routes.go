package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/johann/pinboard/internal/api"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the route table",
	RunE:  runRoutes,
}

var routesBasePath string

func init() {
	routesCmd.Flags().StringVar(&routesBasePath, "base-path", "", "Path prefix of the API (default from config or /api)")
}

func runRoutes(cmd *cobra.Command, args []string) error {
	base := routesBasePath
	if base == "" {
		cfg, err := loadServerConfig(cmd)
		if err != nil {
			return err
		}
		base = cfg.BasePath
	}

	routes, err := api.Mount(base)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tPATH")
	for _, r := range routes.Routes() {
		fmt.Fprintf(w, "%s\t%s\n", r.Method, r.Pattern)
	}
	return w.Flush()
}
