package bundle

import (
	"fmt"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the client and write it to a directory",
	RunE:  runBuild,
}

var buildOut string

func init() {
	buildCmd.Flags().StringVar(&buildOut, "out", "", "Output directory (default from config or dist)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, logger, b, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	out := cfg.OutDir
	if buildOut != "" {
		out = buildOut
	}

	if err := b.WriteDir(out); err != nil {
		return fmt.Errorf("failed to write bundle: %w", err)
	}

	for _, f := range b.Files() {
		fmt.Printf("  %-20s %8d bytes  %s\n", f.Path, len(f.Data), f.ETag)
	}
	fmt.Printf("Bundle written to %s\n", out)
	return nil
}
