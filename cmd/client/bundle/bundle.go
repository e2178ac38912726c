// Package bundle holds the "pinboard bundle" commands.
package bundle

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johann/pinboard"
	"github.com/johann/pinboard/internal/bootstrap"
	webbundle "github.com/johann/pinboard/internal/bundle"
	"github.com/johann/pinboard/internal/config"
	"github.com/johann/pinboard/internal/icons"
	"github.com/johann/pinboard/internal/logging"
)

// Cmd is the "pinboard bundle" command.
var Cmd = &cobra.Command{
	Use:   "bundle",
	Short: "Client bundle operations",
	Long:  "Build, preview, and publish the web client.",
}

var srcDir string

func init() {
	Cmd.PersistentFlags().StringVar(&srcDir, "src", "", "Frontend source directory (default: the sources built into this binary)")

	Cmd.AddCommand(buildCmd)
	Cmd.AddCommand(previewCmd)
	Cmd.AddCommand(publishCmd)
}

// setup loads the client config and builds the bundle.
func setup() (*config.ClientConfig, *zap.Logger, *webbundle.Bundle, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, nil, err
	}

	var fsys fs.FS = pinboard.Files()
	if srcDir != "" {
		fsys = os.DirFS(srcDir)
	}

	b, err := webbundle.Build(fsys, bootstrap.Options{
		Selector: cfg.MountSelector,
		Library:  icons.NewLibrary(),
		Logger:   logger,
		OnError: func(component string, err error) {
			logger.Warn("component failed to render", zap.String("component", component), zap.Error(err))
		},
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build bundle: %w", err)
	}
	return cfg, logger, b, nil
}
