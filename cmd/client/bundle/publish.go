package bundle

import (
	"fmt"

	"github.com/spf13/cobra"

	webbundle "github.com/johann/pinboard/internal/bundle"
	"github.com/johann/pinboard/internal/storage"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the rendered client to S3",
	RunE:  runPublish,
}

var publishPrefix string

func init() {
	publishCmd.Flags().StringVar(&publishPrefix, "prefix", "", "Key prefix (default from config)")
}

func runPublish(cmd *cobra.Command, args []string) error {
	cfg, logger, b, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	prefix := cfg.S3Prefix
	if publishPrefix != "" {
		prefix = publishPrefix
	}

	store, err := storage.NewS3Client(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create S3 client: %w (run 'pinboard init')", err)
	}

	fmt.Printf("Publishing %d files to s3://%s/%s\n", len(b.Files()), store.Bucket(), prefix)

	res, err := webbundle.Publish(cmd.Context(), store, b, prefix, logger)
	if err != nil {
		return fmt.Errorf("failed to publish: %w", err)
	}

	for _, key := range res.Keys {
		fmt.Printf("  %s\n", key)
	}
	fmt.Printf("Uploaded %d objects, %d already present\n", res.Uploaded, res.Skipped)
	return nil
}
