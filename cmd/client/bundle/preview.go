package bundle

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Serve the rendered client locally",
	RunE:  runPreview,
}

var previewListen string

func init() {
	previewCmd.Flags().StringVar(&previewListen, "listen", "127.0.0.1:5173", "Listen address")
}

func runPreview(cmd *cobra.Command, args []string) error {
	_, logger, b, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              previewListen,
		Handler:           b.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	fmt.Printf("Previewing on http://%s/\n", previewListen)

	select {
	case err := <-errCh:
		return err
	case <-cmd.Context().Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Info("preview stopping", zap.String("addr", previewListen))
	return srv.Shutdown(ctx)
}
