package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/scenectl/scenectl/pkg/mockeditor"
)

const shutdownTimeout = 5 * time.Second

var mockEditorAddr string

var mockEditorCmd = &cobra.Command{
	Use:   "mock-editor",
	Short: "Serve an in-memory stand-in for the editor control API",
	Long: `Serve an in-memory stand-in for the editor control API.

The stand-in keeps a scene in memory and answers every control route, so
scripts and the build command can be tried without a running editor.
It stops on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ln, err := net.Listen("tcp", mockEditorAddr)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", mockEditorAddr, err)
		}

		srv := &http.Server{
			Handler:           mockeditor.New(mockeditor.WithLogger(logger)),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Serve(ln)
		}()
		logger.Info("stand-in editor listening", "url", "http://"+ln.Addr().String())

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		logger.Info("shutting down stand-in editor")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(mockEditorCmd)
	mockEditorCmd.Flags().StringVar(&mockEditorAddr, "addr", ":7777", "Address to listen on")
}
