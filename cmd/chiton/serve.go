package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/riskpath/api"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(log *logrus.Logger) *cobra.Command {
	cfg := serveConfig{Addr: ":8080", MaxCells: api.DefaultMaxCells}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the path search over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg, log)
		},
	}
	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address")
	cmd.Flags().IntVar(&cfg.MaxCells, "max-cells", cfg.MaxCells, "Largest tiled grid accepted, in cells")

	return cmd
}

// runServe blocks until ctx is cancelled, then shuts the server down gracefully.
func runServe(ctx context.Context, cfg serveConfig, log *logrus.Logger) error {
	if !log.IsLevelEnabled(logrus.DebugLevel) {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.NewRouter(api.Config{MaxCells: cfg.MaxCells, Logger: log}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Addr).Info("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(sctx)
}
