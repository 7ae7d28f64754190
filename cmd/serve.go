package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cashrunway/backend/internal/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := setup(os.Stdout)
	if err != nil {
		return err
	}

	url, err := cfg.Server.URL()
	if err != nil {
		return err
	}

	err = connect(cfg.Database)
	if err != nil {
		return err
	}

	r, teardown, err := router.Config(url, cfg)
	defer teardown()
	if err != nil {
		return err
	}
	router.AttachRoutes(r.Group(url.Path), cfg)

	srv := &http.Server{
		Addr:              cfg.Server.Listen,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("listen: %s", err)
		}
	}()
	log.Info().Str("address", cfg.Server.Listen).Msg("backend startup complete")

	// Wait for interrupt signal to gracefully shut down the server
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info().Msg("Received signal, shutting down")

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(shutdown)
}
