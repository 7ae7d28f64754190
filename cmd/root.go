// Package cmd implements the backend commands.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cashrunway/backend/internal/config"
	"github.com/cashrunway/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:           "backend",
	Short:         "Cash forecast backend",
	Long:          "Calculates weekly cash forecasts from clients, expenses and obligations.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("backend")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to a TOML configuration file")
}

// setup loads the configuration and configures gin and the logger.
func setup(output io.Writer) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	if cfg.Server.GinMode == "" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(cfg.Server.GinMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	if (cfg.Log.Format == "" && gin.IsDebugging()) || cfg.Log.Format == "human" {
		output = zerolog.ConsoleWriter{Out: output}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	return cfg, nil
}

// connect connects to the configured database.
func connect(db config.DatabaseConfig) error {
	if db.Postgres() {
		log.Debug().Str("host", db.Host).Str("name", db.Name).Msg("Database")
		return models.ConnectPostgres(db.DSN())
	}

	// Create data directory
	err := os.MkdirAll(filepath.Dir(db.Path), os.ModePerm)
	if err != nil {
		return fmt.Errorf("could not create data directory: %w", err)
	}

	log.Debug().Str("path", db.Path).Msg("Database")
	return models.Connect(db.Path)
}
