package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cashrunway/backend/internal/cli"
	"github.com/cashrunway/backend/internal/forecast"
	"github.com/cashrunway/backend/internal/models"
	"github.com/cashrunway/backend/internal/store"
	"github.com/cashrunway/backend/internal/types"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagUser     string
	flagWeeks    int
	flagStrategy string
	flagAsOf     string
	flagJSON     bool
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Calculate the cash forecast for a user",
	Long: `Calculates the weekly cash forecast for a user and prints it.

Weeks and strategy default to the configured values.`,
	RunE: runForecast,
}

func init() {
	forecastCmd.Flags().StringVarP(&flagUser, "user", "u", "", "ID of the user")
	forecastCmd.Flags().IntVarP(&flagWeeks, "weeks", "w", 0, "Number of weeks to forecast (1-52)")
	forecastCmd.Flags().StringVarP(&flagStrategy, "strategy", "s", "", "Data model to use: legacy or canonical")
	forecastCmd.Flags().StringVar(&flagAsOf, "as-of", "", "First day of the forecast (YYYY-MM-DD), defaults to today")
	forecastCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the forecast as JSON")
	_ = forecastCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(cmd *cobra.Command, _ []string) error {
	cfg, err := setup(os.Stderr)
	if err != nil {
		return err
	}

	userID, err := uuid.Parse(flagUser)
	if err != nil {
		return fmt.Errorf("--user: %w", err)
	}

	opts, err := forecastOptions(cfg.Forecast.Options())
	if err != nil {
		return err
	}

	err = connect(cfg.Database)
	if err != nil {
		return err
	}

	result, err := forecast.NewEngine(store.New(models.DB)).Calculate(cmd.Context(), userID, opts)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprint(cmd.OutOrStdout(), cli.RenderForecast(result))
	return nil
}

// forecastOptions applies the command line flags to the defaults.
func forecastOptions(defaults forecast.Options) (forecast.Options, error) {
	opts := defaults

	if flagWeeks != 0 {
		opts.Weeks = flagWeeks
	}

	if flagStrategy != "" {
		strategy, err := forecast.ParseStrategy(flagStrategy)
		if err != nil {
			return opts, err
		}
		opts.Strategy = strategy
	}

	if flagAsOf != "" {
		asOf, err := types.ParseDate(flagAsOf)
		if err != nil {
			return opts, fmt.Errorf("--as-of: %w", err)
		}
		opts.Today = asOf
	}

	return opts, nil
}
