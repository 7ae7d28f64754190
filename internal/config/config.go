// Package config loads the backend configuration.
//
// Settings are read from an optional TOML file. Environment variables
// override the values of the file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cashrunway/backend/internal/forecast"
)

var ErrAPIURLNotSet = errors.New("the API URL must be set with the API_URL environment variable or in the configuration file")

// Config holds all backend configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Forecast ForecastConfig `toml:"forecast"`
	Log      LogConfig      `toml:"log"`
}

// ServerConfig holds the settings of the HTTP API.
type ServerConfig struct {
	APIURL           string   `toml:"api_url"`
	Listen           string   `toml:"listen"`
	GinMode          string   `toml:"gin_mode,omitempty"`
	CORSAllowOrigins []string `toml:"cors_allow_origins,omitempty"`
	EnablePprof      bool     `toml:"enable_pprof"`
}

// DatabaseConfig selects the database.
//
// If Host is set, PostgreSQL is used. Otherwise, the SQLite database at
// Path is used.
type DatabaseConfig struct {
	Path     string `toml:"path"`
	Host     string `toml:"host,omitempty"`
	Port     int    `toml:"port,omitempty"`
	User     string `toml:"user,omitempty"`
	Password string `toml:"password,omitempty"`
	Name     string `toml:"name,omitempty"`
	SSLMode  string `toml:"ssl_mode,omitempty"`
}

// ForecastConfig holds the defaults for forecast calculations.
type ForecastConfig struct {
	Weeks          int  `toml:"weeks"`
	UseObligations bool `toml:"use_obligation_for_forecast"`
}

// LogConfig holds the log settings.
type LogConfig struct {
	Format string `toml:"format,omitempty"` // "human" or "json", depends on the gin mode if empty
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Listen: ":8080",
		},
		Database: DatabaseConfig{
			Path:    "data/forecast.db",
			Port:    5432,
			SSLMode: "disable",
		},
		Forecast: ForecastConfig{
			Weeks: forecast.DefaultWeeks,
		},
	}
}

// Load reads the configuration file at path and applies the environment.
//
// An empty path only reads the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}

		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// applyEnv overrides the configuration with all environment variables that are set.
func (cfg *Config) applyEnv() error {
	lookupString("API_URL", &cfg.Server.APIURL)
	lookupString("LISTEN_ADDRESS", &cfg.Server.Listen)
	lookupString("GIN_MODE", &cfg.Server.GinMode)
	lookupString("LOG_FORMAT", &cfg.Log.Format)
	lookupString("DB_PATH", &cfg.Database.Path)
	lookupString("DB_HOST", &cfg.Database.Host)
	lookupString("DB_USER", &cfg.Database.User)
	lookupString("DB_PASSWORD", &cfg.Database.Password)
	lookupString("DB_NAME", &cfg.Database.Name)
	lookupString("DB_SSL_MODE", &cfg.Database.SSLMode)

	if origins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS"); ok {
		cfg.Server.CORSAllowOrigins = strings.Fields(origins)
	}

	if err := lookupBool("ENABLE_PPROF", &cfg.Server.EnablePprof); err != nil {
		return err
	}

	if err := lookupBool("USE_OBLIGATION_FOR_FORECAST", &cfg.Forecast.UseObligations); err != nil {
		return err
	}

	if err := lookupInt("DB_PORT", &cfg.Database.Port); err != nil {
		return err
	}

	return lookupInt("FORECAST_WEEKS", &cfg.Forecast.Weeks)
}

func lookupString(key string, target *string) {
	if value, ok := os.LookupEnv(key); ok {
		*target = value
	}
}

func lookupBool(key string, target *bool) error {
	value, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	*target = parsed
	return nil
}

func lookupInt(key string, target *int) error {
	value, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s must be an integer: %w", key, err)
	}
	*target = parsed
	return nil
}

// URL parses the API URL.
func (s ServerConfig) URL() (*url.URL, error) {
	if s.APIURL == "" {
		return nil, ErrAPIURLNotSet
	}

	u, err := url.Parse(s.APIURL)
	if err != nil {
		return nil, fmt.Errorf("the API URL could not be parsed: %w", err)
	}
	return u, nil
}

// Postgres reports if PostgreSQL is configured.
func (d DatabaseConfig) Postgres() bool {
	return d.Host != ""
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// Options returns the default options for forecast calculations.
func (f ForecastConfig) Options() forecast.Options {
	return forecast.Options{
		Weeks:    f.Weeks,
		Strategy: forecast.StrategyFor(f.UseObligations),
	}
}
