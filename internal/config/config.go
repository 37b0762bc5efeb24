// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvMode         = "MAZE_MODE"
	EnvHTTPAddr     = "MAZE_HTTP_ADDR"
	EnvLogLevel     = "MAZE_LOG_LEVEL"
	EnvRows         = "MAZE_ROWS"
	EnvCols         = "MAZE_COLS"
	EnvSeed         = "MAZE_SEED"
	EnvDelay        = "MAZE_DELAY"
	EnvMaxDimension = "MAZE_MAX_DIMENSION"
)

// ErrInvalid wraps every parse or validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the application's configuration values.
type Config struct {
	// Mode selects the gin mode: dev, release or test.
	Mode     string `validate:"oneof=dev release test"`
	HTTPAddr string `validate:"required"`
	LogLevel string `validate:"oneof=trace debug info warn error"`

	// Rows and Cols are the default maze dimensions.
	Rows int `validate:"min=1,ltefield=MaxDimension"`
	Cols int `validate:"min=1,ltefield=MaxDimension"`
	// Seed fixes every maze to one seed; 0 draws a clock seed per maze.
	Seed int64
	// Delay paces animated generation between steps.
	Delay time.Duration `validate:"min=0"`
	// MaxDimension bounds rows and cols accepted over HTTP.
	MaxDimension int `validate:"min=1"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Mode:         "release",
		HTTPAddr:     ":8080",
		LogLevel:     "info",
		Rows:         20,
		Cols:         20,
		MaxDimension: 200,
	}
}

var validate = validator.New()

// Load reads envfile (when it exists) into the process environment, then
// builds a Config from MAZE_* variables over Default. An empty envfile
// means ".env". A missing file is not an error.
func Load(envfile string) (Config, error) {
	if envfile == "" {
		envfile = ".env"
	}
	if err := godotenv.Load(envfile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load %s: %w", envfile, err)
	}

	cfg := Default()
	var err error
	cfg.Mode = getEnvWithDefault(EnvMode, cfg.Mode)
	cfg.HTTPAddr = getEnvWithDefault(EnvHTTPAddr, cfg.HTTPAddr)
	cfg.LogLevel = getEnvWithDefault(EnvLogLevel, cfg.LogLevel)
	if cfg.Rows, err = getIntEnvOrDefault(EnvRows, cfg.Rows); err != nil {
		return Config{}, err
	}
	if cfg.Cols, err = getIntEnvOrDefault(EnvCols, cfg.Cols); err != nil {
		return Config{}, err
	}
	if cfg.MaxDimension, err = getIntEnvOrDefault(EnvMaxDimension, cfg.MaxDimension); err != nil {
		return Config{}, err
	}
	seed, err := getIntEnvOrDefault(EnvSeed, int(cfg.Seed))
	if err != nil {
		return Config{}, err
	}
	cfg.Seed = int64(seed)
	if cfg.Delay, err = getDurationEnvOrDefault(EnvDelay, cfg.Delay); err != nil {
		return Config{}, err
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvOrDefault(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %q", ErrInvalid, key, raw)
	}
	return value, nil
}

// getDurationEnvOrDefault accepts Go durations ("150ms") or bare milliseconds.
func getDurationEnvOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	if ms, err := strconv.Atoi(raw); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a duration: %q", ErrInvalid, key, raw)
	}
	return d, nil
}
