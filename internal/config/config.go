package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort        string
	LogLevel        logrus.Level
	OperatorWorkers int

	// ForecastLocation decides which calendar month "now" falls in.
	ForecastLocation *time.Location

	ReportCurrency string
	ReportLocale   string
}

// ProcessEnvironmentVariables loads an optional .env file and then reads the
// environment on top of the docker compose defaults.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		HTTPPort:         "9446",
		LogLevel:         logrus.InfoLevel,
		OperatorWorkers:  4,
		ForecastLocation: time.UTC,
		ReportCurrency:   "UZS",
		ReportLocale:     "ru",
	}

	overrideString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	overrideString(&env.PostgresPort, "POSTGRES_PORT")
	overrideString(&env.PostgresDB, "POSTGRES_DB")
	overrideString(&env.PostgresUsername, "POSTGRES_USERNAME")
	overrideString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	overrideString(&env.HTTPPort, "HTTP_PORT")
	overrideString(&env.ReportCurrency, "REPORT_CURRENCY")
	overrideString(&env.ReportLocale, "REPORT_LOCALE")

	if envLogLevel := os.Getenv("LOG_LEVEL"); len(envLogLevel) != 0 {
		level, err := logrus.ParseLevel(envLogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", envLogLevel, err)
		}
		env.LogLevel = level
	}

	if envWorkers := os.Getenv("OPERATOR_WORKERS"); len(envWorkers) != 0 {
		workers, err := strconv.Atoi(envWorkers)
		if err != nil || workers < 1 {
			return nil, fmt.Errorf("invalid OPERATOR_WORKERS %q: must be a positive integer", envWorkers)
		}
		env.OperatorWorkers = workers
	}

	if envTimezone := os.Getenv("FORECAST_TIMEZONE"); len(envTimezone) != 0 {
		loc, err := time.LoadLocation(envTimezone)
		if err != nil {
			return nil, fmt.Errorf("invalid FORECAST_TIMEZONE %q: %w", envTimezone, err)
		}
		env.ForecastLocation = loc
	}

	if port, err := strconv.Atoi(env.HTTPPort); err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid HTTP_PORT %q: must be between 1 and 65535", env.HTTPPort)
	}

	return &env, nil
}

// PostgresConnectionString builds the lib/pq DSN for this configuration.
func (c *Config) PostgresConnectionString() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func overrideString(target *string, key string) {
	if value := os.Getenv(key); len(value) != 0 {
		*target = value
	}
}
