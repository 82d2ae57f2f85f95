// Package config reads the service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"procurement/internal/logger"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverNone     = "none"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

type Server struct {
	Address         string        `env:"SERVER_ADDRESS" envDefault:"0.0.0.0:8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type Storage struct {
	Driver          string `env:"STORAGE_DRIVER" envDefault:"sqlite"`
	KeyPrefix       string `env:"KEY_PREFIX" envDefault:"tenders_"`
	PostgresConn    string `env:"POSTGRES_CONN"`
	SQLitePath      string `env:"SQLITE_PATH" envDefault:"procurement.db"`
	MongoURI        string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB         string `env:"MONGO_DB" envDefault:"procurement"`
	MongoCollection string `env:"MONGO_COLLECTION" envDefault:"collections"`
}

type Log struct {
	Level      string `env:"LOG_LEVEL" envDefault:"info"`
	AsJSON     bool   `env:"LOG_JSON" envDefault:"false"`
	File       string `env:"LOG_FILE"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"10"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	MaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"28"`
}

type Config struct {
	Server       Server
	Storage      Storage
	Log          Log
	SeedOnStart  bool `env:"SEED_ON_START" envDefault:"false"`
	ExpiringDays int  `env:"EXPIRING_DAYS" envDefault:"30"`
}

// Load parses the environment. With APP_ENV=local the .env files in paths
// (default ".env") are read first; a missing file is not an error.
func Load(paths ...string) (Config, error) {
	const op = "config.Load"

	if os.Getenv("APP_ENV") == "local" {
		if err := godotenv.Load(paths...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", op, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverSQLite, DriverMongo, DriverNone:
	case DriverPostgres:
		if c.Storage.PostgresConn == "" {
			return errors.New("POSTGRES_CONN is required for the postgres driver")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Storage.Driver)
	}
	if c.ExpiringDays <= 0 {
		return fmt.Errorf("EXPIRING_DAYS must be positive, got %d", c.ExpiringDays)
	}
	return nil
}

// Logger converts the log settings for logger.New.
func (c Config) Logger() logger.Config {
	return logger.Config{
		Level:      c.Log.Level,
		AsJSON:     c.Log.AsJSON,
		File:       c.Log.File,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAgeDays: c.Log.MaxAgeDays,
	}
}
