package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	StorePostgres = "postgres"
	StoreMongo    = "mongo"

	// Path to an optional TOML file. Environment variables win over it.
	EnvConfigFile = "DYNASTY_CONFIG"
)

type Config struct {
	Port               int
	StoreDriver        string
	PostgresConnString string
	MongoURI           string
	MongoDatabase      string
	RequestTimeout     time.Duration
	ShutdownTimeout    time.Duration
	// Name attached to every log line.
	LogApp string
}

// fileConfig is the layout of the TOML file. Durations are strings like "15s".
type fileConfig struct {
	Port     int    `toml:"port"`
	LogApp   string `toml:"log_app"`
	Store    string `toml:"store"`
	Postgres struct {
		ConnString string `toml:"conn_string"`
	} `toml:"postgres"`
	Mongo struct {
		URI      string `toml:"uri"`
		Database string `toml:"database"`
	} `toml:"mongo"`
	Timeouts struct {
		Request  string `toml:"request"`
		Shutdown string `toml:"shutdown"`
	} `toml:"timeouts"`
}

func defaults() Config {
	return Config{
		Port:            3000,
		StoreDriver:     StorePostgres,
		MongoDatabase:   "dynasty_tracker",
		RequestTimeout:  10 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		LogApp:          "dynasty_tracker",
	}
}

// Load reads .env (if there is one), then the TOML file named by
// DYNASTY_CONFIG, then the environment.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("error loading .env file: %w", err)
	}

	cfg := defaults()
	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("error reading config file %s: %w", path, err)
	}

	if meta.IsDefined("port") {
		cfg.Port = raw.Port
	}
	if meta.IsDefined("log_app") {
		cfg.LogApp = raw.LogApp
	}
	if meta.IsDefined("store") {
		cfg.StoreDriver = raw.Store
	}
	if meta.IsDefined("postgres", "conn_string") {
		cfg.PostgresConnString = raw.Postgres.ConnString
	}
	if meta.IsDefined("mongo", "uri") {
		cfg.MongoURI = raw.Mongo.URI
	}
	if meta.IsDefined("mongo", "database") {
		cfg.MongoDatabase = raw.Mongo.Database
	}
	if meta.IsDefined("timeouts", "request") {
		if cfg.RequestTimeout, err = time.ParseDuration(raw.Timeouts.Request); err != nil {
			return fmt.Errorf("invalid duration format for timeouts.request: %w", err)
		}
	}
	if meta.IsDefined("timeouts", "shutdown") {
		if cfg.ShutdownTimeout, err = time.ParseDuration(raw.Timeouts.Shutdown); err != nil {
			return fmt.Errorf("invalid duration format for timeouts.shutdown: %w", err)
		}
	}
	return nil
}

func applyEnv(cfg *Config) error {
	var err error
	if cfg.Port, err = getInt("PORT", cfg.Port); err != nil {
		return err
	}
	if cfg.RequestTimeout, err = getDuration("REQUEST_TIMEOUT", cfg.RequestTimeout); err != nil {
		return err
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout); err != nil {
		return err
	}
	cfg.StoreDriver = getString("STORE_DRIVER", cfg.StoreDriver)
	cfg.PostgresConnString = getString("POSTGRES_CONN_STR", cfg.PostgresConnString)
	cfg.MongoURI = getString("MONGO_URI", cfg.MongoURI)
	cfg.MongoDatabase = getString("MONGO_DATABASE", cfg.MongoDatabase)
	cfg.LogApp = getString("LOG_APP", cfg.LogApp)
	return nil
}

func (c Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	switch c.StoreDriver {
	case StorePostgres:
		if c.PostgresConnString == "" {
			return errors.New("POSTGRES_CONN_STR is required for the postgres store")
		}
	case StoreMongo:
		if c.MongoURI == "" {
			return errors.New("MONGO_URI is required for the mongo store")
		}
	default:
		return fmt.Errorf("unknown store driver: '%s'", c.StoreDriver)
	}
	if c.RequestTimeout <= 0 || c.ShutdownTimeout <= 0 {
		return errors.New("timeouts must be positive")
	}
	return nil
}

func getString(envKey, defaultVal string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return defaultVal
}

func getDuration(envKey string, defaultVal time.Duration) (time.Duration, error) {
	valStr := os.Getenv(envKey)
	if valStr == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format for %s: %w", envKey, err)
	}
	return d, nil
}

func getInt(envKey string, defaultVal int) (int, error) {
	valStr := os.Getenv(envKey)
	if valStr == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("invalid integer format for %s: %w", envKey, err)
	}
	return i, nil
}
