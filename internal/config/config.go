package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the meridian service.
//
// Fields:
// - Env: The current environment (local, development, production).
// - Port: The port for the monitoring and API server.
// - ProviderType: The type of geocoding provider to use (google, nominatim).
// - APIKey: The API key for the geocoding provider (required for Google).
// - Workers: The number of concurrent workers measuring routes.
// - Interval: The duration between polling rounds.
// - Database: Configuration settings for the PostgreSQL database.
// - AddrPrefix: Prefix prepended to every address before geocoding.
type Config struct {
	Env          string         `mapstructure:"env"`
	Port         int            `mapstructure:"port"`
	ProviderType string         `mapstructure:"provider_type"`
	APIKey       string         `mapstructure:"provider_key"`
	Workers      int            `mapstructure:"workers"`
	Interval     time.Duration  `mapstructure:"interval"`
	Database     PostgresConfig `mapstructure:"postgres"`
	AddrPrefix   string         `mapstructure:"address_prefix"`
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `mapstructure:"host"`     // Host is the database server address.
	Port     string `mapstructure:"port"`     // Port is the database server port.
	User     string `mapstructure:"user"`     // User is the database user.
	Password string `mapstructure:"password"` // Password is the database user's password.
	Name     string `mapstructure:"db_name"`  // Name is the name of the database.
}

// configFileEnv names the optional YAML configuration file.
const configFileEnv = "MERIDIAN_CONFIG"

// envBindings maps configuration keys to the environment variables that override them.
var envBindings = map[string]string{
	"env":               "MERIDIAN_ENV",
	"port":              "MERIDIAN_HEALTH_PORT",
	"provider_type":     "MERIDIAN_PROVIDER_TYPE",
	"provider_key":      "MERIDIAN_PROVIDER_KEY",
	"workers":           "MERIDIAN_WORKERS",
	"interval":          "MERIDIAN_INTERVAL",
	"address_prefix":    "MERIDIAN_ADDRESS_PREFIX",
	"postgres.host":     "DB_HOST",
	"postgres.port":     "DB_PORT",
	"postgres.user":     "DB_USERNAME",
	"postgres.password": "DB_PASSWORD",
	"postgres.db_name":  "DB_NAME",
}

// MustLoad reads the configuration from defaults, an optional YAML file named by
// MERIDIAN_CONFIG, a .env file and the process environment, in increasing priority.
// It panics if any value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	vpr := viper.New()
	vpr.SetDefault("env", "production")
	vpr.SetDefault("port", "8080")
	vpr.SetDefault("provider_type", "nominatim")
	vpr.SetDefault("workers", "4")
	vpr.SetDefault("interval", "10m")
	vpr.SetDefault("postgres.port", "5432")

	for key, env := range envBindings {
		_ = vpr.BindEnv(key, env)
	}

	if path, ok := os.LookupEnv(configFileEnv); ok && path != "" {
		vpr.SetConfigFile(path)
		vpr.SetConfigType("yaml")
		if err := vpr.ReadInConfig(); err != nil {
			panic("failed to read configuration file")
		}
	}

	interval, err := time.ParseDuration(vpr.GetString("interval"))
	if err != nil {
		panic("failed to parse interval from configuration")
	}

	port, err := strconv.Atoi(vpr.GetString("port"))
	if err != nil {
		panic("failed to parse port for monitoring server from configuration")
	}

	workers, err := strconv.Atoi(vpr.GetString("workers"))
	if err != nil || workers < 1 {
		panic("failed to parse workers from configuration, must be a positive integer")
	}

	return &Config{
		Env:          vpr.GetString("env"),
		Port:         port,
		ProviderType: vpr.GetString("provider_type"),
		APIKey:       vpr.GetString("provider_key"),
		Workers:      workers,
		Interval:     interval,
		AddrPrefix:   vpr.GetString("address_prefix"),
		Database: PostgresConfig{
			Host:     vpr.GetString("postgres.host"),
			Port:     vpr.GetString("postgres.port"),
			User:     vpr.GetString("postgres.user"),
			Password: vpr.GetString("postgres.password"),
			Name:     vpr.GetString("postgres.db_name"),
		},
	}
}
