package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrEmptyPath = errors.New("config path is empty")

type Config struct {
	Env      string         `yaml:"env"      env-default:"local"` // Env is the current environment: local, development, production.
	HTTP     HTTPConfig     `yaml:"http"`                         // HTTP holds the listen addresses
	API      APIConfig      `yaml:"api"`                          // API holds the employee list API client configuration
	Postgres PostgresConfig `yaml:"postgres" env-required:"true"` // Postgres holds the database configuration
	Session  SessionConfig  `yaml:"session"`                      // Session holds the directory session lifecycle
}

// HTTPConfig struct holds the listen addresses of the web and monitoring servers.
type HTTPConfig struct {
	Address        string `yaml:"address"         env-default:":8000"` // Address is the web UI and API listen address.
	MonitoringPort int    `yaml:"monitoring_port" env-default:"8080"`  // MonitoringPort serves /metrics and /healthz.
}

// APIConfig struct holds the configuration of the employee list API client.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`                  // BaseURL is the API root in format `http://localhost:8000`
	Timeout time.Duration `yaml:"timeout"  env-default:"10s"` // Timeout bounds a single list request.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`                        // Host is the database server address.
	Port     string `yaml:"port"     env-default:"5432"` // Port is the database server port.
	User     string `yaml:"user"`                        // User is the database user.
	Password string `yaml:"password"`                    // Password is the database user's password.
	Dbname   string `yaml:"db_name"`                     // Dbname is the name of the database.
}

// SessionConfig struct holds how long idle directory sessions live.
type SessionConfig struct {
	TTL             time.Duration `yaml:"ttl"              env-default:"30m"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env-default:"5m"`
}

const (
	defaultAddress         = ":8000"
	defaultMonitoringPort  = 8080
	defaultAPITimeout      = 10 * time.Second
	defaultSessionTTL      = 30 * time.Minute
	defaultCleanupInterval = 5 * time.Minute
)

// MustLoad loads the configuration from the YAML file named by CONFIG_PATH and panics on failure.
func MustLoad() *Config {
	// .env is optional, variables already set in the environment win.
	_ = godotenv.Load()

	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic("config error: " + err.Error())
	}

	return cfg
}

// Load reads the YAML file at configPath, applies defaults and ATHENA_* environment overrides.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, ErrEmptyPath
	}

	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	vpr := viper.New()
	vpr.SetConfigFile(configPath)
	vpr.SetEnvPrefix("athena")
	vpr.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vpr.AutomaticEnv()

	vpr.SetDefault("env", "local")
	vpr.SetDefault("http.address", defaultAddress)
	vpr.SetDefault("http.monitoring_port", defaultMonitoringPort)
	vpr.SetDefault("api.timeout", defaultAPITimeout)
	vpr.SetDefault("postgres.port", "5432")
	vpr.SetDefault("session.ttl", defaultSessionTTL)
	vpr.SetDefault("session.cleanup_interval", defaultCleanupInterval)

	if err := vpr.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Env: vpr.GetString("env"),
		HTTP: HTTPConfig{
			Address:        vpr.GetString("http.address"),
			MonitoringPort: vpr.GetInt("http.monitoring_port"),
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(vpr.GetString("api.base_url"), "/"),
			Timeout: vpr.GetDuration("api.timeout"),
		},
		Postgres: PostgresConfig{
			Host:     vpr.GetString("postgres.host"),
			Port:     vpr.GetString("postgres.port"),
			User:     vpr.GetString("postgres.user"),
			Password: vpr.GetString("postgres.password"),
			Dbname:   vpr.GetString("postgres.db_name"),
		},
		Session: SessionConfig{
			TTL:             vpr.GetDuration("session.ttl"),
			CleanupInterval: vpr.GetDuration("session.cleanup_interval"),
		},
	}

	if cfg.API.BaseURL == "" {
		return nil, errors.New("api.base_url is required")
	}
	if cfg.API.Timeout <= 0 || cfg.Session.TTL <= 0 || cfg.Session.CleanupInterval <= 0 {
		return nil, errors.New("timeouts and session durations must be positive")
	}

	return cfg, nil
}
