// Package config provides environment-backed application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Default limits applied when the environment does not override them.
const (
	DefaultMaxProjects        = 10
	DefaultMaxTasksPerProject = 20
	DefaultServerPort         = 8080
	DefaultSweepInterval      = 15 * time.Minute
)

// Environment variable names
const (
	EnvMaxProjects        = "MAX_PROJECTS"
	EnvMaxTasksPerProject = "MAX_TASKS_PER_PROJECT"
	EnvServerPort         = "SERVER_PORT"
	EnvSweepInterval      = "SWEEP_INTERVAL"

	EnvDBHost     = "DB_HOST"
	EnvDBPort     = "DB_PORT"
	EnvDBUser     = "DB_USER"
	EnvDBPassword = "DB_PASSWORD"
	EnvDBName     = "DB_NAME"
	EnvDBSSLMode  = "DB_SSL_MODE"
)

// DBConfig holds database connection parameters.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Config holds all runtime configuration. It is built once at startup and
// passed explicitly to the components that need it.
type Config struct {
	MaxProjects        int
	MaxTasksPerProject int
	ServerPort         int
	SweepInterval      time.Duration
	DB                 DBConfig
}

// Load reads configuration from the environment, falling back to defaults
// for anything unset or unparseable.
func Load() *Config {
	return &Config{
		MaxProjects:        GetEnvInt(EnvMaxProjects, DefaultMaxProjects),
		MaxTasksPerProject: GetEnvInt(EnvMaxTasksPerProject, DefaultMaxTasksPerProject),
		ServerPort:         GetEnvInt(EnvServerPort, DefaultServerPort),
		SweepInterval:      GetEnvDuration(EnvSweepInterval, DefaultSweepInterval),
		DB: DBConfig{
			Host:     GetEnv(EnvDBHost, "localhost"),
			Port:     GetEnvInt(EnvDBPort, 5432),
			User:     GetEnv(EnvDBUser, "postgres"),
			Password: GetEnv(EnvDBPassword, "postgres"),
			Name:     GetEnv(EnvDBName, "taskboard"),
			SSLMode:  GetEnv(EnvDBSSLMode, "disable"),
		},
	}
}

// Validate checks that the configured limits are usable.
func (c *Config) Validate() error {
	if c.MaxProjects < 1 {
		return fmt.Errorf("%s must be at least 1, got %d", EnvMaxProjects, c.MaxProjects)
	}
	if c.MaxTasksPerProject < 1 {
		return fmt.Errorf("%s must be at least 1, got %d", EnvMaxTasksPerProject, c.MaxTasksPerProject)
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("%s must be positive, got %s", EnvSweepInterval, c.SweepInterval)
	}
	return nil
}

// GetEnv retrieves the value of an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetEnvInt retrieves an integer environment variable with a fallback value
// if not set or not a valid integer.
func GetEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

// GetEnvDuration retrieves a duration environment variable with a fallback
// value if not set or not parseable by time.ParseDuration.
func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
