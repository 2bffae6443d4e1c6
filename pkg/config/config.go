package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/cerberus"
	ConfigFileName    = "cerberus.yml"
)

// Config holds all Cerberus server configuration settings
type Config struct {
	// DatabaseURL is a full connection URL. When set it overrides the
	// discrete DB* fields.
	DatabaseURL string `yaml:"database_url" json:"database_url"`

	// DBHost is the database host
	DBHost string `yaml:"db_host" json:"db_host"`

	// DBUser is the database user
	DBUser string `yaml:"db_user" json:"db_user"`

	// DBPassword is the database password. There is no default; it must be
	// supplied via the environment or the config file.
	DBPassword string `yaml:"db_password" json:"db_password"`

	// DBName is the database name
	DBName string `yaml:"db_name" json:"db_name"`

	// DBSSLMode is the Postgres sslmode parameter
	DBSSLMode string `yaml:"db_sslmode" json:"db_sslmode"`

	// PoolSize bounds the number of simultaneous database connections
	PoolSize int `yaml:"pool_size" json:"pool_size"`

	// ConnectRetries is the number of connection attempts at startup
	ConnectRetries int `yaml:"connect_retries" json:"connect_retries"`

	// ConnectRetryDelaySeconds is the wait between startup attempts
	ConnectRetryDelaySeconds int `yaml:"connect_retry_delay" json:"connect_retry_delay"`

	// BindAddress is the server bind address
	BindAddress string `yaml:"bind_address" json:"bind_address"`

	// Port is the server listen port
	Port string `yaml:"port" json:"port"`

	// LogLevel controls SQL logging verbosity ("debug" enables statement logs)
	LogLevel string `yaml:"log_level" json:"log_level"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		DBHost:                   "localhost",
		DBUser:                   "cerberus",
		DBName:                   "auth",
		DBSSLMode:                "disable",
		PoolSize:                 5,
		ConnectRetries:           10,
		ConnectRetryDelaySeconds: 5,
		BindAddress:              "0.0.0.0",
		Port:                     "8000",
		sources:                  make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("CERBERUS_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"database_url", "db_host", "db_user", "db_password", "db_name",
		"db_sslmode", "pool_size", "connect_retries", "connect_retry_delay",
		"bind_address", "port", "log_level",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if file.DatabaseURL != "" {
		c.DatabaseURL = file.DatabaseURL
		c.sources["database_url"] = "file"
	}
	if file.DBHost != "" {
		c.DBHost = file.DBHost
		c.sources["db_host"] = "file"
	}
	if file.DBUser != "" {
		c.DBUser = file.DBUser
		c.sources["db_user"] = "file"
	}
	if file.DBPassword != "" {
		c.DBPassword = file.DBPassword
		c.sources["db_password"] = "file"
	}
	if file.DBName != "" {
		c.DBName = file.DBName
		c.sources["db_name"] = "file"
	}
	if file.DBSSLMode != "" {
		c.DBSSLMode = file.DBSSLMode
		c.sources["db_sslmode"] = "file"
	}
	if file.PoolSize != 0 {
		c.PoolSize = file.PoolSize
		c.sources["pool_size"] = "file"
	}
	if file.ConnectRetries != 0 {
		c.ConnectRetries = file.ConnectRetries
		c.sources["connect_retries"] = "file"
	}
	if file.ConnectRetryDelaySeconds != 0 {
		c.ConnectRetryDelaySeconds = file.ConnectRetryDelaySeconds
		c.sources["connect_retry_delay"] = "file"
	}
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
		c.sources["bind_address"] = "file"
	}
	if file.Port != "" {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
		c.sources["log_level"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("DATABASE_URL"); val != "" {
		c.DatabaseURL = val
		c.sources["database_url"] = "environment"
	}
	if val := os.Getenv("CERBERUS_DB_HOST"); val != "" {
		c.DBHost = val
		c.sources["db_host"] = "environment"
	}
	if val := os.Getenv("CERBERUS_DB_USER"); val != "" {
		c.DBUser = val
		c.sources["db_user"] = "environment"
	}
	if val := os.Getenv("CERBERUS_DB_PASSWORD"); val != "" {
		c.DBPassword = val
		c.sources["db_password"] = "environment"
	}
	if val := os.Getenv("CERBERUS_DB_NAME"); val != "" {
		c.DBName = val
		c.sources["db_name"] = "environment"
	}
	if val := os.Getenv("CERBERUS_DB_SSLMODE"); val != "" {
		c.DBSSLMode = val
		c.sources["db_sslmode"] = "environment"
	}
	if val := os.Getenv("CERBERUS_DB_POOL_SIZE"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.PoolSize = i
			c.sources["pool_size"] = "environment"
		}
	}
	if val := os.Getenv("CERBERUS_DB_CONNECT_RETRIES"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.ConnectRetries = i
			c.sources["connect_retries"] = "environment"
		}
	}
	if val := os.Getenv("CERBERUS_DB_CONNECT_DELAY"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.ConnectRetryDelaySeconds = i
			c.sources["connect_retry_delay"] = "environment"
		}
	}
	if val := os.Getenv("BIND_ADDRESS"); val != "" {
		c.BindAddress = val
		c.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("PORT"); val != "" {
		c.Port = val
		c.sources["port"] = "environment"
	}
	if val := os.Getenv("CERBERUS_LOG_LEVEL"); val != "" {
		c.LogLevel = val
		c.sources["log_level"] = "environment"
	}
}

// DSN returns the Postgres connection string. DatabaseURL wins when set;
// otherwise the string is assembled from the discrete fields.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	parts := []string{
		"host=" + c.DBHost,
		"user=" + c.DBUser,
		"dbname=" + c.DBName,
		"sslmode=" + c.DBSSLMode,
	}
	if c.DBPassword != "" {
		parts = append(parts, "password="+c.DBPassword)
	}
	return strings.Join(parts, " ")
}

// ConnectRetryDelay returns the startup retry delay as a duration
func (c *Config) ConnectRetryDelay() time.Duration {
	return time.Duration(c.ConnectRetryDelaySeconds) * time.Second
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.DatabaseURL != "" {
		if _, err := url.Parse(c.DatabaseURL); err != nil {
			return fmt.Errorf("invalid database_url: %w", err)
		}
	}
	if c.PoolSize < 1 {
		return fmt.Errorf("pool_size must be at least 1, got %d", c.PoolSize)
	}
	if c.ConnectRetries < 1 {
		return fmt.Errorf("connect_retries must be at least 1, got %d", c.ConnectRetries)
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	return nil
}
