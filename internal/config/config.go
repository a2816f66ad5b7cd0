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

// EnvPrefix prefixes every environment override, e.g. VACATION_HUB_SERVER_PORT
const EnvPrefix = "VACATION_HUB"

const envFile = ".env"

// Config represents application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Auth     AuthConfig     `mapstructure:"auth" yaml:"auth"`
	Absence  AbsenceConfig  `mapstructure:"absence" yaml:"absence"`
	Storage  StorageConfig  `mapstructure:"storage" yaml:"storage"`
	Postgres PostgresConfig `mapstructure:"postgres" yaml:"postgres"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
	Report   ReportConfig   `mapstructure:"report" yaml:"report"`
}

// ServerConfig represents HTTP server options
type ServerConfig struct {
	Host            string `mapstructure:"host" yaml:"host"`
	Port            int    `mapstructure:"port" yaml:"port"`
	ShutdownTimeout string `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// AuthConfig represents the shared passwords
type AuthConfig struct {
	AdminPassword string `mapstructure:"admin_password" yaml:"admin_password"` // Required for deletions
	LoginPassword string `mapstructure:"login_password" yaml:"login_password"` // Optional gate for the whole API
}

// AbsenceConfig represents quota rules
type AbsenceConfig struct {
	AnnualQuota int `mapstructure:"annual_quota" yaml:"annual_quota"`
}

// StorageConfig selects the repository backend
type StorageConfig struct {
	Backend string `mapstructure:"backend" yaml:"backend"` // "json" or "postgres"
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`
}

// PostgresConfig describes database connection parameters
type PostgresConfig struct {
	Host           string `mapstructure:"host" yaml:"host"`
	Port           int    `mapstructure:"port" yaml:"port"`
	User           string `mapstructure:"user" yaml:"user"`
	Password       string `mapstructure:"password" yaml:"password"`
	DBName         string `mapstructure:"db_name" yaml:"db_name"`
	SSLMode        string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
	QueryTimeout   string `mapstructure:"query_timeout" yaml:"query_timeout"`
	MigrateTimeout string `mapstructure:"migrate_timeout" yaml:"migrate_timeout"`
	MaxConns       int32  `mapstructure:"max_conns" yaml:"max_conns"`
	MinConns       int32  `mapstructure:"min_conns" yaml:"min_conns"`
}

// LoggingConfig represents logger preferences
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"` // Rotated log file, stdout when empty
}

// ReportConfig represents the scheduled absence snapshot
type ReportConfig struct {
	Enabled   bool   `mapstructure:"enabled" yaml:"enabled"`
	Schedule  string `mapstructure:"schedule" yaml:"schedule"` // Cron expression
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
}

// Default returns the configuration used when no file overrides a key
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ShutdownTimeout: "5s",
		},
		Absence: AbsenceConfig{AnnualQuota: 30},
		Storage: StorageConfig{
			Backend: "json",
			DataDir: "data",
		},
		Postgres: PostgresConfig{
			Host:           "localhost",
			Port:           5432,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "vacation_hub",
			SSLMode:        "disable",
			QueryTimeout:   "2s",
			MigrateTimeout: "10s",
			MaxConns:       10,
			MinConns:       2,
		},
		Logging: LoggingConfig{Level: "info"},
		Report: ReportConfig{
			Enabled:  true,
			Schedule: "0 7 * * 1",
		},
	}
}

// Load loads configuration from file, .env and environment.
// A missing config file is not an error when no explicit path is given.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.vacation-hub")
		v.AddConfigPath("/etc/vacation-hub")
	}

	// Read environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)

	v.SetDefault("auth.admin_password", d.Auth.AdminPassword)
	v.SetDefault("auth.login_password", d.Auth.LoginPassword)

	v.SetDefault("absence.annual_quota", d.Absence.AnnualQuota)

	v.SetDefault("storage.backend", d.Storage.Backend)
	v.SetDefault("storage.data_dir", d.Storage.DataDir)

	v.SetDefault("postgres.host", d.Postgres.Host)
	v.SetDefault("postgres.port", d.Postgres.Port)
	v.SetDefault("postgres.user", d.Postgres.User)
	v.SetDefault("postgres.password", d.Postgres.Password)
	v.SetDefault("postgres.db_name", d.Postgres.DBName)
	v.SetDefault("postgres.ssl_mode", d.Postgres.SSLMode)
	v.SetDefault("postgres.query_timeout", d.Postgres.QueryTimeout)
	v.SetDefault("postgres.migrate_timeout", d.Postgres.MigrateTimeout)
	v.SetDefault("postgres.max_conns", d.Postgres.MaxConns)
	v.SetDefault("postgres.min_conns", d.Postgres.MinConns)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)

	v.SetDefault("report.enabled", d.Report.Enabled)
	v.SetDefault("report.schedule", d.Report.Schedule)
	v.SetDefault("report.output_dir", d.Report.OutputDir)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}

	if c.Absence.AnnualQuota < 0 {
		return fmt.Errorf("absence.annual_quota must not be negative")
	}

	switch c.Storage.Backend {
	case "json":
		if c.Storage.DataDir == "" {
			return fmt.Errorf("storage.data_dir is required for json backend")
		}
	case "postgres":
		if c.Postgres.Host == "" {
			return fmt.Errorf("postgres.host is required")
		}
		if c.Postgres.User == "" || c.Postgres.DBName == "" {
			return fmt.Errorf("postgres.user and postgres.db_name are required")
		}
	default:
		return fmt.Errorf("storage.backend must be 'json' or 'postgres', got '%s'", c.Storage.Backend)
	}

	if c.Report.Enabled && c.Report.Schedule == "" {
		return fmt.Errorf("report.schedule is required when report.enabled is set")
	}

	return nil
}

// Addr returns host:port for HTTP server binding
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GetShutdownTimeout returns the graceful shutdown timeout
func (c *ServerConfig) GetShutdownTimeout() time.Duration {
	return parseDuration(c.ShutdownTimeout, 5*time.Second)
}

// DSN returns a Postgres connection string
func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}

// GetQueryTimeout returns the per-query timeout
func (p *PostgresConfig) GetQueryTimeout() time.Duration {
	return parseDuration(p.QueryTimeout, 2*time.Second)
}

// GetMigrateTimeout returns the timeout for running migrations
func (p *PostgresConfig) GetMigrateTimeout() time.Duration {
	return parseDuration(p.MigrateTimeout, 10*time.Second)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		return fallback
	}
	return duration
}
