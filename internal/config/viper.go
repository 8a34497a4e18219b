// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"fjacquet/budget-form/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendFS   = "fs"
	BackendBolt = "bolt"
	BackendGCS  = "gcs"
)

// EnvPrefix prefixes every environment override, e.g. BUDGET_VAULT_ROOT.
const EnvPrefix = "BUDGET"

// LogConfig configures the application logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// VaultConfig selects and locates the document store.
type VaultConfig struct {
	Backend   string `mapstructure:"backend" yaml:"backend"`
	Root      string `mapstructure:"root" yaml:"root"`
	BoltPath  string `mapstructure:"bolt_path" yaml:"bolt_path"`
	GCSBucket string `mapstructure:"gcs_bucket" yaml:"gcs_bucket"`
	GCSPrefix string `mapstructure:"gcs_prefix" yaml:"gcs_prefix"`
}

// WriterConfig tunes unique document creation.
type WriterConfig struct {
	MaxAttempts int    `mapstructure:"max_attempts" yaml:"max_attempts"`
	Extension   string `mapstructure:"extension" yaml:"extension"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Address string `mapstructure:"address" yaml:"address"`
}

// Config represents the complete application configuration
type Config struct {
	Log      LogConfig       `mapstructure:"log" yaml:"log"`
	Settings models.Settings `mapstructure:"settings" yaml:"settings"`
	Vault    VaultConfig     `mapstructure:"vault" yaml:"vault"`
	Writer   WriterConfig    `mapstructure:"writer" yaml:"writer"`
	Server   ServerConfig    `mapstructure:"server" yaml:"server"`

	// Timezone is the IANA zone entries are dated in, or "Local".
	Timezone string `mapstructure:"timezone" yaml:"timezone"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	return InitializeConfigFromFile("")
}

// InitializeConfigFromFile is InitializeConfig reading configFile instead of
// searching the default locations. An empty configFile searches.
func InitializeConfigFromFile(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.budget-form")
		v.AddConfigPath(".budget-form")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		if configFile != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// 5. Well-known cloud variable for the bucket
	if err := v.BindEnv("vault.gcs_bucket", EnvPrefix+"_VAULT_GCS_BUCKET", "GCS_BUCKET"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to bind GCS_BUCKET environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Entry settings defaults
	defaults := models.DefaultSettings()
	v.SetDefault("settings.accounts_folder_path", defaults.AccountsFolderPath)
	v.SetDefault("settings.tags_folder_path", defaults.TagsFolderPath)
	v.SetDefault("settings.template_file_path", defaults.TemplateFilePath)
	v.SetDefault("settings.created_file_path_template", defaults.CreatedFilePathTemplate)
	v.SetDefault("settings.summary_file_path", defaults.SummaryFilePath)

	// Vault defaults
	v.SetDefault("vault.backend", BackendFS)
	v.SetDefault("vault.root", ".")
	v.SetDefault("vault.bolt_path", "budget.db")
	v.SetDefault("vault.gcs_bucket", "")
	v.SetDefault("vault.gcs_prefix", "")

	// Writer defaults
	v.SetDefault("writer.max_attempts", models.DefaultMaxAttempts)
	v.SetDefault("writer.extension", models.DocumentExtension)

	// Server defaults
	v.SetDefault("server.address", ":8080")

	v.SetDefault("timezone", "Local")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	switch config.Vault.Backend {
	case BackendFS:
		if config.Vault.Root == "" {
			return fmt.Errorf("vault.root is required for the %s backend", BackendFS)
		}
	case BackendBolt:
		if config.Vault.BoltPath == "" {
			return fmt.Errorf("vault.bolt_path is required for the %s backend", BackendBolt)
		}
	case BackendGCS:
		if config.Vault.GCSBucket == "" {
			return fmt.Errorf("vault.gcs_bucket is required for the %s backend", BackendGCS)
		}
	default:
		return fmt.Errorf("invalid vault backend: %s (must be '%s', '%s' or '%s')",
			config.Vault.Backend, BackendFS, BackendBolt, BackendGCS)
	}

	if config.Writer.MaxAttempts < 1 || config.Writer.MaxAttempts > 1000 {
		return fmt.Errorf("writer.max_attempts must be between 1 and 1000, got: %d", config.Writer.MaxAttempts)
	}

	if config.Writer.Extension != "" && !strings.HasPrefix(config.Writer.Extension, ".") {
		return fmt.Errorf("writer.extension must start with a dot, got: %s", config.Writer.Extension)
	}

	if _, err := config.Location(); err != nil {
		return err
	}

	return nil
}

// Location returns the time zone entries are dated in.
func (c *Config) Location() (*time.Location, error) {
	switch c.Timezone {
	case "", "Local":
		return time.Local, nil
	default:
		loc, err := time.LoadLocation(c.Timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone: %s: %w", c.Timezone, err)
		}
		return loc, nil
	}
}

// ToYAML renders the effective configuration.
func (c *Config) ToYAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return out, nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	// Parse and set log level
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Configure log format
	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	logger.SetOutput(os.Stderr)

	return logger
}
