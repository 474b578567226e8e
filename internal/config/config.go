package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/deploymenttheory/go-afp/internal/types"
)

// Config holds the settings shared by the CLI and the service layer
type Config struct {
	OutputFormat     string `mapstructure:"output_format"`
	ForkBackend      string `mapstructure:"fork_backend"`
	FinderInfoFormat string `mapstructure:"finder_info_format"`
	CopyBufferSize   int    `mapstructure:"copy_buffer_size"`
	LogLevel         string `mapstructure:"log_level"`
}

const (
	// DefaultCopyBufferSize is the chunk size used when streaming a resource fork.
	DefaultCopyBufferSize = 64 * 1024

	// EnvPrefix is prepended to every environment variable override.
	EnvPrefix = "AFP"
)

var validOutputFormats = []string{"table", "json", "yaml"}

// SetDefaults registers the default value of every key on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output_format", "table")
	v.SetDefault("fork_backend", "auto")
	v.SetDefault("finder_info_format", "auto")
	v.SetDefault("copy_buffer_size", DefaultCopyBufferSize)
	v.SetDefault("log_level", "warn")
}

// Load reads afp-config.yaml (or configFile when set) into v and returns the
// validated result. A missing config file is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("afp-config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.afp")
		v.AddConfigPath("/etc/afp")
	}

	SetDefaults(v)

	// Allow environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks every enumerated setting
func (c *Config) Validate() error {
	if !isValidOutputFormat(c.OutputFormat) {
		return fmt.Errorf("invalid output_format %q: must be one of %s", c.OutputFormat, strings.Join(validOutputFormats, ", "))
	}
	if _, err := types.ParseBackendKind(c.ForkBackend); err != nil {
		return err
	}
	if _, err := types.ParseRecordFormat(c.FinderInfoFormat); err != nil {
		return err
	}
	if c.CopyBufferSize <= 0 {
		return fmt.Errorf("invalid copy_buffer_size %d: must be positive", c.CopyBufferSize)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	return nil
}

// Backend returns the configured resource fork backend
func (c *Config) Backend() types.BackendKind {
	k, _ := types.ParseBackendKind(c.ForkBackend)
	return k
}

// RecordFormat returns the configured Finder info layout
func (c *Config) RecordFormat() types.RecordFormat {
	f, _ := types.ParseRecordFormat(c.FinderInfoFormat)
	return f
}

// Level returns the configured log level, falling back to warn
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}

func isValidOutputFormat(format string) bool {
	for _, f := range validOutputFormats {
		if f == format {
			return true
		}
	}
	return false
}
