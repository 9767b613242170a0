// Package config provides configuration loading and validation for the
// whitefang CLI.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/whitefang/pkg/report"
	"github.com/Sumatoshi-tech/whitefang/pkg/safeconv"
)

// Sentinel validation errors.
var (
	ErrInvalidSizeFormat = errors.New("invalid size format")
	ErrEmptyLanguage     = errors.New("language must not be empty")
)

// Config holds all configuration for the whitefang CLI.
type Config struct {
	Discovery DiscoveryConfig `mapstructure:"discovery"`
	Output    OutputConfig    `mapstructure:"output"`
	Lock      LockConfig      `mapstructure:"lock"`
}

// DiscoveryConfig controls which files a run considers.
type DiscoveryConfig struct {
	// Language names the language whose extension set is scanned.
	Language string `mapstructure:"language"`

	// ExcludeDirs extends the built-in directory denylist.
	ExcludeDirs []string `mapstructure:"exclude_dirs"`

	// MaxFileSize is a human-readable size limit ("10MB"); empty or "0"
	// disables it.
	MaxFileSize string `mapstructure:"max_file_size"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
	Verbose bool   `mapstructure:"verbose"`
}

// LockConfig controls the tree lock taken by write-capable runs.
type LockConfig struct {
	Disabled bool `mapstructure:"disabled"`
}

// LoadConfig loads configuration from file and environment variables.
// With an empty path it searches the working directory for
// .whitefang.yaml; a missing file is not an error there, while an
// explicitly named file must exist.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(".whitefang")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
	}

	viperCfg.SetEnvPrefix("WHITEFANG")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// MaxFileSizeBytes parses the discovery size limit. Empty and "0" both
// disable the limit. Values beyond int64 clamp to the maximum.
func (c *Config) MaxFileSizeBytes() (int64, error) {
	trimmed := strings.TrimSpace(c.Discovery.MaxFileSize)
	if trimmed == "" || trimmed == "0" {
		return 0, nil
	}

	parsed, err := humanize.ParseBytes(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w for max_file_size: %s", ErrInvalidSizeFormat, c.Discovery.MaxFileSize)
	}

	return safeconv.ClampUint64ToInt64(parsed), nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	// Discovery defaults.
	viperCfg.SetDefault("discovery.language", "Python")
	viperCfg.SetDefault("discovery.exclude_dirs", []string{})
	viperCfg.SetDefault("discovery.max_file_size", "0")

	// Output defaults.
	viperCfg.SetDefault("output.format", report.FormatText)
	viperCfg.SetDefault("output.no_color", false)
	viperCfg.SetDefault("output.verbose", false)

	// Lock defaults.
	viperCfg.SetDefault("lock.disabled", false)
}

// validateConfig validates the configuration and canonicalizes the
// output format.
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Discovery.Language) == "" {
		return ErrEmptyLanguage
	}

	if _, err := config.MaxFileSizeBytes(); err != nil {
		return err
	}

	format, err := report.ValidateFormat(config.Output.Format)
	if err != nil {
		return err
	}

	config.Output.Format = format

	return nil
}
