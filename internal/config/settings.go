package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DefaultConfigName is looked up in the working directory when --config is not given
	DefaultConfigName = "rgbcalc"
	// EnvPrefix namespaces environment overrides, e.g. RGBCALC_FORMAT=json
	EnvPrefix = "RGBCALC"
)

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`            // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`          // json, console
	OutputFile string `mapstructure:"output_file" yaml:"output_file,omitempty"` // optional file output
}

// Settings are the runtime options shared by the CLI and the TUI
type Settings struct {
	// Guidelines is an optional path to a guideline table replacing the bundled one
	Guidelines string `mapstructure:"guidelines" yaml:"guidelines,omitempty"`
	Format     string `mapstructure:"format" yaml:"format,omitempty"`
	// CompareFormat is the output of the compare command (table, compact, csv, json)
	CompareFormat string        `mapstructure:"compare_format" yaml:"compare_format,omitempty"`
	Logging       LoggingConfig `mapstructure:"logging" yaml:"logging,omitempty"`
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		Format:        "console",
		CompareFormat: "table",
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// NewViper returns a viper instance with defaults and environment binding applied
func NewViper() *viper.Viper {
	v := viper.New()
	defaults := DefaultSettings()
	v.SetDefault("guidelines", defaults.Guidelines)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("compare_format", defaults.CompareFormat)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.output_file", defaults.Logging.OutputFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags maps command-line flags onto settings keys. Flags that are not
// registered on the set are skipped.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for key, flagName := range keys {
		flag := flags.Lookup(flagName)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flagName, err)
		}
	}
	return nil
}

// LoadSettings reads settings from configFile, or from rgbcalc.yaml in the working
// directory when configFile is empty. A missing default file is not an error.
func LoadSettings(v *viper.Viper, configFile string) (Settings, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("unable to decode settings: %w", err)
	}
	settings.Format = strings.ToLower(strings.TrimSpace(settings.Format))
	settings.CompareFormat = strings.ToLower(strings.TrimSpace(settings.CompareFormat))
	return settings, nil
}
