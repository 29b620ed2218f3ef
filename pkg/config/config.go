// Package config assembles process-wide settings from, in increasing
// precedence: defaults, a YAML config file, MEI_* environment variables and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config holds the settings shared by the CLI, the batch binary and the
// HTTP server.
type Config struct {
	OutputPath string `mapstructure:"output"`
	ListenAddr string `mapstructure:"listen_addr"`
	Layout     string `mapstructure:"layout"`
	Year       int    `mapstructure:"year"`
}

// Build loads configuration. cfgFile may be empty, in which case config.yaml
// in the working directory is used when present. flags may be nil.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// .env is optional
	_ = gotenv.Load()

	v := viper.New()
	v.SetDefault("output", "")
	v.SetDefault("listen_addr", "0.0.0.0:3000")
	v.SetDefault("layout", "")
	v.SetDefault("year", 0)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("MEI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
