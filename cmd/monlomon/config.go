package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tinytelemetry/monlomon/internal/model"
	"github.com/tinytelemetry/monlomon/internal/tui"
)

const envPrefix = "MONLOMON"

// appConfig holds user-tunable settings.
type appConfig struct {
	MaxLineSize        int    `mapstructure:"max-line-size"`
	DetailFormat       string `mapstructure:"detail-format"`
	ReverseScrollWheel bool   `mapstructure:"reverse-scroll-wheel"`
	Plain              bool   `mapstructure:"plain"`
	LogFile            string `mapstructure:"log-file"`
	LogLevel           string `mapstructure:"log-level"`
	LogMaxSizeMB       int    `mapstructure:"log-max-size-mb"`
}

func defaultConfigPath(home string) string {
	return filepath.Join(home, ".config", "monlomon", "config.yml")
}

func defaultLogFile(home string) string {
	return filepath.Join(home, ".local", "state", "monlomon", "monlomon.log")
}

// loadConfig layers defaults, the config file, MONLOMON_* environment
// variables and finally any flags the user set. A missing default config
// file is not an error; a missing file named with --config is.
func loadConfig(configPath string, flags *pflag.FlagSet) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("max-line-size", model.DefaultMaxLineSize)
	v.SetDefault("detail-format", model.DefaultDetailFormat)
	v.SetDefault("reverse-scroll-wheel", false)
	v.SetDefault("plain", false)
	v.SetDefault("log-file", defaultLogFile(home))
	v.SetDefault("log-level", model.DefaultLogLevel)
	v.SetDefault("log-max-size-mb", model.DefaultLogMaxSizeMB)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(defaultConfigPath(home))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &configFileNotFound) || os.IsNotExist(err)
		if !missing || configPath != "" {
			return cfg, fmt.Errorf("reading config %s: %w", v.ConfigFileUsed(), err)
		}
	}

	if flags != nil {
		for _, name := range []string{"max-line-size", "detail-format", "reverse-scroll-wheel", "plain", "log-file", "log-level"} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return cfg, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c appConfig) validate() error {
	if c.MaxLineSize <= 0 {
		return fmt.Errorf("max-line-size must be positive, got %d", c.MaxLineSize)
	}
	if _, err := tui.ParseDetailFormat(c.DetailFormat); err != nil {
		return err
	}
	if c.LogMaxSizeMB <= 0 {
		return fmt.Errorf("log-max-size-mb must be positive, got %d", c.LogMaxSizeMB)
	}
	return nil
}
