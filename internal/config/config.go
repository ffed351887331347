package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is the struct that holds the configuration of m3u8info
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Output OutputConfig `mapstructure:"output"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	LogLevel string `mapstructure:"logLevel"`
}

type OutputConfig struct {
	Pretty  bool `mapstructure:"pretty"`
	Summary bool `mapstructure:"summary"`
}

// Level returns the configured logrus level.
func (c *AppConfig) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}

// Load reads m3u8info.json from dir, if present, and applies M3U8INFO_*
// environment overrides: M3U8INFO_APP_LOGLEVEL, M3U8INFO_OUTPUT_PRETTY and
// M3U8INFO_OUTPUT_SUMMARY.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("m3u8info")
	v.SetConfigType("json")
	v.AddConfigPath(dir)

	v.SetDefault("app.name", "m3u8info")
	v.SetDefault("app.logLevel", "warning")
	v.SetDefault("output.pretty", true)
	v.SetDefault("output.summary", false)

	v.SetEnvPrefix("M3U8INFO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if _, err := config.App.Level(); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	return &config, nil
}
