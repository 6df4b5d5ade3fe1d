package main

import (
	"fmt"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/spf13/viper"
)

const (
	defaultTheme = "dracula"
	defaultWidth = 80
)

// Config holds the resolved configuration for go-docterm.
type Config struct {
	Render RenderConfig `mapstructure:"render"`
}

// RenderConfig controls how documentation blocks are rendered.
type RenderConfig struct {
	Theme   string `mapstructure:"theme"`
	Width   int    `mapstructure:"width"`
	Lenient bool   `mapstructure:"lenient"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Theme:   defaultTheme,
			Width:   defaultWidth,
			Lenient: false,
		},
	}
}

// LoadConfig loads configuration from an optional file and from DOCTERM_*
// environment variables. A missing config file is fine unless its path was
// given explicitly.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("DOCTERM")
	v.AutomaticEnv()
	v.BindEnv("render.theme", "DOCTERM_THEME")
	v.BindEnv("render.width", "DOCTERM_WIDTH")
	v.BindEnv("render.lenient", "DOCTERM_LENIENT")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(".docterm")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/docterm")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, ok := styles.Registry[c.Render.Theme]; !ok {
		return fmt.Errorf("unknown highlight theme %q", c.Render.Theme)
	}
	if c.Render.Width < 1 {
		return fmt.Errorf("invalid display width %d (must be positive)", c.Render.Width)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("render.theme", defaults.Render.Theme)
	v.SetDefault("render.width", defaults.Render.Width)
	v.SetDefault("render.lenient", defaults.Render.Lenient)
}
