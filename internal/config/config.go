package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/dotcommander/shopen/internal/app"
)

// Config holds the complete application configuration.
type Config struct {
	Verbose bool         `mapstructure:"verbose"`
	Env     EnvConfig    `mapstructure:"env"`
	Launch  LaunchConfig `mapstructure:"launch"`
}

// EnvConfig holds the compatibility-shell cleanup rule.
type EnvConfig struct {
	Marker string   `mapstructure:"marker"`
	Scrub  []string `mapstructure:"scrub"`
}

// LaunchConfig holds ShellExecute settings.
type LaunchConfig struct {
	Verb      string `mapstructure:"verb"`
	Directory string `mapstructure:"directory"`
	Show      string `mapstructure:"show"`
}

// Load unmarshals viper config into struct
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

// SetDefaults sets default values
func SetDefaults() {
	viper.SetDefault("verbose", false)

	// MSYS2 / Git Bash cleanup
	viper.SetDefault("env.marker", "MSYSTEM")
	viper.SetDefault("env.scrub", []string{"HOME", "SHELL"})

	// Empty verb and directory let the shell pick its defaults
	viper.SetDefault("launch.verb", "")
	viper.SetDefault("launch.directory", "")
	viper.SetDefault("launch.show", "normal")
}

// Dir returns the config directory, honoring XDG_CONFIG_HOME.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "shopen"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "shopen"), nil
}

// ReadFile reads the optional config file from dir. A missing file is not
// an error.
func ReadFile(dir string) error {
	viper.AddConfigPath(dir)
	viper.SetConfigType("yaml")
	viper.SetConfigName("config")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	return nil
}

// LauncherConfig converts the loaded settings into launcher settings.
func (c *Config) LauncherConfig() (app.LauncherConfig, error) {
	show, err := app.ParseShowCommand(c.Launch.Show)
	if err != nil {
		return app.LauncherConfig{}, fmt.Errorf("launch.show: %w", err)
	}
	return app.LauncherConfig{
		Verb: c.Launch.Verb,
		Dir:  c.Launch.Directory,
		Show: show,
		EnvRule: app.EnvRule{
			Marker:     c.Env.Marker,
			Dependents: c.Env.Scrub,
		},
	}, nil
}
