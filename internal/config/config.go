// Package config loads exerun settings from defaults, a YAML config file and
// EXERUN_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/AntonioJCosta/exerun/internal/core/domain/command"
)

// EnvPrefix is prepended to every environment override, e.g. EXERUN_TIMEOUT.
const EnvPrefix = "EXERUN"

// Config holds all settings for exerun.
type Config struct {
	Executable  string        `mapstructure:"executable"`
	Timeout     time.Duration `mapstructure:"timeout"`
	WaitDelay   time.Duration `mapstructure:"wait_delay"`
	LogLevel    string        `mapstructure:"log_level"`
	PresetsFile string        `mapstructure:"presets_file"`
}

// Load reads configuration. When path is empty the user config at
// $XDG_CONFIG_HOME/exerun/config.yaml is used if present; an explicit path
// must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if dir := UserConfigDir(); dir != "" {
		v.SetConfigName("config")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading user config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.PresetsFile = expandHome(cfg.PresetsFile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings that cannot be used.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Executable) == "" {
		return fmt.Errorf("config: executable must not be empty")
	}
	if c.WaitDelay < 0 {
		return fmt.Errorf("config: wait_delay must not be negative, got %s", c.WaitDelay)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	return nil
}

// OverrideLogLevel replaces the configured log level with one given on the
// command line and validates the result. An empty level keeps the current one.
func (c *Config) OverrideLogLevel(level string) error {
	if level == "" {
		return nil
	}
	c.LogLevel = level
	return c.Validate()
}

// UserConfigDir returns the directory holding config.yaml and presets.yaml.
func UserConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "exerun")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("executable", command.DefaultExecutable)
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("wait_delay", 2*time.Second)
	v.SetDefault("log_level", "warn")

	presets := ""
	if dir := UserConfigDir(); dir != "" {
		presets = filepath.Join(dir, "presets.yaml")
	}
	v.SetDefault("presets_file", presets)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
