package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix of every setting, e.g.
// MORTGAGE_LOG_LEVEL for log.level.
const envPrefix = "MORTGAGE"

// Render styles that are not glamour standard styles.
const (
	StyleAuto = "auto" // pick a glamour style from the terminal background
	StyleRaw  = "raw"  // print markdown as is
)

// Config is the CLI configuration.
type Config struct {
	Currency string       `mapstructure:"currency"` // default currency of scenarios without one
	Log      LogConfig    `mapstructure:"log"`
	Render   RenderConfig `mapstructure:"render"`
}

// LogConfig configures the diagnostic logger, it writes to stderr.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn or error
	Format string `mapstructure:"format"` // console or json
}

// RenderConfig configures how markdown is printed.
type RenderConfig struct {
	Style string `mapstructure:"style"` // auto, raw or a glamour standard style (dark, light, notty, ascii...)
	Width int    `mapstructure:"width"` // word wrap width
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Currency: "CNY",
		Log:      LogConfig{Level: "warn", Format: "console"},
		Render:   RenderConfig{Style: StyleAuto, Width: 160},
	}
}

// newViper returns a viper instance with defaults and MORTGAGE_* environment
// variables bound.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := DefaultConfig()
	v.SetDefault("currency", d.Currency)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("render.style", d.Render.Style)
	v.SetDefault("render.width", d.Render.Width)
	return v
}

// LoadConfig reads the configuration file at path, then applies MORTGAGE_*
// environment overrides.
//
// An empty path reads $HOME/.mortgage.yaml if it exists.
func LoadConfig(path string) (*Config, error) {
	v := newViper()
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			if p := filepath.Join(home, ".mortgage.yaml"); fileExists(p) {
				path = p
			}
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log.format %q: must be console or json", c.Log.Format)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Render.Width < 0 {
		return fmt.Errorf("invalid render.width %d", c.Render.Width)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
