// Package config loads statusdeck settings from defaults, an optional yaml
// file, STATUSDECK_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"statusdeck/internal/store"
)

const (
	envPrefix = "STATUSDECK_"

	BackendFile   = "file"
	BackendSQLite = "sqlite"

	DefaultBackend  = BackendFile
	DefaultDebounce = 500 * time.Millisecond
	DefaultLogLevel = "info"
)

type Config struct {
	// Dir is the state directory; empty means store.ConfigDir().
	Dir      string        `koanf:"dir"`
	Backend  string        `koanf:"backend"`
	Debounce time.Duration `koanf:"debounce"`
	LogLevel string        `koanf:"log_level"`
	Mouse    bool          `koanf:"mouse"`

	// FileUsed is the yaml file that was read, if any.
	FileUsed string `koanf:"-"`
}

func defaults() map[string]any {
	return map[string]any{
		"dir":       "",
		"backend":   DefaultBackend,
		"debounce":  DefaultDebounce.String(),
		"log_level": DefaultLogLevel,
		"mouse":     true,
	}
}

// Load builds a Config. cfgFile names an explicit yaml file (which must
// exist); when empty, <configDir>/statusdeck.yaml is read if present. Only
// flags the user actually set override lower layers.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	used, err := resolveFile(cfgFile)
	if err != nil {
		return nil, err
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", used, err)
		}
	}

	// STATUSDECK_LOG_LEVEL -> log_level. STATUSDECK_CONFIG_DIR belongs to
	// store.ConfigDir and is not a config key.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		if key == "config_dir" {
			return ""
		}
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if _, ok := defaults()[key]; !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.FileUsed = used
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func resolveFile(explicit string) (string, error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return explicit, nil
	}
	p, err := store.ConfigFilePath()
	if err != nil {
		// No home directory: run on defaults.
		return "", nil
	}
	if _, err := os.Stat(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return p, nil
}

func (c *Config) Validate() error {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	switch c.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("invalid backend %q (expected %s|%s)", c.Backend, BackendFile, BackendSQLite)
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("invalid debounce %s: must be positive", c.Debounce)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(strings.TrimSpace(c.LogLevel))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
