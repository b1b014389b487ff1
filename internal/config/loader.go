package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/AntonioJCosta/folderator/internal/repositories/shellconfig"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// ErrConfig marks every error returned by Load.
var ErrConfig = errors.New("invalid configuration")

// DefaultConfigFile returns $XDG_CONFIG_HOME/folderator/config.yaml, falling
// back to ~/.config when XDG_CONFIG_HOME is unset. It returns "" when neither
// location can be determined.
func DefaultConfigFile() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "folderator", "config.yaml")
}

// findConfigFile picks the config file to read.
// An explicit path must exist; the default location is optional.
func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("%w: config file %s: %w", ErrConfig, explicit, err)
		}
		return explicit, nil
	}
	candidate := DefaultConfigFile()
	if candidate == "" {
		return "", nil
	}
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return "", nil
}

// Load resolves the configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"shell":      DefaultShell,
		"verbose":    false,
		"no_color":   false,
		"no_user_rc": false,
		"temp_dir":   os.TempDir(),
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("%w: failed to load defaults: %w", ErrConfig, err)
	}

	// 2. Config file
	fileUsed, err := findConfigFile(cfgFile)
	if err != nil {
		return nil, err
	}
	if fileUsed != "" {
		if err := k.Load(file.Provider(fileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: error reading config file %s: %w", ErrConfig, fileUsed, err)
		}
	}

	// 3. Environment, FOLDERATOR_NO_USER_RC -> no_user_rc
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("%w: failed to load env vars: %w", ErrConfig, err)
	}

	// 4. Flags that were set explicitly, kebab-case -> snake_case
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("%w: failed to load flags: %w", ErrConfig, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: unable to decode config: %w", ErrConfig, err)
	}
	cfg.FileUsed = fileUsed

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// normalize accepts a shell path such as /bin/bash and rejects unknown shells.
func (c *Config) normalize() error {
	shell := strings.ToLower(strings.TrimSpace(c.Shell))
	if shell == "" {
		shell = DefaultShell
	}
	shell = filepath.Base(shell)
	if !slices.Contains(shellconfig.SupportedShells(), shell) {
		return fmt.Errorf("%w: unsupported shell %q (supported: %s)",
			ErrConfig, c.Shell, strings.Join(shellconfig.SupportedShells(), ", "))
	}
	c.Shell = shell

	if c.TempDir == "" {
		c.TempDir = os.TempDir()
	}
	return nil
}
