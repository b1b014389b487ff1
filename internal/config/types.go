// Package config loads folderator settings from defaults, a YAML file,
// FOLDERATOR_* environment variables and command line flags.
package config

// Config holds the resolved settings for one invocation.
type Config struct {
	Shell    string `koanf:"shell"`
	Verbose  bool   `koanf:"verbose"`
	NoColor  bool   `koanf:"no_color"`
	NoUserRC bool   `koanf:"no_user_rc"`
	TempDir  string `koanf:"temp_dir"`

	// FileUsed is the config file that was read, empty when none was.
	FileUsed string `koanf:"-"`
}

const (
	// DefaultShell is used when no shell is configured.
	DefaultShell = "zsh"
	// EnvPrefix prefixes every environment variable the loader reads.
	EnvPrefix = "FOLDERATOR_"
)
