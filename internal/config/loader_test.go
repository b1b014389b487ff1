package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the default config location at an empty temp dir and
// clears the variables Load reads.
func isolate(t *testing.T) string {
	t.Helper()
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	for _, name := range []string{"SHELL", "VERBOSE", "NO_COLOR", "NO_USER_RC", "TEMP_DIR"} {
		t.Setenv(EnvPrefix+name, "")
		require.NoError(t, os.Unsetenv(EnvPrefix+name))
	}
	return xdg
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// testFlags mirrors the persistent flags of the root command.
func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("shell", DefaultShell, "")
	fs.BoolP("verbose", "v", false, "")
	fs.Bool("no-color", false, "")
	fs.Bool("no-user-rc", false, "")
	fs.String("temp-dir", "", "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "zsh", cfg.Shell)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.NoColor)
	assert.False(t, cfg.NoUserRC)
	assert.Equal(t, os.TempDir(), cfg.TempDir)
	assert.Empty(t, cfg.FileUsed)
}

func TestLoad_Precedence(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		env       map[string]string
		args      []string
		wantShell string
		wantNoRC  bool
	}{
		{
			name:      "file overrides defaults",
			file:      "shell: bash\nno_user_rc: true\n",
			wantShell: "bash",
			wantNoRC:  true,
		},
		{
			name:      "env overrides file",
			file:      "shell: bash\n",
			env:       map[string]string{"FOLDERATOR_SHELL": "zsh", "FOLDERATOR_NO_USER_RC": "true"},
			wantShell: "zsh",
			wantNoRC:  true,
		},
		{
			name:      "flags override env",
			env:       map[string]string{"FOLDERATOR_SHELL": "zsh"},
			args:      []string{"--shell", "bash", "--no-user-rc"},
			wantShell: "bash",
			wantNoRC:  true,
		},
		{
			name:      "unchanged flags keep lower layers",
			file:      "shell: bash\n",
			args:      []string{"--verbose"},
			wantShell: "bash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xdg := isolate(t)
			if tt.file != "" {
				writeConfig(t, filepath.Join(xdg, "folderator", "config.yaml"), tt.file)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			fs := testFlags()
			require.NoError(t, fs.Parse(tt.args))

			cfg, err := Load("", fs)
			require.NoError(t, err)
			assert.Equal(t, tt.wantShell, cfg.Shell)
			assert.Equal(t, tt.wantNoRC, cfg.NoUserRC)
			if tt.file != "" {
				assert.Equal(t, filepath.Join(xdg, "folderator", "config.yaml"), cfg.FileUsed)
			}
		})
	}
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeConfig(t, path, "verbose: true\ntemp_dir: /var/tmp\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "/var/tmp", cfg.TempDir)
	assert.Equal(t, path, cfg.FileUsed)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("explicit config file missing", func(t *testing.T) {
		isolate(t)
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
		assert.ErrorIs(t, err, ErrConfig)
	})

	t.Run("malformed config file", func(t *testing.T) {
		xdg := isolate(t)
		writeConfig(t, filepath.Join(xdg, "folderator", "config.yaml"), "shell: [zsh\n")
		_, err := Load("", nil)
		assert.ErrorIs(t, err, ErrConfig)
	})

	t.Run("unsupported shell", func(t *testing.T) {
		isolate(t)
		t.Setenv("FOLDERATOR_SHELL", "fish")
		_, err := Load("", nil)
		assert.ErrorIs(t, err, ErrConfig)
		assert.Contains(t, err.Error(), `"fish"`)
	})
}

func TestConfig_normalize(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{shell: "zsh", want: "zsh"},
		{shell: "BASH", want: "bash"},
		{shell: "/usr/local/bin/bash", want: "bash"},
		{shell: "  ", want: "zsh"},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			cfg := &Config{Shell: tt.shell, TempDir: "/tmp"}
			require.NoError(t, cfg.normalize())
			assert.Equal(t, tt.want, cfg.Shell)
		})
	}
}

func TestDefaultConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "folderator", "config.yaml"), DefaultConfigFile())

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)
	assert.Equal(t, filepath.Join(home, ".config", "folderator", "config.yaml"), DefaultConfigFile())
}
