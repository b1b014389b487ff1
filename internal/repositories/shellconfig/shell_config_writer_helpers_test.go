package shellconfig

import (
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// manageTestFile writes a fixture file and removes it when the test ends.
func manageTestFile(t *testing.T, path string, content []byte) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", dir, err)
	}
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
	t.Cleanup(func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			t.Logf("Warning: failed to remove test file %s: %v", path, err)
		}
	})
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "/srv/www", want: `'/srv/www'`},
		{in: "", want: `''`},
		{in: "/tmp/it's here", want: `'/tmp/it'"'"'s here'`},
		{in: `/tmp/$HOME "x" ` + "`id`", want: `'/tmp/$HOME "x" ` + "`id`'"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Quote(tt.in); got != tt.want {
				t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestAliasLine(t *testing.T) {
	got := aliasLine("go-app", "/srv/app")
	want := `alias go-app='cd '"'"'/srv/app'"'"''` + "\n"
	if got != want {
		t.Errorf("aliasLine() = %s, want %s", got, want)
	}
}

// TestAliasLine_ShellRoundTrip checks that sh reads the alias body back as a cd
// into the exact path, whatever characters it holds.
func TestAliasLine_ShellRoundTrip(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}

	paths := []string{
		"/srv/plain",
		"/tmp/it's mine",
		`/tmp/$HOME and "quotes"`,
		"/tmp/back`tick`",
		`/tmp/back\slash`,
	}
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			line := strings.TrimSuffix(aliasLine("go-x", p), "\n")
			// Strip the "alias go-x=" prefix and let sh unquote the remaining word twice.
			word := strings.TrimPrefix(line, "alias go-x=")
			script := "body=" + word + "\neval \"set -- $body\"\nprintf '%s' \"$2\""
			out, err := exec.Command(sh, "-c", script).Output()
			if err != nil {
				t.Fatalf("sh failed: %v", err)
			}
			if string(out) != p {
				t.Errorf("round trip = %q, want %q", out, p)
			}
		})
	}
}

func TestParseAliasLineFromString(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantName    string
		wantCommand string
		wantIsAlias bool
	}{
		{
			name:        "double quoted value",
			line:        `alias ll="ls -alF"`,
			wantName:    "ll",
			wantCommand: "ls -alF",
			wantIsAlias: true,
		},
		{
			name:        "single quoted value",
			line:        `alias go-api='cd ~/src/api'`,
			wantName:    "go-api",
			wantCommand: "cd ~/src/api",
			wantIsAlias: true,
		},
		{
			name:        "unquoted value",
			line:        `alias g=git`,
			wantName:    "g",
			wantCommand: "git",
			wantIsAlias: true,
		},
		{
			name:        "spaces around equals and line padding",
			line:        `   alias   ga   =  "git add"  `,
			wantName:    "ga",
			wantCommand: "git add",
			wantIsAlias: true,
		},
		{
			name:        "empty value",
			line:        `alias e=''`,
			wantName:    "e",
			wantCommand: "",
			wantIsAlias: true,
		},
		{
			name:        "commented out",
			line:        `# alias l="ls -CF"`,
			wantIsAlias: false,
		},
		{
			name:        "not an alias line",
			line:        `export PATH="/usr/local/bin:$PATH"`,
			wantIsAlias: false,
		},
		{
			name:        "alias lookup without equals",
			line:        `alias myls`,
			wantIsAlias: false,
		},
		{
			name:        "double quote inside single quoted value",
			line:        `alias hi='echo "hello"'`,
			wantName:    "hi",
			wantCommand: `echo "hello"`,
			wantIsAlias: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, body, ok := parseAliasLineFromString(tt.line)
			if name != tt.wantName || body != tt.wantCommand || ok != tt.wantIsAlias {
				t.Errorf("parseAliasLineFromString(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.line, name, body, ok, tt.wantName, tt.wantCommand, tt.wantIsAlias)
			}
		})
	}
}

func TestGetAliasesFromFile(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name        string
		filePath    func() string
		wantAliases map[string]string
	}{
		{
			name: "file does not exist",
			filePath: func() string {
				return filepath.Join(tempDir, "missing_rc")
			},
			wantAliases: map[string]string{},
		},
		{
			name: "mixed content",
			filePath: func() string {
				path := filepath.Join(tempDir, "mixed_rc")
				content := `
# This is a comment
alias g=git
export SOME_VAR="value"
alias go-api='cd /src/api'
`
				manageTestFile(t, path, []byte(content))
				return path
			},
			wantAliases: map[string]string{
				"g":      "git",
				"go-api": "cd /src/api",
			},
		},
		{
			name: "definitions without a name are ignored",
			filePath: func() string {
				path := filepath.Join(tempDir, "nameless_rc")
				manageTestFile(t, path, []byte("alias = \"missingname\"\nalias ok=x\n"))
				return path
			},
			wantAliases: map[string]string{"ok": "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aliases, err := getAliasesFromFile(tt.filePath())
			if err != nil {
				t.Fatalf("reading aliases: %v", err)
			}
			if !reflect.DeepEqual(aliases, tt.wantAliases) {
				t.Errorf("aliases = %v, want %v", aliases, tt.wantAliases)
			}
		})
	}
}

func TestToUserFriendlyPath(t *testing.T) {
	homeDir := filepath.FromSlash("/home/dev")

	tests := []struct {
		name    string
		absPath string
		want    string
	}{
		{name: "exactly home", absPath: homeDir, want: "~"},
		{name: "file in home", absPath: filepath.Join(homeDir, ".zshrc"), want: filepath.Join("~", ".zshrc")},
		{name: "nested in home", absPath: filepath.Join(homeDir, "src", "api"), want: filepath.Join("~", "src", "api")},
		{name: "home with trailing separator", absPath: homeDir + string(filepath.Separator), want: "~"},
		{name: "sibling sharing a prefix", absPath: homeDir + "2", want: homeDir + "2"},
		{name: "outside home", absPath: filepath.FromSlash("/usr/local/bin"), want: filepath.FromSlash("/usr/local/bin")},
		{name: "empty", absPath: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toUserFriendlyPath(tt.absPath, homeDir); got != tt.want {
				t.Errorf("toUserFriendlyPath(%q) = %q, want %q", tt.absPath, got, tt.want)
			}
		})
	}
}
