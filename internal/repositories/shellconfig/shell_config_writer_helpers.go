package shellconfig

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Quote wraps s in single quotes so that a POSIX shell reads it back verbatim.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// aliasLine defines alias as a cd into path. The path is quoted twice: once
// for the cd inside the alias body and once for the alias definition itself.
func aliasLine(alias, path string) string {
	return fmt.Sprintf("alias %s=%s\n", alias, Quote("cd "+Quote(path)))
}

// iterateFunction renders the iterate helper. Without arguments it opens a
// nested interactive shell in each folder; with arguments it evaluates them
// in a subshell inside each folder.
func iterateFunction(d dialect, promptMarker string) string {
	var b strings.Builder
	b.WriteString("iterate() {\n")
	b.WriteString("  local __folderator_dir\n")
	b.WriteString("  if [ $# -eq 0 ]; then\n")
	b.WriteString("    for __folderator_dir in \"${__FOLDERATOR_DIRS[@]}\"; do\n")
	fmt.Fprintf(&b, "      (cd \"$__folderator_dir\" && PROMPT_CHAR=%s %s)\n", Quote(promptMarker), d.nestedShell)
	b.WriteString("    done\n")
	b.WriteString("    return 0\n")
	b.WriteString("  fi\n")
	b.WriteString("  for __folderator_dir in \"${__FOLDERATOR_DIRS[@]}\"; do\n")
	b.WriteString("    printf '=== %s ===\\n' \"$__folderator_dir\"\n")
	b.WriteString("    (cd \"$__folderator_dir\" && eval \"$*\")\n")
	b.WriteString("  done\n")
	b.WriteString("}\n")
	return b.String()
}

func getAliasesFromFile(filePath string) (map[string]string, error) {
	aliases := make(map[string]string)
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return aliases, nil
		}
		return nil, fmt.Errorf("failed to open alias file %s: %w", filePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		name, command, isAlias := parseAliasLineFromString(scanner.Text())
		if isAlias && name != "" {
			aliases[name] = command
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning alias file %s: %w", filePath, err)
	}
	return aliases, nil
}

// parseAliasLineFromString recognizes `alias name=value` lines, with value
// optionally wrapped in matching single or double quotes.
func parseAliasLineFromString(line string) (name string, command string, isAlias bool) {
	trimmedLine := strings.TrimSpace(line)
	if strings.HasPrefix(trimmedLine, "#") || !strings.HasPrefix(trimmedLine, "alias ") {
		return "", "", false
	}

	content := strings.TrimPrefix(trimmedLine, "alias ")
	parts := strings.SplitN(content, "=", 2)
	if len(parts) < 2 {
		// "alias foo" prints an alias, it does not define one.
		return "", "", false
	}

	name = strings.TrimSpace(parts[0])
	command = strings.TrimSpace(parts[1])
	if len(command) >= 2 {
		first, last := command[0], command[len(command)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			command = command[1 : len(command)-1]
		}
	}
	return name, command, true
}

// toUserFriendlyPath replaces a homeDir prefix with "~".
func toUserFriendlyPath(absPath, homeDir string) string {
	if homeDir == "" {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}
	if strings.HasPrefix(absPath, homeDir+string(os.PathSeparator)) {
		return filepath.Join("~", strings.TrimPrefix(absPath, homeDir+string(os.PathSeparator)))
	}
	return absPath
}
