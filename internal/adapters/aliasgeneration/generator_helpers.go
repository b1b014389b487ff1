package aliasgeneration

import (
	"os"
	"regexp"
	"strings"
)

// pathSeparators holds every character treated as a path separator: the
// forward slash plus the host separator.
var pathSeparators = uniqueSeparators("/", string(os.PathSeparator))

// separatorRunRegex matches consecutive path separators.
var separatorRunRegex = regexp.MustCompile("[" + regexp.QuoteMeta(pathSeparators) + "]+")

// invalidSlugCharsRegex matches runs of characters not allowed in a slug.
var invalidSlugCharsRegex = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// fallbackSlug is used when nothing usable is left of the basis string.
const fallbackSlug = "dir"

/*
Slugify turns arbitrary text into a shell-safe identifier fragment.

Every run of characters outside [A-Za-z0-9_-] becomes a single "-", and
leading and trailing dashes are removed. A result starting with a digit is
prefixed with "_", and an empty result becomes "dir".

Example:

	Slugify("My Folder!!") // "My-Folder"
	Slugify("123abc")      // "_123abc"
	Slugify("***")         // "dir"
*/
func Slugify(basename string) string {
	s := invalidSlugCharsRegex.ReplaceAllString(basename, "-")
	s = strings.Trim(s, "-")
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}
	if s == "" {
		return fallbackSlug
	}
	return s
}

// aliasBasis selects the text an alias is derived from.
func aliasBasis(resolvedPath, customName string) string {
	if customName != "" {
		return customName
	}
	if base := pathBasename(resolvedPath); base != "" {
		return base
	}
	return separatorRunRegex.ReplaceAllString(resolvedPath, "_")
}

// pathBasename returns the last path segment, ignoring trailing separators.
// It returns "" when p holds nothing but separators.
func pathBasename(p string) string {
	trimmed := strings.TrimRight(p, pathSeparators)
	if trimmed == "" {
		return ""
	}
	if i := strings.LastIndexAny(trimmed, pathSeparators); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}

func uniqueSeparators(seps ...string) string {
	var b strings.Builder
	for _, s := range seps {
		if !strings.Contains(b.String(), s) {
			b.WriteString(s)
		}
	}
	return b.String()
}
