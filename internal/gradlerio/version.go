package gradlerio

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DefaultVersion is the GradleRIO release the builtin templates are tested against.
const DefaultVersion = "2024.3.2"

// Resolve picks the platform version for a run. The first non-empty value
// wins: the explicit flag, then the configured value, then DefaultVersion.
// The winner must parse as a version; a leading "v" is stripped because the
// Gradle plugin block takes the bare number.
func Resolve(flag, configured string) (string, error) {
	v := DefaultVersion
	switch {
	case strings.TrimSpace(flag) != "":
		v = flag
	case strings.TrimSpace(configured) != "":
		v = configured
	}

	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	if _, err := semver.NewVersion(v); err != nil {
		return "", fmt.Errorf("invalid GradleRIO version %q: %w", v, err)
	}
	return v, nil
}

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// OlderThanDefault reports whether v predates DefaultVersion. The builtin
// templates use APIs that may not exist in older releases.
func OlderThanDefault(v string) bool {
	cmp, err := CompareVersions(v, DefaultVersion)
	if err != nil {
		return false
	}
	return cmp == -1
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
