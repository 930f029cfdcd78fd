package environment

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinimumNPMVersion is the oldest npm that can install the sandbox.
const MinimumNPMVersion = "5.0.0"

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
func CompareVersions(a, b string) (int, error) {
	av, err := ParseVersion(a)
	if err != nil {
		return 0, err
	}
	bv, err := ParseVersion(b)
	if err != nil {
		return 0, err
	}
	return av.Compare(bv), nil
}

// IsBelowMinimum reports whether reported is older than minimum.
func IsBelowMinimum(reported, minimum string) (bool, error) {
	cmp, err := CompareVersions(reported, minimum)
	if err != nil {
		return false, err
	}
	return cmp == -1, nil
}

// ParseVersion trims whitespace and a leading "v" from a version report and
// parses it. Package managers print a trailing newline.
func ParseVersion(version string) (*semver.Version, error) {
	cleaned := strings.TrimPrefix(strings.TrimSpace(version), "v")
	if cleaned == "" {
		return nil, fmt.Errorf("empty version string")
	}
	v, err := semver.NewVersion(cleaned)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", cleaned, err)
	}
	return v, nil
}
