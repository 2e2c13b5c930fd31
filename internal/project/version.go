package project

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// checkVersion returns a warning when version does not parse as a semantic
// version. Partial versions like "0.1" are accepted.
func checkVersion(version string) []string {
	if _, err := semver.NewVersion(version); err != nil {
		return []string{fmt.Sprintf("version %q is not a semantic version: %v", version, err)}
	}
	return nil
}
