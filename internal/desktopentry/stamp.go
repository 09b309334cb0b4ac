package desktopentry

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// StampStatus compares the version recorded in an entry to the running one.
type StampStatus int

const (
	StampMissing StampStatus = iota
	StampCurrent
	StampOlder
	StampNewer
)

func (s StampStatus) String() string {
	switch s {
	case StampCurrent:
		return "current"
	case StampOlder:
		return "older"
	case StampNewer:
		return "newer"
	default:
		return "missing"
	}
}

// CompareStamp reports how recorded relates to current. An empty recorded
// value is StampMissing. Either value failing to parse as semver is an error.
func CompareStamp(recorded, current string) (StampStatus, error) {
	if strings.TrimSpace(recorded) == "" {
		return StampMissing, nil
	}
	rv, err := parseSemver(recorded)
	if err != nil {
		return StampMissing, fmt.Errorf("parsing recorded version %q: %w", recorded, err)
	}
	cv, err := parseSemver(current)
	if err != nil {
		return StampMissing, fmt.Errorf("parsing current version %q: %w", current, err)
	}
	switch rv.Compare(cv) {
	case -1:
		return StampOlder, nil
	case 1:
		return StampNewer, nil
	default:
		return StampCurrent, nil
	}
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}
