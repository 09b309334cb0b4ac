package platform

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DesktopDirKey is the user-dirs.dirs entry naming the desktop directory.
const DesktopDirKey = "XDG_DESKTOP_DIR"

// ErrMalformedEntry is returned when a user-dirs line for the requested key
// cannot be turned into a path.
var ErrMalformedEntry = errors.New("malformed user-dirs entry")

// UserDirsFile returns the location of the XDG user-dirs file, honoring
// $XDG_CONFIG_HOME and falling back to ~/.config/user-dirs.dirs.
func UserDirsFile(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "user-dirs.dirs")
	}
	return filepath.Join(home, ".config", "user-dirs.dirs")
}

// LookupUserDir scans a user-dirs file for the first line starting with key
// and returns its value with quotes stripped and $HOME expanded.
// found is false when the file does not exist or has no such line.
func LookupUserDir(path, key, home string) (dir string, found bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, key) {
			continue
		}
		_, value, ok := strings.Cut(line, "=")
		if !ok {
			return "", false, fmt.Errorf("%w: %q has no value", ErrMalformedEntry, line)
		}
		value = strings.Trim(strings.TrimSpace(value), `"`)
		if value == "" {
			return "", false, fmt.Errorf("%w: %q has an empty value", ErrMalformedEntry, line)
		}
		value = strings.ReplaceAll(value, "$HOME", home)
		if !filepath.IsAbs(value) {
			value = filepath.Join(home, value)
		}
		return filepath.Clean(value), true, nil
	}
	if err := scanner.Err(); err != nil {
		return "", false, fmt.Errorf("reading %s: %w", path, err)
	}
	return "", false, nil
}
