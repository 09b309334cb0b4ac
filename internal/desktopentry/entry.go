package desktopentry

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// MainGroup is the group every desktop entry file must contain.
const MainGroup = "Desktop Entry"

// StampKey records which installer version wrote the entry. Keys prefixed
// with X- are reserved for vendor extensions.
const StampKey = "X-Pharmacy-Shortcut-Version"

// Entry holds the key-value pairs of the [Desktop Entry] group.
type Entry struct {
	Keys map[string]string
}

// Get returns the value for key, or "" when absent.
func (e *Entry) Get(key string) string {
	return e.Keys[key]
}

// ParseFile reads the [Desktop Entry] group of a desktop file.
// Blank lines and # comments are skipped; other groups are ignored.
func ParseFile(path string) (*Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening desktop entry %s: %w", path, err)
	}
	defer f.Close()

	entry := &Entry{Keys: make(map[string]string)}
	var group string
	sawMain := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			group = line[1 : len(line)-1]
			if group == MainGroup {
				sawMain = true
			}
			continue
		}
		if group != MainGroup {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("desktop entry %s: invalid line %q", path, line)
		}
		entry.Keys[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading desktop entry %s: %w", path, err)
	}
	if !sawMain {
		return nil, fmt.Errorf("desktop entry %s: missing [%s] group", path, MainGroup)
	}
	return entry, nil
}
