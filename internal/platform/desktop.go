package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// Source records how a desktop directory was chosen.
type Source int

const (
	// SourceDefault is the fixed ~/Desktop used on Windows and macOS.
	SourceDefault Source = iota
	// SourceOverride means the user-dirs file named the directory.
	SourceOverride
	// SourceAbsent means the user-dirs file or its desktop line was missing.
	SourceAbsent
	// SourceParseFailed means the user-dirs file could not be read or parsed.
	SourceParseFailed
	// SourceConfigured means the installer's own configuration named the directory.
	SourceConfigured
)

func (s Source) String() string {
	switch s {
	case SourceOverride:
		return "user-dirs override"
	case SourceAbsent:
		return "default (no user-dirs override)"
	case SourceParseFailed:
		return "default (user-dirs unreadable)"
	case SourceConfigured:
		return "configured"
	default:
		return "default"
	}
}

// Desktop is the outcome of desktop directory resolution. Err is only set
// when Source is SourceParseFailed; Path is always usable.
type Desktop struct {
	Path   string
	Source Source
	Err    error
}

// DefaultDesktop returns home/Desktop.
func DefaultDesktop(home string) string {
	return filepath.Join(home, "Desktop")
}

// ResolveDesktop returns the desktop directory for kind. Only Linux consults
// userDirsFile; a missing entry or a parse failure yields the default path
// with the reason recorded in Source.
func ResolveDesktop(kind Kind, home, userDirsFile string) Desktop {
	def := DefaultDesktop(home)
	if kind != Linux {
		return Desktop{Path: def, Source: SourceDefault}
	}

	dir, found, err := LookupUserDir(userDirsFile, DesktopDirKey, home)
	switch {
	case err != nil:
		return Desktop{Path: def, Source: SourceParseFailed, Err: err}
	case !found:
		return Desktop{Path: def, Source: SourceAbsent}
	default:
		return Desktop{Path: dir, Source: SourceOverride}
	}
}

// ResolveUserDesktop resolves the desktop directory for the current user.
// A non-empty configured path wins over anything the OS reports.
func ResolveUserDesktop(kind Kind, configured string) (Desktop, error) {
	if configured != "" {
		return Desktop{Path: configured, Source: SourceConfigured}, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Desktop{}, fmt.Errorf("resolving home directory: %w", err)
	}
	return ResolveDesktop(kind, home, UserDirsFile(home)), nil
}
