package platform

import "runtime"

// Kind is the closed set of operating systems the installer knows how to
// create shortcuts for.
type Kind int

const (
	Linux Kind = iota
	Windows
	MacOS
)

// Detect maps a GOOS value to a Kind. Anything that is neither windows nor
// darwin is treated as Linux, which covers the BSDs and other freedesktop
// hosts that understand .desktop entries.
func Detect(goos string) Kind {
	switch goos {
	case "windows":
		return Windows
	case "darwin":
		return MacOS
	default:
		return Linux
	}
}

// Current returns the Kind of the running host.
func Current() Kind {
	return Detect(runtime.GOOS)
}

// String returns the OS name shown to the user.
func (k Kind) String() string {
	switch k {
	case Windows:
		return "Windows"
	case MacOS:
		return "macOS"
	default:
		return "Linux"
	}
}

// ScriptHost returns the external program the Kind relies on to create its
// shortcut, or "" when the shortcut is written directly.
func (k Kind) ScriptHost() string {
	switch k {
	case Windows:
		return "cscript"
	case MacOS:
		return "osascript"
	default:
		return ""
	}
}
