// Package branding provides compile-time identity values for the installer.
//
// Product and launcher names live in branding.yaml next to this file and are
// baked into the binary with //go:embed, so a rebuild is all it takes to
// point the installer at a differently named application.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName         string `yaml:"cli_name"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	LongDescription string `yaml:"long_description"`
	HomeDir         string `yaml:"home_dir"`
	EnvPrefix       string `yaml:"env_prefix"`
	LinuxEntryFile  string `yaml:"linux_entry_file"`
	WindowsLinkFile string `yaml:"windows_link_file"`
	WindowsLauncher string `yaml:"windows_launcher"`
	MacOSLauncher   string `yaml:"macos_launcher"`
	UnixLauncher    string `yaml:"unix_launcher"`
	IconPNG         string `yaml:"icon_png"`
	IconICO         string `yaml:"icon_ico"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:         "pharmacy-shortcut",
			DisplayName:     "Africa Pharmacy",
			Description:     "Pharmacy Management System",
			LongDescription: "Africa Pharmacy Management System",
			HomeDir:         ".africa-pharmacy",
			EnvPrefix:       "PHARMACY",
			LinuxEntryFile:  "africa-pharmacy.desktop",
			WindowsLinkFile: "Africa Pharmacy.lnk",
			WindowsLauncher: "AfricaPharmacy.bat",
			MacOSLauncher:   "AfricaPharmacy.command",
			UnixLauncher:    "start-pharmacy.sh",
			IconPNG:         "icon.png",
			IconICO:         "icon.ico",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "pharmacy-shortcut").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name, also used as the
// shortcut title (e.g., "Africa Pharmacy").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description used as the desktop
// entry comment.
func Description() string { load(); return defaults.Description }

// LongDescription returns the description stored in the Windows link file.
func LongDescription() string { load(); return defaults.LongDescription }

// HomeDir returns the dot-directory name under $HOME (e.g., ".africa-pharmacy").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "PHARMACY").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// LinuxEntryFile returns the desktop entry file name.
func LinuxEntryFile() string { load(); return defaults.LinuxEntryFile }

// WindowsLinkFile returns the .lnk file name placed on the desktop.
func WindowsLinkFile() string { load(); return defaults.WindowsLinkFile }

// WindowsLauncher returns the batch file the Windows shortcut targets.
func WindowsLauncher() string { load(); return defaults.WindowsLauncher }

// MacOSLauncher returns the .command file the Finder alias points at.
func MacOSLauncher() string { load(); return defaults.MacOSLauncher }

// UnixLauncher returns the shell launcher used on Linux and in fallback hints.
func UnixLauncher() string { load(); return defaults.UnixLauncher }

// IconPNG returns the PNG icon file name.
func IconPNG() string { load(); return defaults.IconPNG }

// IconICO returns the Windows icon file name.
func IconICO() string { load(); return defaults.IconICO }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("app_dir") → "PHARMACY_APP_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
