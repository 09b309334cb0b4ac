package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/africa-pharmacy/pharmacy-shortcut/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyAppDir       = "app_dir"
	KeyDesktopDir   = "desktop_dir"
	KeyNoPause      = "no_pause"
	KeyGenerateIcon = "icon.generate"
)

// Keys lists every setting `config set` accepts.
var Keys = []string{KeyAppDir, KeyDesktopDir, KeyNoPause, KeyGenerateIcon}

var boolKeys = []string{KeyNoPause, KeyGenerateIcon}

// Settings is a snapshot of the loaded configuration.
type Settings struct {
	AppDir       string
	DesktopDir   string
	NoPause      bool
	GenerateIcon bool
}

// Dir returns the config directory. PHARMACY_HOME overrides the default
// ~/.africa-pharmacy/.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// Nested keys map to env vars with underscores: icon.generate → PHARMACY_ICON_GENERATE.
func Load() {
	viper.Reset()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.SetDefault(KeyGenerateIcon, true)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the loaded settings.
func Current() Settings {
	return Settings{
		AppDir:       viper.GetString(KeyAppDir),
		DesktopDir:   viper.GetString(KeyDesktopDir),
		NoPause:      viper.GetBool(KeyNoPause),
		GenerateIcon: viper.GetBool(KeyGenerateIcon),
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
// Unknown keys and non-boolean values for boolean keys are rejected.
func Set(key, value string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown key %q (known keys: %s)", key, strings.Join(Keys, ", "))
	}

	var v any = value
	if slices.Contains(boolKeys, key) {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("key %q expects true or false, got %q", key, value)
		}
		v = b
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, v)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
