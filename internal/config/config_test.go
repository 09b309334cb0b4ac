package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PHARMACY_HOME", dir)
	t.Setenv("PHARMACY_APP_DIR", "")
	t.Setenv("PHARMACY_DESKTOP_DIR", "")
	t.Setenv("PHARMACY_NO_PAUSE", "")
	t.Setenv("PHARMACY_ICON_GENERATE", "")
	return dir
}

func TestDir_EnvOverride(t *testing.T) {
	dir := isolate(t)
	if got := Dir(); got != dir {
		t.Errorf("Dir() = %s, want %s", got, dir)
	}
	if got := FilePath(); got != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %s", got)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	Load()
	s := Current()
	if s.AppDir != "" || s.DesktopDir != "" || s.NoPause {
		t.Errorf("unexpected settings %+v", s)
	}
	if !s.GenerateIcon {
		t.Error("icon generation should default to true")
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := isolate(t)
	content := "app_dir: /opt/pharmacy\nicon:\n  generate: false\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PHARMACY_NO_PAUSE", "true")
	t.Setenv("PHARMACY_DESKTOP_DIR", "/data/desk")

	Load()
	s := Current()
	if s.AppDir != "/opt/pharmacy" {
		t.Errorf("AppDir = %q", s.AppDir)
	}
	if s.DesktopDir != "/data/desk" {
		t.Errorf("DesktopDir = %q", s.DesktopDir)
	}
	if !s.NoPause {
		t.Error("NoPause should come from the environment")
	}
	if s.GenerateIcon {
		t.Error("GenerateIcon should be false from the file")
	}
}

func TestSet_WritesFile(t *testing.T) {
	dir := isolate(t)
	Load()

	if err := Set(KeyDesktopDir, "/data/desk"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := Set(KeyNoPause, "true"); err != nil {
		t.Fatalf("Set bool failed: %v", err)
	}

	Load()
	if got := Get(KeyDesktopDir); got != "/data/desk" {
		t.Errorf("Get(desktop_dir) = %q after reload", got)
	}
	if !Current().NoPause {
		t.Error("no_pause not persisted")
	}

	result, err := ValidateFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile failed: %v", err)
	}
	if !result.Valid {
		t.Errorf("written config fails validation: %+v", result.Issues)
	}
}

func TestSet_Rejects(t *testing.T) {
	isolate(t)
	Load()

	if err := Set("mirror_url", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
	if err := Set(KeyGenerateIcon, "sometimes"); err == nil {
		t.Error("expected error for non-boolean value")
	}
}
