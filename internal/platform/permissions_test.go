package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestChmod(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "africa-pharmacy.desktop")
	if err := os.WriteFile(path, []byte("[Desktop Entry]\n"), FilePermNormal); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(path, FilePermExecutable); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0755 {
			t.Errorf("permissions = %o, want %o", perm, 0755)
		}
	}
}

func TestChmodMissingFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Chmod is a no-op on Windows")
	}
	if err := Chmod(filepath.Join(t.TempDir(), "missing"), FilePermExecutable); err == nil {
		t.Error("expected error for missing file")
	}
}
