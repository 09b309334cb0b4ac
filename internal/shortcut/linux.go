package shortcut

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/africa-pharmacy/pharmacy-shortcut/internal/branding"
	"github.com/africa-pharmacy/pharmacy-shortcut/internal/desktopentry"
	"github.com/africa-pharmacy/pharmacy-shortcut/internal/platform"
)

type linuxEntry struct {
	Name       string
	Comment    string
	Exec       string
	Icon       string
	WorkingDir string
	StampKey   string
	Stamp      string
}

// LinuxHandler writes a freedesktop .desktop entry.
type LinuxHandler struct{}

// Launcher returns the shell script the entry executes.
func (h *LinuxHandler) Launcher(t Target) string {
	return filepath.Join(t.AppDir, branding.UnixLauncher())
}

// Create writes the entry into the desktop directory and marks it executable
// so file managers will launch it.
func (h *LinuxHandler) Create(_ context.Context, t Target) (*Artifact, error) {
	content, err := render("linux.desktop.tmpl", linuxEntry{
		Name:       branding.DisplayName(),
		Comment:    branding.Description(),
		Exec:       h.Launcher(t),
		Icon:       filepath.Join(t.AppDir, branding.IconPNG()),
		WorkingDir: t.AppDir,
		StampKey:   desktopentry.StampKey,
		Stamp:      t.Stamp,
	})
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(t.DesktopDir, 0755); err != nil {
		return nil, fmt.Errorf("creating desktop directory %s: %w", t.DesktopDir, err)
	}

	path := filepath.Join(t.DesktopDir, branding.LinuxEntryFile())
	if err := os.WriteFile(path, content, platform.FilePermNormal); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := platform.Chmod(path, platform.FilePermExecutable); err != nil {
		return nil, fmt.Errorf("marking %s executable: %w", path, err)
	}
	return &Artifact{Kind: platform.Linux, Path: path}, nil
}
