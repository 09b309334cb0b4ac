package shortcut

import (
	"context"
	"path/filepath"

	"github.com/africa-pharmacy/pharmacy-shortcut/internal/branding"
	"github.com/africa-pharmacy/pharmacy-shortcut/internal/platform"
)

type macAlias struct {
	TargetPath string
	DesktopDir string
	Name       string
}

// MacOSHandler creates a Finder alias through osascript.
type MacOSHandler struct {
	Runner Runner
}

// Launcher returns the .command file the alias points at.
func (h *MacOSHandler) Launcher(t Target) string {
	return filepath.Join(t.AppDir, branding.MacOSLauncher())
}

// Create asks Finder to make the alias in t.DesktopDir and rename it.
func (h *MacOSHandler) Create(ctx context.Context, t Target) (*Artifact, error) {
	script, err := render("macos.applescript.tmpl", macAlias{
		TargetPath: h.Launcher(t),
		DesktopDir: t.DesktopDir,
		Name:       branding.DisplayName(),
	})
	if err != nil {
		return nil, err
	}
	if _, err := h.Runner.Run(ctx, "osascript", "-e", string(script)); err != nil {
		return nil, err
	}
	return &Artifact{
		Kind: platform.MacOS,
		Path: filepath.Join(t.DesktopDir, branding.DisplayName()),
	}, nil
}
