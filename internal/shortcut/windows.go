package shortcut

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/africa-pharmacy/pharmacy-shortcut/internal/branding"
	"github.com/africa-pharmacy/pharmacy-shortcut/internal/platform"
	"golang.org/x/text/encoding/unicode"
)

type windowsScript struct {
	LinkPath    string
	TargetPath  string
	WorkingDir  string
	Description string
	IconPath    string
}

// WindowsHandler creates a .lnk file by running a generated VBScript under
// the Windows Script Host.
type WindowsHandler struct {
	Runner Runner
	// ScriptDir is where the transient script is written; empty means the
	// system temp directory.
	ScriptDir string
}

// Launcher returns the batch file the link targets.
func (h *WindowsHandler) Launcher(t Target) string {
	return winJoin(t.AppDir, branding.WindowsLauncher())
}

// Create writes the script, runs cscript on it, and removes it again.
func (h *WindowsHandler) Create(ctx context.Context, t Target) (*Artifact, error) {
	link := winJoin(t.DesktopDir, branding.WindowsLinkFile())
	script, err := render("windows.vbs.tmpl", windowsScript{
		LinkPath:    link,
		TargetPath:  h.Launcher(t),
		WorkingDir:  t.AppDir,
		Description: branding.LongDescription(),
		IconPath:    winJoin(t.AppDir, branding.IconICO()),
	})
	if err != nil {
		return nil, err
	}
	encoded, err := encodeScript(script)
	if err != nil {
		return nil, err
	}

	f, err := os.CreateTemp(h.ScriptDir, "create_shortcut_*.vbs")
	if err != nil {
		return nil, fmt.Errorf("creating shortcut script: %w", err)
	}
	scriptPath := f.Name()
	defer os.Remove(scriptPath)

	if _, err := f.Write(encoded); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing shortcut script: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("writing shortcut script: %w", err)
	}

	if _, err := h.Runner.Run(ctx, "cscript", "//nologo", scriptPath); err != nil {
		return nil, err
	}
	return &Artifact{Kind: platform.Windows, Path: link}, nil
}

// encodeScript converts a rendered script to UTF-16LE with a byte order mark.
// Without the BOM the script host reads the file in the ANSI code page and
// mangles non-ASCII paths.
func encodeScript(script []byte) ([]byte, error) {
	out, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes(script)
	if err != nil {
		return nil, fmt.Errorf("encoding shortcut script: %w", err)
	}
	return out, nil
}

// winJoin joins with a backslash regardless of the host separator so the
// generated script is identical wherever it is rendered.
func winJoin(dir, name string) string {
	return strings.TrimRight(dir, `\/`) + `\` + name
}
