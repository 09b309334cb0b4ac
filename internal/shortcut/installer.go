package shortcut

import (
	"context"
	"fmt"

	"github.com/africa-pharmacy/pharmacy-shortcut/internal/platform"
)

// Target describes where a shortcut goes and what it launches.
type Target struct {
	AppDir     string // directory holding the launchers and icons
	DesktopDir string // directory the shortcut is created in
	Stamp      string // installer version, recorded where the format allows it
}

// Artifact is the file a Handler produced.
type Artifact struct {
	Kind platform.Kind
	Path string
}

// Handler creates the shortcut for one platform.
type Handler interface {
	// Create writes the shortcut described by t.
	Create(ctx context.Context, t Target) (*Artifact, error)
	// Launcher returns the program the shortcut starts.
	Launcher(t Target) string
}

// Handlers maps each platform kind to its Handler.
type Handlers map[platform.Kind]Handler

// DefaultHandlers returns the native Handler for every supported kind.
// Handlers that shell out use r.
func DefaultHandlers(r Runner) Handlers {
	return Handlers{
		platform.Windows: &WindowsHandler{Runner: r},
		platform.MacOS:   &MacOSHandler{Runner: r},
		platform.Linux:   &LinuxHandler{},
	}
}

// Installer creates the shortcut for a single, fixed platform.
type Installer struct {
	kind    platform.Kind
	handler Handler
}

// New selects the Handler for kind from handlers.
func New(kind platform.Kind, handlers Handlers) (*Installer, error) {
	h, ok := handlers[kind]
	if !ok || h == nil {
		return nil, fmt.Errorf("no shortcut handler for %s", kind)
	}
	return &Installer{kind: kind, handler: h}, nil
}

// Kind returns the platform the Installer was built for.
func (i *Installer) Kind() platform.Kind { return i.kind }

// Install creates the shortcut.
func (i *Installer) Install(ctx context.Context, t Target) (*Artifact, error) {
	if t.AppDir == "" {
		return nil, fmt.Errorf("application directory is not set")
	}
	if t.DesktopDir == "" {
		return nil, fmt.Errorf("desktop directory is not set")
	}
	a, err := i.handler.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("creating %s shortcut: %w", i.kind, err)
	}
	return a, nil
}

// Launcher returns the program the shortcut starts.
func (i *Installer) Launcher(t Target) string {
	return i.handler.Launcher(t)
}

// FallbackHint returns the command a user can run by hand when no shortcut
// could be created.
func FallbackHint(kind platform.Kind, windowsLauncher, unixLauncher string) string {
	if kind == platform.Windows {
		return windowsLauncher
	}
	return "./" + unixLauncher
}
