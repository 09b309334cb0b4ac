package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/africa-pharmacy/pharmacy-shortcut/internal/branding"
	"github.com/africa-pharmacy/pharmacy-shortcut/internal/config"
	"github.com/africa-pharmacy/pharmacy-shortcut/internal/icon"
	"github.com/africa-pharmacy/pharmacy-shortcut/internal/platform"
	"github.com/africa-pharmacy/pharmacy-shortcut/internal/shortcut"
)

const rule = "==========================================="

type installOptions struct {
	Kind     platform.Kind
	Settings config.Settings
	Handlers shortcut.Handlers
	Painter  icon.Painter // nil disables icon generation
	Version  string
	In       io.Reader
	Out      io.Writer
}

// runInstall performs a full run: banner, icon, shortcut, pause. Failures
// are reported to the user with a manual fallback and never returned.
func runInstall(ctx context.Context, opts installOptions) {
	w := opts.Out
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "   %s - DESKTOP ICON CREATOR\n", strings.ToUpper(branding.DisplayName()))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Detected OS: %s\n\n", opts.Kind)

	appDir, err := resolveAppDir(opts.Settings.AppDir)
	if err != nil {
		reportFailure(w, opts.Kind, err)
		pause(opts)
		return
	}

	ensureIcon(w, appDir, opts.Painter)

	if err := createShortcut(ctx, w, appDir, opts); err != nil {
		reportFailure(w, opts.Kind, err)
	} else {
		fmt.Fprintln(w)
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w, "Desktop icon created successfully!")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "You can now start %s by\n", branding.DisplayName())
		fmt.Fprintln(w, "double-clicking the icon on your desktop.")
		fmt.Fprintln(w, rule)
	}
	pause(opts)
}

// resolveAppDir returns the configured application directory or the
// current working directory, as an absolute path.
func resolveAppDir(configured string) (string, error) {
	if configured == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		return cwd, nil
	}
	abs, err := filepath.Abs(configured)
	if err != nil {
		return "", fmt.Errorf("resolving application directory %s: %w", configured, err)
	}
	return abs, nil
}

func ensureIcon(w io.Writer, appDir string, p icon.Painter) {
	status, err := icon.Ensure(filepath.Join(appDir, branding.IconPNG()), p)
	switch {
	case err != nil:
		fmt.Fprintf(w, "ℹ️  Note: could not create %s: %v\n", branding.IconPNG(), err)
	case status == icon.StatusCreated:
		fmt.Fprintf(w, "✓ Icon created: %s\n", branding.IconPNG())
	case status == icon.StatusSkipped:
		fmt.Fprintf(w, "ℹ️  Note: icon generation is off; place %s in %s for a custom icon\n",
			branding.IconPNG(), appDir)
	}
}

func createShortcut(ctx context.Context, w io.Writer, appDir string, opts installOptions) error {
	desk, err := platform.ResolveUserDesktop(opts.Kind, opts.Settings.DesktopDir)
	if err != nil {
		return err
	}
	if desk.Source == platform.SourceParseFailed {
		fmt.Fprintf(w, "ℹ️  Note: ignoring XDG user dirs (%v); using %s\n", desk.Err, desk.Path)
	}

	inst, err := shortcut.New(opts.Kind, opts.Handlers)
	if err != nil {
		return err
	}

	artifact, err := inst.Install(ctx, shortcut.Target{
		AppDir:     appDir,
		DesktopDir: desk.Path,
		Stamp:      stampVersion(opts.Version),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "✓ %s created: %s\n", artifactLabel(artifact.Kind), artifact.Path)
	return nil
}

func reportFailure(w io.Writer, kind platform.Kind, err error) {
	fmt.Fprintf(w, "✗ Error creating desktop icon: %v\n", err)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "You can still run the application using:")
	fmt.Fprintf(w, "  - %s\n", shortcut.FallbackHint(kind, branding.WindowsLauncher(), branding.UnixLauncher()))
}

// pause waits for Enter so a double-clicked console window stays open.
// EOF on the input ends the wait.
func pause(opts installOptions) {
	if opts.Settings.NoPause || opts.In == nil {
		return
	}
	fmt.Fprint(opts.Out, "\nPress Enter to continue...")
	_, _ = bufio.NewReader(opts.In).ReadString('\n')
	fmt.Fprintln(opts.Out)
}

func artifactLabel(kind platform.Kind) string {
	switch kind {
	case platform.Windows:
		return "Desktop shortcut"
	case platform.MacOS:
		return "Desktop alias"
	default:
		return "Desktop launcher"
	}
}

// stampVersion returns version when it is a release version worth recording.
func stampVersion(version string) string {
	if version == "" || version == "dev" {
		return ""
	}
	return version
}
