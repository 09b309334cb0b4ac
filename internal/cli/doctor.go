package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/africa-pharmacy/pharmacy-shortcut/internal/branding"
	"github.com/africa-pharmacy/pharmacy-shortcut/internal/config"
	"github.com/africa-pharmacy/pharmacy-shortcut/internal/desktopentry"
	"github.com/africa-pharmacy/pharmacy-shortcut/internal/platform"
	"github.com/africa-pharmacy/pharmacy-shortcut/internal/shortcut"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that a shortcut can be created here",
	Long: `Reports the detected platform, where the shortcut would go, whether the
launcher and icon exist in the application directory, whether the native
scripting tool is available, and whether the settings file is valid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runDoctor(doctorOptions{
			Kind:       platform.Current(),
			Settings:   config.Current(),
			ConfigFile: config.FilePath(),
			Version:    buildVersion,
			LookPath:   exec.LookPath,
			Out:        cmd.OutOrStdout(),
		})
		return nil
	},
}

type doctorOptions struct {
	Kind       platform.Kind
	Settings   config.Settings
	ConfigFile string
	Version    string
	LookPath   func(string) (string, error)
	Out        io.Writer
}

func runDoctor(opts doctorOptions) {
	w := opts.Out

	fmt.Fprintln(w, "Platform check:")
	fmt.Fprintf(w, "  [ OK ] %s\n", opts.Kind)
	if host := opts.Kind.ScriptHost(); host != "" {
		if path, err := opts.LookPath(host); err != nil {
			fmt.Fprintf(w, "  [MISS] %s not found\n", host)
		} else {
			fmt.Fprintf(w, "  [ OK ] %s found at %s\n", host, path)
		}
	}

	fmt.Fprintln(w, "Desktop check:")
	desk, deskErr := platform.ResolveUserDesktop(opts.Kind, opts.Settings.DesktopDir)
	if deskErr != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", deskErr)
	} else {
		checkDesktop(w, desk)
	}

	fmt.Fprintln(w, "Application check:")
	appDir, err := resolveAppDir(opts.Settings.AppDir)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
	} else {
		checkApplication(w, opts.Kind, appDir)
	}

	fmt.Fprintln(w, "Config check:")
	checkConfig(w, opts.ConfigFile)

	if opts.Kind == platform.Linux && deskErr == nil {
		fmt.Fprintln(w, "Existing shortcut check:")
		checkExistingEntry(w, filepath.Join(desk.Path, branding.LinuxEntryFile()), opts.Version)
	}
}

func checkDesktop(w io.Writer, desk platform.Desktop) {
	if desk.Source == platform.SourceParseFailed {
		fmt.Fprintf(w, "  [WARN] user dirs unreadable: %v\n", desk.Err)
	}
	fmt.Fprintf(w, "  [ OK ] %s (%s)\n", desk.Path, desk.Source)
	if info, err := os.Stat(desk.Path); err != nil || !info.IsDir() {
		fmt.Fprintf(w, "  [INFO] %s does not exist yet\n", desk.Path)
	}
}

func checkApplication(w io.Writer, kind platform.Kind, appDir string) {
	fmt.Fprintf(w, "  [INFO] application directory %s\n", appDir)

	inst, err := shortcut.New(kind, shortcut.DefaultHandlers(nil))
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return
	}
	launcher := inst.Launcher(shortcut.Target{AppDir: appDir})
	if _, err := os.Stat(launcher); err != nil {
		fmt.Fprintf(w, "  [MISS] launcher %s not found\n", launcher)
	} else {
		fmt.Fprintf(w, "  [ OK ] launcher %s\n", launcher)
	}

	iconName := branding.IconPNG()
	if kind == platform.Windows {
		iconName = branding.IconICO()
	}
	iconPath := filepath.Join(appDir, iconName)
	if _, err := os.Stat(iconPath); err != nil {
		fmt.Fprintf(w, "  [MISS] icon %s not found\n", iconPath)
	} else {
		fmt.Fprintf(w, "  [ OK ] icon %s\n", iconPath)
	}
}

func checkConfig(w io.Writer, path string) {
	result, err := config.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return
	}
	if result.Valid {
		fmt.Fprintf(w, "  [ OK ] %s\n", path)
		return
	}
	fmt.Fprintf(w, "  [FAIL] %s has %d issue(s)\n", path, len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(w, "         %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(w, "         %s\n", issue.Message)
		}
	}
}

func checkExistingEntry(w io.Writer, path, version string) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [INFO] no shortcut at %s\n", path)
		return
	}
	entry, err := desktopentry.ParseFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] %v\n", err)
		return
	}

	fmt.Fprintf(w, "  [ OK ] %s launches %s\n", path, entry.Get("Exec"))
	status, err := desktopentry.CompareStamp(entry.Get(desktopentry.StampKey), version)
	if err != nil {
		fmt.Fprintf(w, "  [INFO] cannot compare installer versions: %v\n", err)
		return
	}
	switch status {
	case desktopentry.StampMissing:
		fmt.Fprintln(w, "  [INFO] shortcut was not created by a released installer")
	case desktopentry.StampOlder:
		fmt.Fprintf(w, "  [WARN] shortcut was created by an older installer (%s); run %s again to refresh it\n",
			entry.Get(desktopentry.StampKey), branding.CLIName())
	case desktopentry.StampNewer:
		fmt.Fprintf(w, "  [WARN] shortcut was created by a newer installer (%s)\n", entry.Get(desktopentry.StampKey))
	default:
		fmt.Fprintln(w, "  [ OK ] shortcut matches this installer version")
	}
}
