package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/africa-pharmacy/pharmacy-shortcut/internal/config"
	"github.com/africa-pharmacy/pharmacy-shortcut/internal/icon"
	"github.com/africa-pharmacy/pharmacy-shortcut/internal/platform"
	"github.com/africa-pharmacy/pharmacy-shortcut/internal/shortcut"
)

// sandbox points HOME and the working directory at fresh temp dirs.
func sandbox(t *testing.T) (home, appDir string) {
	t.Helper()
	home = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("PHARMACY_HOME", filepath.Join(home, ".africa-pharmacy"))

	chdir(t, t.TempDir())
	appDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	return home, appDir
}

// chdir is the pre-Go 1.24 equivalent of t.Chdir.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

type failingHandler struct{ err error }

func (f failingHandler) Create(context.Context, shortcut.Target) (*shortcut.Artifact, error) {
	return nil, f.err
}

func (f failingHandler) Launcher(t shortcut.Target) string { return t.AppDir }

func TestRunInstall_LinuxEndToEnd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("desktop entries are not executable on Windows")
	}
	home, appDir := sandbox(t)

	var out bytes.Buffer
	runInstall(context.Background(), installOptions{
		Kind:     platform.Linux,
		Settings: config.Settings{GenerateIcon: true, NoPause: true},
		Handlers: shortcut.DefaultHandlers(nil),
		Painter:  icon.PillPainter{},
		Out:      &out,
	})

	entryPath := filepath.Join(home, "Desktop", "africa-pharmacy.desktop")
	info, err := os.Stat(entryPath)
	if err != nil {
		t.Fatalf("desktop entry not created: %v\noutput:\n%s", err, out.String())
	}
	if info.Mode().Perm()&0111 == 0 {
		t.Errorf("desktop entry not executable: %o", info.Mode().Perm())
	}

	data, _ := os.ReadFile(entryPath)
	for _, want := range []string{
		"Exec=" + appDir + "/start-pharmacy.sh\n",
		"Icon=" + appDir + "/icon.png\n",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("entry missing %q:\n%s", want, data)
		}
	}

	if _, err := os.Stat(filepath.Join(appDir, "icon.png")); err != nil {
		t.Errorf("icon not generated: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Detected OS: Linux",
		"✓ Icon created: icon.png",
		"✓ Desktop launcher created: " + entryPath,
		"Desktop icon created successfully!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Press Enter") {
		t.Error("paused despite no_pause")
	}
}

func TestRunInstall_ExistingIconUntouched(t *testing.T) {
	_, appDir := sandbox(t)
	iconPath := filepath.Join(appDir, "icon.png")
	if err := os.WriteFile(iconPath, []byte("custom"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	runInstall(context.Background(), installOptions{
		Kind:     platform.Linux,
		Settings: config.Settings{NoPause: true},
		Handlers: shortcut.DefaultHandlers(nil),
		Painter:  icon.PillPainter{},
		Out:      &out,
	})

	if data, _ := os.ReadFile(iconPath); string(data) != "custom" {
		t.Errorf("icon overwritten: %q", data)
	}
	if strings.Contains(out.String(), "Icon created") || strings.Contains(out.String(), "Note:") {
		t.Errorf("unexpected icon message:\n%s", out.String())
	}
}

func TestRunInstall_IconGenerationOff(t *testing.T) {
	_, appDir := sandbox(t)

	var out bytes.Buffer
	runInstall(context.Background(), installOptions{
		Kind:     platform.Linux,
		Settings: config.Settings{NoPause: true},
		Handlers: shortcut.DefaultHandlers(nil),
		Out:      &out,
	})

	if _, err := os.Stat(filepath.Join(appDir, "icon.png")); !os.IsNotExist(err) {
		t.Error("icon written with generation off")
	}
	if !strings.Contains(out.String(), "Note: icon generation is off") {
		t.Errorf("missing informational note:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Desktop icon created successfully!") {
		t.Errorf("shortcut step should still succeed:\n%s", out.String())
	}
}

func TestRunInstall_FailurePrintsFallback(t *testing.T) {
	tests := []struct {
		kind     platform.Kind
		fallback string
	}{
		{platform.Windows, "  - AfricaPharmacy.bat"},
		{platform.MacOS, "  - ./start-pharmacy.sh"},
		{platform.Linux, "  - ./start-pharmacy.sh"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			sandbox(t)
			boom := errors.New("shell link refused")

			var out bytes.Buffer
			runInstall(context.Background(), installOptions{
				Kind:     tt.kind,
				Settings: config.Settings{},
				Handlers: shortcut.Handlers{tt.kind: failingHandler{err: boom}},
				In:       strings.NewReader("\n"),
				Out:      &out,
			})

			got := out.String()
			for _, want := range []string{
				"✗ Error creating desktop icon:",
				"shell link refused",
				"You can still run the application using:",
				tt.fallback,
				"Press Enter to continue...",
			} {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			if strings.Contains(got, "created successfully") {
				t.Errorf("success message printed after failure:\n%s", got)
			}
		})
	}
}

func TestRunInstall_PauseEndsOnEOF(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("desktop entries are not executable on Windows")
	}
	for name, input := range map[string]string{"empty": "", "unterminated": "no newline"} {
		t.Run(name, func(t *testing.T) {
			sandbox(t)

			var out bytes.Buffer
			done := make(chan struct{})
			go func() {
				defer close(done)
				runInstall(context.Background(), installOptions{
					Kind:     platform.Linux,
					Settings: config.Settings{},
					Handlers: shortcut.DefaultHandlers(nil),
					In:       strings.NewReader(input),
					Out:      &out,
				})
			}()

			select {
			case <-done:
			case <-time.After(5 * time.Second):
				t.Fatal("run did not return after stdin reached EOF")
			}
			if got := out.String(); !strings.Contains(got, "Press Enter to continue...") {
				t.Errorf("output missing pause prompt:\n%s", got)
			}
		})
	}
}

func TestRunInstall_ParseFailureFallsBack(t *testing.T) {
	home, _ := sandbox(t)
	cfgDir := filepath.Join(home, ".config")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "user-dirs.dirs"), []byte("XDG_DESKTOP_DIR\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	runInstall(context.Background(), installOptions{
		Kind:     platform.Linux,
		Settings: config.Settings{NoPause: true},
		Handlers: shortcut.DefaultHandlers(nil),
		Out:      &out,
	})

	if !strings.Contains(out.String(), "ignoring XDG user dirs") {
		t.Errorf("missing fallback note:\n%s", out.String())
	}
	if _, err := os.Stat(filepath.Join(home, "Desktop", "africa-pharmacy.desktop")); err != nil {
		t.Errorf("entry not written to default desktop: %v", err)
	}
}

func TestRunInstall_UserDirsOverride(t *testing.T) {
	home, _ := sandbox(t)
	cfgDir := filepath.Join(home, ".config")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatal(err)
	}
	content := `XDG_DESKTOP_DIR="$HOME/Bureau"` + "\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "user-dirs.dirs"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	runInstall(context.Background(), installOptions{
		Kind:     platform.Linux,
		Settings: config.Settings{NoPause: true},
		Handlers: shortcut.DefaultHandlers(nil),
		Out:      &out,
	})

	if _, err := os.Stat(filepath.Join(home, "Bureau", "africa-pharmacy.desktop")); err != nil {
		t.Errorf("entry not written to override desktop: %v\n%s", err, out.String())
	}
}

func TestStampVersion(t *testing.T) {
	if stampVersion("dev") != "" || stampVersion("") != "" {
		t.Error("development builds must not be stamped")
	}
	if stampVersion("1.2.3") != "1.2.3" {
		t.Error("release version not stamped")
	}
}
