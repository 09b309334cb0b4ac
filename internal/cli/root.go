package cli

import (
	"github.com/africa-pharmacy/pharmacy-shortcut/internal/branding"
	"github.com/africa-pharmacy/pharmacy-shortcut/internal/config"
	"github.com/africa-pharmacy/pharmacy-shortcut/internal/icon"
	"github.com/africa-pharmacy/pharmacy-shortcut/internal/platform"
	"github.com/africa-pharmacy/pharmacy-shortcut/internal/shortcut"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: "Create a desktop shortcut for " + branding.DisplayName(),
	Long: `Creates a desktop shortcut for ` + branding.DisplayName() + `, run from the application
directory. On Windows a .lnk file is created through the Windows Script Host,
on macOS a Finder alias through osascript, and on Linux a .desktop entry.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.Current()
		var painter icon.Painter
		if settings.GenerateIcon {
			painter = icon.PillPainter{}
		}
		runner := shortcut.ExecRunner{}

		runInstall(cmd.Context(), installOptions{
			Kind:     platform.Current(),
			Settings: settings,
			Handlers: shortcut.DefaultHandlers(runner),
			Painter:  painter,
			Version:  buildVersion,
			In:       cmd.InOrStdin(),
			Out:      cmd.OutOrStdout(),
		})
		return nil
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
