// Package cli defines the Cobra command tree for pharmacy-shortcut. Running
// the root command with no arguments creates the desktop shortcut; the
// version, config, and doctor subcommands support it. Commands only handle
// I/O formatting and user interaction and delegate the work to internal
// packages.
package cli
