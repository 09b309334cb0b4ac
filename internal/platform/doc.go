// Package platform identifies the host operating system as one of a closed
// set of kinds and resolves the per-user desktop directory for it. On Linux
// the desktop directory comes from the XDG user-dirs file when it names one;
// every other case falls back to ~/Desktop and reports why.
package platform
