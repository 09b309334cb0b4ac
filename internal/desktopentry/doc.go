// Package desktopentry reads freedesktop .desktop files back and compares the
// installer version stamped into them with the running installer.
package desktopentry
