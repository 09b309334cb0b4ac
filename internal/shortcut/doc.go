// Package shortcut creates the desktop shortcut for the application. One
// Handler exists per platform.Kind; an Installer picks the Handler once when
// it is built and every Install call goes to that Handler alone.
//
// Windows shortcuts are .lnk files produced by a generated VBScript run under
// cscript. macOS shortcuts are Finder aliases made through osascript. Linux
// shortcuts are freedesktop .desktop entries written directly.
package shortcut
