// Package config manages user-level settings stored at
// ~/.africa-pharmacy/config.yaml and PHARMACY_* environment variables. It
// loads, reads, and writes keys such as the application and desktop
// directory overrides, and validates the file against an embedded JSON
// schema.
package config
