// Package icon creates the placeholder PNG icon that desktop shortcuts point
// at when the application did not ship one.
package icon
