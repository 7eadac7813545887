// Package version defines the supported config schema version.
package version

// Version is the current supported config schema version.
const Version = "v1"
