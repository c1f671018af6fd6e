// Package version holds the build version, set with -ldflags "-X connector/version.Version=..."
package version

var Version = "dev"
