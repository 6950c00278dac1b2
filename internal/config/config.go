// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. Encoding parameters (quality, effort) are fixed in the convert
// package and deliberately not configurable here.
package config

import (
	"errors"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// InputDir is the directory scanned for images. Defaults to ".".
	InputDir string

	// Behavior flags.
	DryRun       bool // Preview only; convert nothing.
	SkipExisting bool // Skip inputs whose .webp sibling already exists. Default: overwrite.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with defaults matching the zero-argument
// invocation: convert the current directory, overwrite existing outputs.
func DefaultConfig() Config {
	return Config{
		InputDir:     ".",
		DryRun:       false,
		SkipExisting: false,
		Verbose:      false,
		ColorMode:    ColorAuto,
		CheckOnly:    false,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields hold valid values and that an input
// directory is set when not in CheckOnly mode.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" {
		return errors.New("input directory must not be empty")
	}
	return nil
}
