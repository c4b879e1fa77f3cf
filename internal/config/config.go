// Package config holds runtime configuration: defaults, environment
// overrides, CLI flag parsing, and validation. Precedence is
// defaults < environment < flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then mutated by [LoadEnv] and [ParseFlags] before being passed (by
// pointer) to packages that need it.
type Config struct {
	// Paths.
	Folder string // Target folder to scan (positional arg).
	OutDir string // Report output directory. Default: current directory.

	// Behavior flags.
	KeepGoing     bool // Continue past files whose primary probe fails.
	VerifyContent bool // Magic-byte sniff discovered files, warn on mismatch.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// envOverrides mirrors the Config fields that may be set through the
// environment. Kept as a separate struct so cleanenv tags stay out of
// Config and unset variables never clobber defaults.
type envOverrides struct {
	OutDir  string `env:"VIDEOCHECK_OUTDIR"`
	LogFile string `env:"VIDEOCHECK_LOG"`
	Color   string `env:"VIDEOCHECK_COLOR"`
}

// DefaultConfig returns a Config with all defaults. Used as the base
// before [LoadEnv] and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	return Config{
		OutDir:        ".",
		KeepGoing:     false,
		VerifyContent: false,
		Verbose:       false,
		ColorMode:     ColorAuto,
		CheckOnly:     false,
	}
}

// LoadEnv applies VIDEOCHECK_* environment overrides to cfg. Unset
// variables leave the current values untouched.
func LoadEnv(cfg *Config) error {
	var env envOverrides
	if err := cleanenv.ReadEnv(&env); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	if env.OutDir != "" {
		cfg.OutDir = env.OutDir
	}
	if env.LogFile != "" {
		cfg.LogFile = env.LogFile
	}
	if env.Color != "" {
		mode, err := ParseColorMode(env.Color)
		if err != nil {
			return fmt.Errorf("VIDEOCHECK_COLOR: %w", err)
		}
		cfg.ColorMode = mode
	}
	return nil
}

// ParseColorMode converts a user-supplied string into a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return "", fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an
// empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and, when not in CheckOnly mode, requires a
// target folder that exists and is a directory.
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
	if c.Folder == "" {
		return errors.New("need exactly one target folder")
	}
	fi, err := os.Stat(c.Folder)
	if err != nil {
		return fmt.Errorf("folder %q does not exist", c.Folder)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%q is not a directory", c.Folder)
	}
	if c.OutDir == "" {
		return errors.New("output directory must not be empty")
	}
	return nil
}

// FolderBase returns the basename of the target folder, used in report
// filenames. A relative "." resolves to the current directory's name.
func (c *Config) FolderBase() string {
	abs, err := filepath.Abs(c.Folder)
	if err != nil {
		return filepath.Base(c.Folder)
	}
	return filepath.Base(abs)
}
