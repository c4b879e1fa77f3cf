// Package check provides system diagnostics (--check mode) and pre-run
// dependency validation for the ffprobe binary.
package check

import (
	"errors"
	"os/exec"
	"strings"
)

// ErrFfprobeNotFound is returned by CheckDeps when ffprobe is missing.
var ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive --check flow: it reports the availability
// and version of ffprobe (required) and ffmpeg (informational, shipped
// alongside ffprobe). This is informational only; it does not stop on
// failure.
func RunCheck(log Logger) {
	log.Info("=== System Check ===")
	checkTool(log, "ffprobe", true)
	checkTool(log, "ffmpeg", false)
}

// checkTool verifies a binary is on PATH and logs its version line.
func checkTool(log Logger, name string, required bool) {
	if _, err := exec.LookPath(name); err != nil {
		if required {
			log.Error("%s not found", name)
		} else {
			log.Warn("%s not found (not required)", name)
		}
		return
	}
	cmd := exec.Command(name, "-version")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("%s found but -version failed: %v", name, err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("%s: %s", name, firstLine)
}

// CheckDeps is the pre-run validation: ffprobe must be on PATH before any
// file is scanned. Returns a sentinel error on failure.
func CheckDeps() error {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	return nil
}
