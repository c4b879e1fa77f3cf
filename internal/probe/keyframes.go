package probe

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Keyframes runs the keyframe timestamp probe against path: ffprobe decodes
// headers for the first video stream only, skips non-key frames, and emits
// one best-effort presentation timestamp per line.
//
// Callers treat any returned error as a per-file degradation, never as a
// batch failure. Keyframe statistics are supplementary.
func Keyframes(ctx context.Context, path string) ([]float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-select_streams", "v:0",
		"-skip_frame", "nokey",
		"-show_entries", "frame=best_effort_timestamp_time",
		"-of", "default=nw=1:nk=1",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe keyframes %q: %w", path, err)
	}

	ts, err := ParseTimestamps(out)
	if err != nil {
		return nil, fmt.Errorf("ffprobe keyframes %q: %w", path, err)
	}
	return ts, nil
}

// ParseTimestamps parses one float seconds value per non-blank line. A
// non-blank line that does not parse fails the whole sequence; partial
// keyframe data would skew the interval statistics.
// Exported for testing without a real ffprobe binary.
func ParseTimestamps(out []byte) ([]float64, error) {
	var ts []float64
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		f, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("bad timestamp %q", line)
		}
		ts = append(ts, f)
	}
	return ts, nil
}
