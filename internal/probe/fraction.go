package probe

import (
	"math"
	"strconv"
	"strings"
)

// ParseFraction parses an ffprobe rational string ("30000/1001"), a plain
// integer ("25"), or a decimal ("23.976") into a float64. It returns
// ok=false for empty input, a zero denominator, or any malformed form;
// it never panics or returns an error.
func ParseFraction(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if num, den, found := strings.Cut(s, "/"); found {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0, false
		}
		return finite(n / d)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return finite(f)
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
