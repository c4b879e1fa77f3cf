package probe

import (
	"math"
	"testing"
)

func TestParseFraction(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
		ok   bool
	}{
		{"ntsc rational", "30000/1001", 30000.0 / 1001.0, true},
		{"film rational", "24000/1001", 24000.0 / 1001.0, true},
		{"integer rational", "25/1", 25, true},
		{"plain integer", "25", 25, true},
		{"decimal", "23.976", 23.976, true},
		{"zero rational", "0/0", 0, false},
		{"zero denominator", "30/0", 0, false},
		{"zero numerator", "0/1", 0, true},
		{"empty", "", 0, false},
		{"garbage", "abc", 0, false},
		{"garbage rational", "a/b", 0, false},
		{"half garbage", "30/x", 0, false},
		{"whitespace", "  30000/1001  ", 30000.0 / 1001.0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseFraction(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseFraction(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseFraction(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
