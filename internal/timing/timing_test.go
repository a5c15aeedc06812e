package timing

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{name: "zero", in: 0, want: "00:00:00"},
		{name: "sub second", in: 900 * time.Millisecond, want: "00:00:00"},
		{name: "minutes", in: 2*time.Minute + 5*time.Second, want: "00:02:05"},
		{name: "hours", in: 26*time.Hour + 61*time.Second, want: "26:01:01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.in); got != tt.want {
				t.Fatalf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
