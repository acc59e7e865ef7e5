package leave

import (
	"testing"
	"time"
)

func TestNumberOfDaysBetween(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, time.April, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", day(6), day(6), 1},
		{"three days", day(6), day(8), 3},
		{"full month", day(1), day(30), 30},
		{"across month boundary", time.Date(2026, time.March, 30, 0, 0, 0, 0, time.UTC), day(2), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumberOfDaysBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("NumberOfDaysBetween(%v, %v) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
