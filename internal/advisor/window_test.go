package advisor

import (
	"testing"
	"time"
)

func TestMorningIndex(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	target := time.Date(2026, 3, 15, 0, 0, 0, 0, loc)

	hourly := func(day, startHour, n int) []time.Time {
		times := make([]time.Time, n)
		for i := range times {
			times[i] = time.Date(2026, 3, day, startHour+i, 0, 0, 0, loc)
		}
		return times
	}

	tests := []struct {
		name  string
		times []time.Time
		want  int
	}{
		{
			name:  "full day series finds 6am",
			times: hourly(15, 0, 24),
			want:  6,
		},
		{
			name:  "series starting mid-window returns first in-window index",
			times: hourly(15, 8, 4),
			want:  0,
		},
		{
			name:  "series ending before target date",
			times: hourly(14, 0, 24),
			want:  -1,
		},
		{
			name:  "target date present but morning hours missing",
			times: hourly(15, 10, 6),
			want:  -1,
		},
		{
			name:  "hour 5 excluded, hour 9 included",
			times: []time.Time{hourly(15, 5, 1)[0], hourly(15, 9, 1)[0]},
			want:  1,
		},
		{
			name:  "empty series",
			times: nil,
			want:  -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MorningIndex(tt.times, target); got != tt.want {
				t.Errorf("MorningIndex() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMorningIndexUsesLocalCalendarDay(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	target := time.Date(2026, 3, 15, 0, 0, 0, 0, loc)

	// 11:30 UTC on March 15 is 06:30 local (EDT, UTC-4): in the window.
	inWindow := time.Date(2026, 3, 15, 11, 30, 0, 0, time.UTC).In(loc)
	// 03:00 UTC on March 16 is 23:00 local on March 15: wrong hour, and a
	// UTC-date comparison would also have misfiled it under the 16th.
	lateLocal := time.Date(2026, 3, 16, 3, 0, 0, 0, time.UTC).In(loc)

	if got := MorningIndex([]time.Time{lateLocal, inWindow}, target); got != 1 {
		t.Errorf("MorningIndex() = %d, want 1 (local calendar day, not UTC)", got)
	}
}
