package advisor

import "time"

// Morning window bounds, local hours inclusive.
const (
	morningStartHour = 6
	morningEndHour   = 9
)

// MorningIndex returns the first index whose timestamp falls on the target
// local calendar date with its local hour inside [6,9], or -1 when the series
// never reaches that window. Dates compare in each timestamp's own zone, so a
// late-evening UTC hour that is still "today" locally is never misclassified.
func MorningIndex(times []time.Time, target time.Time) int {
	ty, tm, td := target.Date()
	for i, ts := range times {
		y, m, d := ts.Date()
		if y != ty || m != tm || d != td {
			continue
		}
		if h := ts.Hour(); h >= morningStartHour && h <= morningEndHour {
			return i
		}
	}
	return -1
}

// sameLocalDate reports whether ts falls on the target calendar date,
// evaluated in ts's own zone.
func sameLocalDate(ts, target time.Time) bool {
	ty, tm, td := target.Date()
	y, m, d := ts.Date()
	return y == ty && m == tm && d == td
}
