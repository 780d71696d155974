package advisor

import "math"

// scoreBand maps a half-open value range to a score: a value belongs to the
// first band whose upper bound exceeds it. The table's fallback score applies
// past the last bound.
type scoreBand struct {
	upperBound float64
	score      int
}

// Surf height bands (feet). Non-monotonic on purpose: scores climb to a peak
// in the [5,6) band, then fall off once the surf gets too big to be fun.
var surfHeightBands = []scoreBand{
	{1, 1},
	{2, 3},
	{3, 5},
	{4, 7},
	{5, 9},
	{6, 10},
	{8, 8},
}

const surfHeightFallback = 6 // 8 ft and up

// Surf period bands (seconds). Longer period, better-shaped waves.
var surfPeriodBands = []scoreBand{
	{5, 2},
	{7, 4},
	{9, 6},
	{11, 8},
}

const surfPeriodFallback = 10 // 11 s and up

// WMO weather-code bands: clear/partly cloudy, fog/drizzle, rain, worse.
var weatherCodeBands = []scoreBand{
	{4, 10},
	{50, 7},
	{60, 3},
}

const weatherCodeFallback = 0

// lookupBand returns the score of the first band whose bound exceeds v, or
// the fallback when v clears every bound.
func lookupBand(bands []scoreBand, fallback int, v float64) int {
	for _, b := range bands {
		if v < b.upperBound {
			return b.score
		}
	}
	return fallback
}

// firstPositive returns the first candidate greater than zero, or 0 when none
// is. Shared by the swell-vs-wave fallback chains so each field prefers the
// swell reading and degrades to the total-sea reading.
func firstPositive(candidates ...float64) float64 {
	for _, c := range candidates {
		if c > 0 {
			return c
		}
	}
	return 0
}

// weighted rounds a 0.4/0.3/0.3 blend of three sub-scores.
func weighted(a, b, c int) int {
	return int(math.Round(float64(a)*0.4 + float64(b)*0.3 + float64(c)*0.3))
}

// clampScore confines a final score to [lo,hi]. Zero stays reserved for the
// missing-window case, which never reaches this.
func clampScore(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// at reads a parallel-array value, defaulting to 0 when the provider sent a
// shorter (or absent) slice.
func at(vals []float64, i int) float64 {
	if i >= 0 && i < len(vals) {
		return vals[i]
	}
	return 0
}

// atOr is at with an explicit default.
func atOr(vals []float64, i int, def float64) float64 {
	if i >= 0 && i < len(vals) {
		return vals[i]
	}
	return def
}

// atCode reads a weather-code value, defaulting to 0 (clear).
func atCode(vals []int, i int) int {
	if i >= 0 && i < len(vals) {
		return vals[i]
	}
	return 0
}
