package advisor

import (
	"fmt"
	"time"

	"github.com/sandfly/dawnpatrol/internal/models"
)

// SurfResult is the surf scorer's output: the final 1-10 score (0 reserved
// for a missing morning window), the three sub-scores, and the readings that
// produced them.
type SurfResult struct {
	Score       int     `json:"score"`
	HeightScore int     `json:"heightScore"`
	PeriodScore int     `json:"periodScore"`
	WindScore   int     `json:"windScore"`
	Height      float64 `json:"height"` // feet
	Period      float64 `json:"period"` // seconds
	Direction   float64 `json:"direction"`
	Details     string  `json:"details"`
}

// Offshore wind sector at this spot: blowing from land, grooming wave faces.
const (
	offshoreMinDeg = 250
	offshoreMaxDeg = 320
)

const lightWindMph = 8

// ScoreSurf rates tomorrow-morning surf from the marine series, using the
// weather series (when available) only for wind. Swell readings are preferred
// field by field over total-sea readings. Total: always returns a result,
// never an error.
func ScoreSurf(marine *models.MarineSeries, weather *models.HourlySeries, target time.Time) SurfResult {
	if marine == nil {
		return SurfResult{Details: "no forecast data"}
	}
	i := MorningIndex(marine.Times, target)
	if i < 0 {
		return SurfResult{Details: "no forecast data"}
	}

	height := firstPositive(at(marine.SwellHeight, i), at(marine.WaveHeight, i))
	period := firstPositive(at(marine.SwellPeriod, i), at(marine.WavePeriod, i))
	direction := firstPositive(at(marine.SwellDirection, i), at(marine.WaveDirection, i))

	heightScore := lookupBand(surfHeightBands, surfHeightFallback, height)
	periodScore := lookupBand(surfPeriodBands, surfPeriodFallback, period)
	windScore := surfWindScore(weather, target)

	return SurfResult{
		Score:       clampScore(weighted(heightScore, periodScore, windScore), 1, 10),
		HeightScore: heightScore,
		PeriodScore: periodScore,
		WindScore:   windScore,
		Height:      height,
		Period:      period,
		Direction:   direction,
		Details:     surfDetails(height, period, direction),
	}
}

// surfWindScore classifies the morning wind. The weather series resolves its
// own morning index; its hourly grid may not line up with the marine one.
// Defaults to a neutral 5 when no wind data covers the window.
func surfWindScore(weather *models.HourlySeries, target time.Time) int {
	if weather == nil {
		return 5
	}
	i := MorningIndex(weather.Times, target)
	if i < 0 {
		return 5
	}

	speed := at(weather.WindSpeed, i)
	direction := at(weather.WindDirection, i)

	offshore := direction >= offshoreMinDeg && direction <= offshoreMaxDeg
	light := speed < lightWindMph

	switch {
	case offshore && light:
		return 10
	case offshore:
		return 8
	case light:
		return 7
	case speed < 15:
		return 4
	default:
		return 2
	}
}

func surfDetails(height, period, direction float64) string {
	if period <= 0 {
		return fmt.Sprintf("%.1fft %s", height, DegreesToCardinal(direction))
	}
	return fmt.Sprintf("%.1fft @ %.0fs %s", height, period, DegreesToCardinal(direction))
}
