package advisor

import (
	"math"
	"time"

	"github.com/sandfly/dawnpatrol/internal/models"
)

// LoopDirection is the recommended direction to start the morning loop so the
// tailwind falls on the ride home.
type LoopDirection string

const (
	LoopNorthFirst LoopDirection = "north"
	LoopSouthFirst LoopDirection = "south"
	LoopEither     LoopDirection = "either"
)

// CycleResult is the cycling scorer's output.
type CycleResult struct {
	Score         int           `json:"score"`
	WindSpeed     float64       `json:"windSpeed"` // mph
	WindDirection float64       `json:"windDirection"`
	Temperature   float64       `json:"temp"` // Fahrenheit
	Direction     LoopDirection `json:"direction,omitempty"`
	DirectionText string        `json:"directionText"`
}

// ScoreCycle rates tomorrow-morning cycling from wind, present-weather code,
// and temperature. Total: always returns a result, never an error.
func ScoreCycle(weather *models.HourlySeries, target time.Time) CycleResult {
	if weather == nil {
		return CycleResult{DirectionText: "no forecast data"}
	}
	i := MorningIndex(weather.Times, target)
	if i < 0 {
		return CycleResult{DirectionText: "no forecast data"}
	}

	speed := at(weather.WindSpeed, i)
	windDir := at(weather.WindDirection, i)
	temp := at(weather.Temperature, i)
	code := atCode(weather.WeatherCode, i)

	windScore := cycleWindScore(speed)
	codeScore := lookupBand(weatherCodeBands, weatherCodeFallback, float64(code))
	tempScore := cycleTempScore(temp)

	direction, directionText := loopDirection(windDir)

	return CycleResult{
		Score:         clampScore(weighted(windScore, codeScore, tempScore), 1, 10),
		WindSpeed:     speed,
		WindDirection: windDir,
		Temperature:   temp,
		Direction:     direction,
		DirectionText: directionText,
	}
}

func cycleWindScore(speed float64) int {
	switch {
	case speed < 8:
		return 10
	case speed < 12:
		return 8
	case speed <= 15:
		return 5
	default:
		return 1
	}
}

func cycleTempScore(temp float64) int {
	switch {
	case temp >= 55 && temp <= 75:
		return 10
	case temp >= 45 && temp < 55, temp > 75 && temp <= 85:
		return 7
	default:
		return 3
	}
}

// loopDirection picks which way to start the loop. A northerly wind means
// ride north first into the headwind and come home with it; southerly the
// reverse; anything else is crosswind and the direction does not matter.
// Total and mutually exclusive over [0,360).
func loopDirection(degrees float64) (LoopDirection, string) {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}

	switch {
	case d >= 315 || d <= 45:
		return LoopNorthFirst, "head north first, tailwind home"
	case d >= 135 && d <= 225:
		return LoopSouthFirst, "head south first, tailwind home"
	default:
		return LoopEither, "crosswind, either direction works"
	}
}
