package advisor

import (
	"math"
	"time"

	"github.com/sandfly/dawnpatrol/internal/models"
)

// PhotoResult is the sunrise-photography scorer's output. Humidity is
// informational only and never scored.
type PhotoResult struct {
	Score      int     `json:"score"`
	CloudCover float64 `json:"cloudCover"` // percent
	Humidity   float64 `json:"humidity"`   // percent
	Verdict    string  `json:"verdict"`
}

// ScorePhoto rates tomorrow's sunrise for photography from cloud cover.
// Moderate cloud lights up; clear skies and overcast both disappoint. The
// [20,60] band scores 8 + round((40-|c-40|)/20): 10 at exactly 40% cover,
// 9 at the band edges. Bounded by construction, no clamp needed.
func ScorePhoto(weather *models.HourlySeries, target time.Time) PhotoResult {
	if weather == nil {
		return PhotoResult{Humidity: 50, Verdict: "no data available"}
	}
	i := MorningIndex(weather.Times, target)
	if i < 0 {
		return PhotoResult{Humidity: 50, Verdict: "no data available"}
	}

	cloud := at(weather.CloudCover, i)
	humidity := atOr(weather.Humidity, i, 50)

	var score int
	var verdict string
	switch {
	case cloud >= 20 && cloud <= 60:
		score = 8 + int(math.Round((40-math.Abs(cloud-40))/20))
		verdict = "good cloud cover"
	case cloud >= 10 && cloud < 20:
		score = 6
		verdict = "light clouds"
	case cloud > 60 && cloud <= 80:
		score = 5
		verdict = "heavy clouds"
	case cloud < 10:
		score = 4
		verdict = "clear sky, no color"
	default:
		score = 2
		verdict = "overcast"
	}

	return PhotoResult{
		Score:      score,
		CloudCover: cloud,
		Humidity:   humidity,
		Verdict:    verdict,
	}
}
