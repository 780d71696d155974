package advisor

import "math"

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// DegreesToCardinal maps a bearing to the nearest of 16 compass points.
// Periodic mod 360: 360 and 0 are both "N", and 359 rounds up to "N" rather
// than down to "NNW" (the NNW/N boundary sits at 348.75).
func DegreesToCardinal(degrees float64) string {
	i := int(math.Round(degrees/22.5)) % 16
	if i < 0 {
		i += 16
	}
	return compassPoints[i]
}
