package models

import "time"

// HourlySeries holds an hourly weather forecast as parallel arrays aligned by
// position: index i across every slice refers to Times[i]. Value slices may be
// shorter than Times when the provider omits a field; readers substitute
// defaults rather than fail.
type HourlySeries struct {
	Times         []time.Time
	Temperature   []float64 // Fahrenheit
	Humidity      []float64 // percent relative
	CloudCover    []float64 // percent
	WindSpeed     []float64 // mph
	WindDirection []float64 // degrees, meteorological "from"
	WeatherCode   []int     // WMO present-weather code
}

// Len returns the number of forecast hours.
func (s *HourlySeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Times)
}
