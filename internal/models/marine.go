package models

import "time"

// MarineSeries holds an hourly marine forecast as parallel arrays aligned by
// position, same invariant as HourlySeries. Swell fields describe the dominant
// long-period energy; wave fields describe total sea state.
type MarineSeries struct {
	Times          []time.Time
	WaveHeight     []float64 // feet
	WaveDirection  []float64 // degrees
	WavePeriod     []float64 // seconds
	SwellHeight    []float64 // feet
	SwellDirection []float64 // degrees
	SwellPeriod    []float64 // seconds
}

// Len returns the number of forecast hours.
func (s *MarineSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Times)
}
