package models

import "time"

// TideType represents whether a tide event is high, low, or something else
// (e.g. an intermediate "Normal" reading some stations report).
type TideType string

const (
	TideHigh  TideType = "H"
	TideLow   TideType = "L"
	TideOther TideType = "O"
)

// TideEvent represents a single tide occurrence.
type TideEvent struct {
	Time   time.Time
	Type   TideType
	Height float64 // feet relative to MLLW (Mean Lower Low Water)
}

// TideData contains tide predictions for a station. Events are in the order
// the provider returned them, which NOAA keeps chronological.
type TideData struct {
	StationID   string
	StationName string
	Events      []TideEvent
	UpdatedAt   time.Time
}
