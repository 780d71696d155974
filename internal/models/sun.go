package models

import "time"

// SunTimes holds sunrise and sunset for a single date, in local time.
type SunTimes struct {
	Sunrise time.Time
	Sunset  time.Time
}
