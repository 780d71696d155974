package advisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sandfly/dawnpatrol/internal/models"
)

type fakeSources struct {
	weather    *models.HourlySeries
	weatherErr error
	marine     *models.MarineSeries
	marineErr  error
	sun        *models.SunTimes
	sunErr     error
	tides      *models.TideData
	tidesErr   error
	water      float64
	waterErr   error
}

func (f *fakeSources) HourlyForecast(context.Context) (*models.HourlySeries, error) {
	return f.weather, f.weatherErr
}
func (f *fakeSources) MarineForecast(context.Context) (*models.MarineSeries, error) {
	return f.marine, f.marineErr
}
func (f *fakeSources) SunTimes(context.Context, time.Time) (*models.SunTimes, error) {
	return f.sun, f.sunErr
}
func (f *fakeSources) TidePredictions(context.Context, time.Time) (*models.TideData, error) {
	return f.tides, f.tidesErr
}
func (f *fakeSources) WaterTemperature(context.Context) (float64, error) {
	return f.water, f.waterErr
}

func newTestRunner(f *fakeSources) *Runner {
	// Frozen at 6pm on March 14: tomorrow is the 15th.
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 14, 18, 0, 0, 0, testLoc))
	return NewRunner(f, f, f, f, f, clock, testLoc, "Wrightsville Beach", nil)
}

func goodSources() *fakeSources {
	sunrise := time.Date(2026, 3, 15, 7, 12, 0, 0, testLoc)
	return &fakeSources{
		weather: rideAt(6, 280, 62, 1),
		marine:  marineAt(0, 0, 0, 3.2, 9, 280),
		sun:     &models.SunTimes{Sunrise: sunrise, Sunset: sunrise.Add(12 * time.Hour)},
		tides: &models.TideData{
			StationID: "8658163",
			Events: []models.TideEvent{
				tideEvent(15, 5, 45, models.TideHigh, 4.2),
				tideEvent(15, 11, 50, models.TideLow, 0.3),
			},
		},
		water: 68,
	}
}

func TestRunnerTargetDate(t *testing.T) {
	r := newTestRunner(goodSources())
	got := r.TargetDate()
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, testLoc)
	if !got.Equal(want) {
		t.Errorf("TargetDate() = %v, want %v", got, want)
	}
}

func TestRunnerRun(t *testing.T) {
	r := newTestRunner(goodSources())

	result, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Light offshore on a 3.2 ft swell: h=7, p=8, w=10 -> 8.
	if result.Surf.Score != 8 {
		t.Errorf("Surf.Score = %d, want 8", result.Surf.Score)
	}
	if result.Cycle.Score != 10 {
		t.Errorf("Cycle.Score = %d, want 10", result.Cycle.Score)
	}
	if result.Recommendation.Activity != ActivityCycle {
		t.Errorf("Recommendation.Activity = %q, want %q", result.Recommendation.Activity, ActivityCycle)
	}

	if got := result.SunriseText(); got != "7:12 AM" {
		t.Errorf("SunriseText() = %q, want %q", got, "7:12 AM")
	}
	if got := result.TideText(TideShort); got != "H 5:45AM, L 11:50AM" {
		t.Errorf("TideText() = %q", got)
	}
	if got := result.WaterTempText(); got != "68°F" {
		t.Errorf("WaterTempText() = %q, want %q", got, "68°F")
	}

	for _, src := range result.Sources {
		if !src.OK {
			t.Errorf("source %s not OK: %s", src.Name, src.Err)
		}
	}
}

func TestRunnerWeatherFailureFailsRun(t *testing.T) {
	f := goodSources()
	f.weather = nil
	f.weatherErr = errors.New("connection refused")

	if _, err := newTestRunner(f).Run(context.Background()); err == nil {
		t.Fatal("Run() error = nil, want error when weather fetch fails")
	}
}

func TestRunnerDegradesWithoutNonCriticalSources(t *testing.T) {
	f := goodSources()
	f.marine = nil
	f.marineErr = errors.New("marine api down")
	f.sun = nil
	f.sunErr = errors.New("timeout")
	f.tides = nil
	f.tidesErr = errors.New("timeout")
	f.waterErr = errors.New("timeout")

	result, err := newTestRunner(f).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v, want nil (non-critical failures degrade)", err)
	}

	if result.Surf.Score != 0 {
		t.Errorf("Surf.Score = %d, want 0 without marine data", result.Surf.Score)
	}
	if result.Photo.Score == 0 {
		t.Error("Photo.Score = 0, want scored from weather alone")
	}
	if got := result.SunriseText(); got != "--" {
		t.Errorf("SunriseText() = %q, want --", got)
	}
	if got := result.TideText(TideShort); got != NoTides {
		t.Errorf("TideText() = %q, want %q", got, NoTides)
	}
	if got := result.WaterTempText(); got != "--" {
		t.Errorf("WaterTempText() = %q, want --", got)
	}

	okCount := 0
	for _, src := range result.Sources {
		if src.OK {
			okCount++
		}
	}
	if okCount != 1 {
		t.Errorf("OK sources = %d, want 1 (weather only)", okCount)
	}
}
