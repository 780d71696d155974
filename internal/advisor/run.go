package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sandfly/dawnpatrol/internal/models"
)

// Data sources the Runner fans out to. Each is one HTTP collaborator; the
// concrete clients live in internal/openmeteo and internal/noaa.
type (
	WeatherSource interface {
		HourlyForecast(ctx context.Context) (*models.HourlySeries, error)
	}
	MarineSource interface {
		MarineForecast(ctx context.Context) (*models.MarineSeries, error)
	}
	SunSource interface {
		SunTimes(ctx context.Context, date time.Time) (*models.SunTimes, error)
	}
	TideSource interface {
		TidePredictions(ctx context.Context, date time.Time) (*models.TideData, error)
	}
	WaterTempSource interface {
		WaterTemperature(ctx context.Context) (float64, error)
	}
)

// SourceStatus records how one collaborator fared during a run, for the
// footer and the daemon log.
type SourceStatus struct {
	Name string `json:"name"`
	OK   bool   `json:"ok"`
	Err  string `json:"err,omitempty"`
}

// RunResult is one complete advisory: immutable once returned, threaded to
// the rendering layer and the cache, never shared with the scorers.
type RunResult struct {
	GeneratedAt time.Time `json:"generatedAt"`
	TargetDate  time.Time `json:"targetDate"`
	Spot        string    `json:"spot"`

	Surf  SurfResult  `json:"surf"`
	Photo PhotoResult `json:"photo"`
	Cycle CycleResult `json:"cycle"`

	Recommendation Recommendation `json:"recommendation"`

	Sunrise      *time.Time         `json:"sunrise,omitempty"`
	TideEvents   []models.TideEvent `json:"tideEvents,omitempty"`
	WaterTemp    float64            `json:"waterTemp"`
	HasWaterTemp bool               `json:"hasWaterTemp"`

	Sources []SourceStatus `json:"sources"`
}

// SunriseText renders the sunrise clock time, or "--" when the fetch failed.
func (r *RunResult) SunriseText() string {
	if r.Sunrise == nil {
		return "--"
	}
	return r.Sunrise.Format("3:04 AM")
}

// TideText renders the morning tides at the given verbosity.
func (r *RunResult) TideText(verbosity TideVerbosity) string {
	return FormatTideEvents(r.TideEvents, r.TargetDate, verbosity)
}

// WaterTempText renders the latest water temperature, or "--" when absent.
func (r *RunResult) WaterTempText() string {
	if !r.HasWaterTemp {
		return "--"
	}
	return fmt.Sprintf("%.0f°F", r.WaterTemp)
}

// Runner owns the single-run pipeline: fetch the five datasets concurrently,
// score the three activities, arbitrate. Safe to reuse; each Run is
// independent and last-write-wins at the caller.
type Runner struct {
	weather   WeatherSource
	marine    MarineSource
	sun       SunSource
	tides     TideSource
	waterTemp WaterTempSource

	clock    clockwork.Clock
	location *time.Location
	spot     string
	logger   *slog.Logger
}

// NewRunner wires a Runner. Pass clockwork.NewRealClock() outside tests. A
// nil logger discards.
func NewRunner(
	weather WeatherSource,
	marine MarineSource,
	sun SunSource,
	tides TideSource,
	waterTemp WaterTempSource,
	clock clockwork.Clock,
	location *time.Location,
	spot string,
	logger *slog.Logger,
) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		weather:   weather,
		marine:    marine,
		sun:       sun,
		tides:     tides,
		waterTemp: waterTemp,
		clock:     clock,
		location:  location,
		spot:      spot,
		logger:    logger,
	}
}

// TargetDate returns local midnight of tomorrow, the morning every scorer
// evaluates.
func (r *Runner) TargetDate() time.Time {
	now := r.clock.Now().In(r.location)
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, r.location)
}

// Run executes one advisory: concurrent fetches, then scoring, then
// arbitration. Only a general-weather failure fails the run; every other
// source degrades to its no-data path.
func (r *Runner) Run(ctx context.Context) (*RunResult, error) {
	target := r.TargetDate()

	var (
		wg sync.WaitGroup

		weather    *models.HourlySeries
		weatherErr error
		marine     *models.MarineSeries
		marineErr  error
		sun        *models.SunTimes
		sunErr     error
		tideData   *models.TideData
		tideErr    error
		water      float64
		waterErr   error
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		weather, weatherErr = r.weather.HourlyForecast(ctx)
	}()
	go func() {
		defer wg.Done()
		marine, marineErr = r.marine.MarineForecast(ctx)
	}()
	go func() {
		defer wg.Done()
		sun, sunErr = r.sun.SunTimes(ctx, target)
	}()
	go func() {
		defer wg.Done()
		tideData, tideErr = r.tides.TidePredictions(ctx, target)
	}()
	go func() {
		defer wg.Done()
		water, waterErr = r.waterTemp.WaterTemperature(ctx)
	}()
	wg.Wait()

	// General weather is the one critical source: all three scorers read it.
	if weatherErr != nil {
		return nil, fmt.Errorf("fetching weather forecast: %w", weatherErr)
	}
	for name, err := range map[string]error{
		"marine":     marineErr,
		"sunrise":    sunErr,
		"tides":      tideErr,
		"water_temp": waterErr,
	} {
		if err != nil {
			r.logger.Warn("source unavailable, degrading", "source", name, "error", err)
		}
	}

	result := &RunResult{
		GeneratedAt: r.clock.Now().In(r.location),
		TargetDate:  target,
		Spot:        r.spot,
		Surf:        ScoreSurf(marine, weather, target),
		Photo:       ScorePhoto(weather, target),
		Cycle:       ScoreCycle(weather, target),
		Sources: []SourceStatus{
			sourceStatus("weather", nil),
			sourceStatus("marine", marineErr),
			sourceStatus("sunrise", sunErr),
			sourceStatus("tides", tideErr),
			sourceStatus("water_temp", waterErr),
		},
	}
	result.Recommendation = Recommend(result.Surf, result.Photo, result.Cycle)

	if sunErr == nil && sun != nil {
		sunrise := sun.Sunrise
		result.Sunrise = &sunrise
	}
	if tideErr == nil && tideData != nil {
		result.TideEvents = tideData.Events
	}
	if waterErr == nil {
		result.WaterTemp = water
		result.HasWaterTemp = true
	}

	return result, nil
}

func sourceStatus(name string, err error) SourceStatus {
	if err != nil {
		return SourceStatus{Name: name, Err: err.Error()}
	}
	return SourceStatus{Name: name, OK: true}
}
