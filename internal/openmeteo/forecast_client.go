package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sandfly/dawnpatrol/internal/models"
)

// hourlyTimeLayout is the layout Open-Meteo uses for hourly timestamps when a
// timezone parameter is supplied: local wall-clock time, no offset.
const hourlyTimeLayout = "2006-01-02T15:04"

// ForecastClient fetches hourly weather and daily sun times from the
// Open-Meteo forecast API for a fixed coordinate.
type ForecastClient struct {
	baseURL    string
	httpClient *http.Client
	latitude   float64
	longitude  float64
	location   *time.Location
}

// NewForecastClient creates an Open-Meteo forecast client pinned to one spot.
func NewForecastClient(latitude, longitude float64, location *time.Location) *ForecastClient {
	return &ForecastClient{
		baseURL: "https://api.open-meteo.com/v1/forecast",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		latitude:  latitude,
		longitude: longitude,
		location:  location,
	}
}

// HourlyForecast retrieves the hourly weather series used by all three
// scorers. Units are fixed to Fahrenheit and mph to match the scoring tables.
func (c *ForecastClient) HourlyForecast(ctx context.Context) (*models.HourlySeries, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", c.latitude))
	params.Set("longitude", fmt.Sprintf("%.4f", c.longitude))
	params.Set("hourly", "temperature_2m,relativehumidity_2m,cloudcover,windspeed_10m,winddirection_10m,weathercode")
	params.Set("temperature_unit", "fahrenheit")
	params.Set("windspeed_unit", "mph")
	params.Set("timezone", c.location.String())
	params.Set("forecast_days", "3")

	var payload forecastResponse
	if err := c.get(ctx, params, &payload); err != nil {
		return nil, fmt.Errorf("fetching hourly forecast: %w", err)
	}

	times, err := parseLocalTimes(payload.Hourly.Time, c.location)
	if err != nil {
		return nil, fmt.Errorf("parsing hourly timestamps: %w", err)
	}

	return &models.HourlySeries{
		Times:         times,
		Temperature:   payload.Hourly.Temperature,
		Humidity:      payload.Hourly.Humidity,
		CloudCover:    payload.Hourly.CloudCover,
		WindSpeed:     payload.Hourly.WindSpeed,
		WindDirection: payload.Hourly.WindDirection,
		WeatherCode:   payload.Hourly.WeatherCode,
	}, nil
}

// SunTimes retrieves sunrise and sunset for the given date.
func (c *ForecastClient) SunTimes(ctx context.Context, date time.Time) (*models.SunTimes, error) {
	day := date.Format("2006-01-02")

	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", c.latitude))
	params.Set("longitude", fmt.Sprintf("%.4f", c.longitude))
	params.Set("daily", "sunrise,sunset")
	params.Set("timezone", c.location.String())
	params.Set("start_date", day)
	params.Set("end_date", day)

	var payload forecastResponse
	if err := c.get(ctx, params, &payload); err != nil {
		return nil, fmt.Errorf("fetching sun times: %w", err)
	}

	if len(payload.Daily.Sunrise) == 0 || len(payload.Daily.Sunset) == 0 {
		return nil, fmt.Errorf("no sun times returned for %s", day)
	}

	sunrise, err := time.ParseInLocation(hourlyTimeLayout, payload.Daily.Sunrise[0], c.location)
	if err != nil {
		return nil, fmt.Errorf("parsing sunrise time: %w", err)
	}
	sunset, err := time.ParseInLocation(hourlyTimeLayout, payload.Daily.Sunset[0], c.location)
	if err != nil {
		return nil, fmt.Errorf("parsing sunset time: %w", err)
	}

	return &models.SunTimes{Sunrise: sunrise, Sunset: sunset}, nil
}

func (c *ForecastClient) get(ctx context.Context, params url.Values, out any) error {
	requestURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// parseLocalTimes converts Open-Meteo's local wall-clock timestamps into
// time.Time values carrying the spot's zone, so date and hour comparisons
// happen on the local calendar rather than UTC.
func parseLocalTimes(raw []string, loc *time.Location) ([]time.Time, error) {
	times := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		t, err := time.ParseInLocation(hourlyTimeLayout, s, loc)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp %q: %w", s, err)
		}
		times = append(times, t)
	}
	return times, nil
}

// Internal types for Open-Meteo forecast API responses. Field slices are
// optional: a missing array decodes to nil and downstream readers default it.

type forecastResponse struct {
	Hourly struct {
		Time          []string  `json:"time"`
		Temperature   []float64 `json:"temperature_2m"`
		Humidity      []float64 `json:"relativehumidity_2m"`
		CloudCover    []float64 `json:"cloudcover"`
		WindSpeed     []float64 `json:"windspeed_10m"`
		WindDirection []float64 `json:"winddirection_10m"`
		WeatherCode   []int     `json:"weathercode"`
	} `json:"hourly"`
	Daily struct {
		Sunrise []string `json:"sunrise"`
		Sunset  []string `json:"sunset"`
	} `json:"daily"`
}
