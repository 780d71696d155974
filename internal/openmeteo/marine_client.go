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

// MarineClient fetches hourly wave and swell forecasts from the Open-Meteo
// marine API for a fixed coordinate.
type MarineClient struct {
	baseURL    string
	httpClient *http.Client
	latitude   float64
	longitude  float64
	location   *time.Location
}

// NewMarineClient creates an Open-Meteo marine client pinned to one spot.
func NewMarineClient(latitude, longitude float64, location *time.Location) *MarineClient {
	return &MarineClient{
		baseURL: "https://marine-api.open-meteo.com/v1/marine",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		latitude:  latitude,
		longitude: longitude,
		location:  location,
	}
}

// MarineForecast retrieves the hourly wave series. Heights come back in feet
// via length_unit=imperial to match the surf height bands.
func (c *MarineClient) MarineForecast(ctx context.Context) (*models.MarineSeries, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", c.latitude))
	params.Set("longitude", fmt.Sprintf("%.4f", c.longitude))
	params.Set("hourly", "wave_height,wave_direction,wave_period,swell_wave_height,swell_wave_direction,swell_wave_period")
	params.Set("length_unit", "imperial")
	params.Set("timezone", c.location.String())
	params.Set("forecast_days", "3")

	requestURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch marine forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var payload marineResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	times, err := parseLocalTimes(payload.Hourly.Time, c.location)
	if err != nil {
		return nil, fmt.Errorf("parsing marine timestamps: %w", err)
	}

	return &models.MarineSeries{
		Times:          times,
		WaveHeight:     payload.Hourly.WaveHeight,
		WaveDirection:  payload.Hourly.WaveDirection,
		WavePeriod:     payload.Hourly.WavePeriod,
		SwellHeight:    payload.Hourly.SwellHeight,
		SwellDirection: payload.Hourly.SwellDirection,
		SwellPeriod:    payload.Hourly.SwellPeriod,
	}, nil
}

type marineResponse struct {
	Hourly struct {
		Time           []string  `json:"time"`
		WaveHeight     []float64 `json:"wave_height"`
		WaveDirection  []float64 `json:"wave_direction"`
		WavePeriod     []float64 `json:"wave_period"`
		SwellHeight    []float64 `json:"swell_wave_height"`
		SwellDirection []float64 `json:"swell_wave_direction"`
		SwellPeriod    []float64 `json:"swell_wave_period"`
	} `json:"hourly"`
}
