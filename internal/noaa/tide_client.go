package noaa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sandfly/dawnpatrol/internal/models"
)

// TideClient talks to the NOAA CO-OPS API for a single fixed station.
type TideClient struct {
	baseURL    string
	httpClient *http.Client
	stationID  string
	location   *time.Location
}

// NewTideClient creates a NOAA CO-OPS client for one tide station.
func NewTideClient(stationID string, location *time.Location) *TideClient {
	return &TideClient{
		baseURL: "https://api.tidesandcurrents.noaa.gov/api/prod/datagetter",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		stationID: stationID,
		location:  location,
	}
}

// TidePredictions retrieves high/low tide predictions covering the given date.
func (c *TideClient) TidePredictions(ctx context.Context, date time.Time) (*models.TideData, error) {
	day := date.Format("20060102")

	params := url.Values{}
	params.Add("begin_date", day)
	params.Add("end_date", day)
	params.Add("station", c.stationID)
	params.Add("product", "predictions")
	params.Add("datum", "MLLW")        // Mean Lower Low Water
	params.Add("time_zone", "lst_ldt") // Local standard/daylight time
	params.Add("interval", "hilo")     // High and low tides only
	params.Add("units", "english")     // Feet
	params.Add("format", "json")
	params.Add("application", "DawnPatrol")

	var tideResp tideResponse
	if err := c.get(ctx, params, &tideResp); err != nil {
		return nil, fmt.Errorf("failed to fetch tide data: %w", err)
	}

	tideData := &models.TideData{
		StationID:   c.stationID,
		StationName: tideResp.Metadata.Name,
		Events:      make([]models.TideEvent, 0, len(tideResp.Predictions)),
		UpdatedAt:   time.Now(),
	}

	for _, pred := range tideResp.Predictions {
		eventTime, err := time.ParseInLocation("2006-01-02 15:04", pred.Time, c.location)
		if err != nil {
			continue // Skip invalid times
		}

		var tideType models.TideType
		switch pred.Type {
		case "H":
			tideType = models.TideHigh
		case "L":
			tideType = models.TideLow
		default:
			tideType = models.TideOther
		}

		// NOAA returns heights as strings
		height, err := strconv.ParseFloat(pred.Height, 64)
		if err != nil {
			continue
		}

		tideData.Events = append(tideData.Events, models.TideEvent{
			Time:   eventTime,
			Type:   tideType,
			Height: height,
		})
	}

	return tideData, nil
}

// WaterTemperature retrieves the latest water temperature reading in
// Fahrenheit. Informational only; nothing scores on it.
func (c *TideClient) WaterTemperature(ctx context.Context) (float64, error) {
	params := url.Values{}
	params.Add("station", c.stationID)
	params.Add("product", "water_temperature")
	params.Add("date", "latest")
	params.Add("time_zone", "lst_ldt")
	params.Add("units", "english")
	params.Add("format", "json")
	params.Add("application", "DawnPatrol")

	var obsResp observationResponse
	if err := c.get(ctx, params, &obsResp); err != nil {
		return 0, fmt.Errorf("failed to fetch water temperature: %w", err)
	}

	if len(obsResp.Data) == 0 {
		return 0, fmt.Errorf("no water temperature observations for station %s", c.stationID)
	}

	last := obsResp.Data[len(obsResp.Data)-1]
	temp, err := strconv.ParseFloat(last.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid water temperature %q: %w", last.Value, err)
	}
	return temp, nil
}

func (c *TideClient) get(ctx context.Context, params url.Values, out any) error {
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

// Internal types for NOAA CO-OPS API responses

type tideResponse struct {
	Metadata struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Lat  string `json:"lat"`
		Lon  string `json:"lon"`
	} `json:"metadata"`
	Predictions []struct {
		Time   string `json:"t"`
		Height string `json:"v"`    // NOAA returns this as string
		Type   string `json:"type"` // "H" or "L"
	} `json:"predictions"`
}

type observationResponse struct {
	Data []struct {
		Time  string `json:"t"`
		Value string `json:"v"`
	} `json:"data"`
}
