package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var testLoc, _ = time.LoadLocation("America/New_York")

func TestNewForecastClient(t *testing.T) {
	client := NewForecastClient(34.2085, -77.7964, testLoc)

	if client == nil {
		t.Fatal("NewForecastClient() returned nil")
	}
	if client.baseURL != "https://api.open-meteo.com/v1/forecast" {
		t.Errorf("baseURL = %s, unexpected value", client.baseURL)
	}
	if client.httpClient.Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", client.httpClient.Timeout)
	}
}

func TestForecastClient_HourlyForecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("temperature_unit") != "fahrenheit" {
			t.Error("temperature_unit param should be 'fahrenheit'")
		}
		if query.Get("windspeed_unit") != "mph" {
			t.Error("windspeed_unit param should be 'mph'")
		}
		if query.Get("timezone") != "America/New_York" {
			t.Errorf("timezone param = %s, want America/New_York", query.Get("timezone"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"hourly": {
				"time": ["2026-03-15T06:00", "2026-03-15T07:00"],
				"temperature_2m": [58.1, 60.4],
				"relativehumidity_2m": [82, 78],
				"cloudcover": [35, 40],
				"windspeed_10m": [5.2, 6.1],
				"winddirection_10m": [270, 280],
				"weathercode": [1, 2]
			}
		}`))
	}))
	defer server.Close()

	client := NewForecastClient(34.2085, -77.7964, testLoc)
	client.baseURL = server.URL

	series, err := client.HourlyForecast(context.Background())
	if err != nil {
		t.Fatalf("HourlyForecast() error = %v", err)
	}

	if series.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", series.Len())
	}

	want := time.Date(2026, 3, 15, 6, 0, 0, 0, testLoc)
	if !series.Times[0].Equal(want) {
		t.Errorf("Times[0] = %v, want %v", series.Times[0], want)
	}
	if series.Times[0].Hour() != 6 {
		t.Errorf("Times[0].Hour() = %d, want 6 (local wall clock)", series.Times[0].Hour())
	}
	if series.Temperature[1] != 60.4 {
		t.Errorf("Temperature[1] = %v, want 60.4", series.Temperature[1])
	}
	if series.WeatherCode[1] != 2 {
		t.Errorf("WeatherCode[1] = %d, want 2", series.WeatherCode[1])
	}
}

func TestForecastClient_HourlyForecastMissingFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"hourly": {"time": ["2026-03-15T06:00"], "cloudcover": [40]}}`))
	}))
	defer server.Close()

	client := NewForecastClient(34.2085, -77.7964, testLoc)
	client.baseURL = server.URL

	series, err := client.HourlyForecast(context.Background())
	if err != nil {
		t.Fatalf("HourlyForecast() error = %v, want nil for missing arrays", err)
	}
	if len(series.WindSpeed) != 0 {
		t.Errorf("WindSpeed length = %d, want 0 (absent array decodes empty)", len(series.WindSpeed))
	}
}

func TestForecastClient_HourlyForecastServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewForecastClient(34.2085, -77.7964, testLoc)
	client.baseURL = server.URL

	if _, err := client.HourlyForecast(context.Background()); err == nil {
		t.Fatal("HourlyForecast() error = nil, want error on 502")
	}
}

func TestForecastClient_SunTimes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("daily") != "sunrise,sunset" {
			t.Errorf("daily param = %s, want sunrise,sunset", query.Get("daily"))
		}
		if query.Get("start_date") != "2026-03-15" {
			t.Errorf("start_date param = %s, want 2026-03-15", query.Get("start_date"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"daily": {"sunrise": ["2026-03-15T07:12"], "sunset": ["2026-03-15T19:20"]}}`))
	}))
	defer server.Close()

	client := NewForecastClient(34.2085, -77.7964, testLoc)
	client.baseURL = server.URL

	date := time.Date(2026, 3, 15, 0, 0, 0, 0, testLoc)
	sun, err := client.SunTimes(context.Background(), date)
	if err != nil {
		t.Fatalf("SunTimes() error = %v", err)
	}

	wantSunrise := time.Date(2026, 3, 15, 7, 12, 0, 0, testLoc)
	if !sun.Sunrise.Equal(wantSunrise) {
		t.Errorf("Sunrise = %v, want %v", sun.Sunrise, wantSunrise)
	}
}

func TestForecastClient_SunTimesEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"daily": {"sunrise": [], "sunset": []}}`))
	}))
	defer server.Close()

	client := NewForecastClient(34.2085, -77.7964, testLoc)
	client.baseURL = server.URL

	date := time.Date(2026, 3, 15, 0, 0, 0, 0, testLoc)
	if _, err := client.SunTimes(context.Background(), date); err == nil {
		t.Fatal("SunTimes() error = nil, want error for empty daily arrays")
	}
}
