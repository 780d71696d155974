package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all settings, populated from environment variables. The
// defaults pin the one spot this advisor serves; they are tunable, not
// general-purpose.
type Config struct {
	Latitude    float64
	Longitude   float64
	Timezone    string
	Location    *time.Location
	TideStation string
	SpotName    string
	DBPath      string
	Schedule    string // daily refresh time, HH:MM local
	HTTPAddr    string
	LogLevel    string
	LogFormat   string
}

// Load reads configuration from the environment, with an optional .env file,
// applying defaults where unset.
func Load() (*Config, error) {
	// Optional; absence is the normal case.
	_ = godotenv.Load()

	cfg := &Config{
		Timezone:    getenvDefault("DAWN_TIMEZONE", "America/New_York"),
		TideStation: getenvDefault("DAWN_TIDE_STATION", "8658163"),
		SpotName:    getenvDefault("DAWN_SPOT_NAME", "Wrightsville Beach"),
		DBPath:      getenvDefault("DAWN_DB_PATH", "data/dawnpatrol.db"),
		Schedule:    getenvDefault("DAWN_SCHEDULE", "05:30"),
		HTTPAddr:    getenvDefault("DAWN_HTTP_ADDR", ":9090"),
		LogLevel:    getenvDefault("LOG_LEVEL", "info"),
		LogFormat:   getenvDefault("LOG_FORMAT", "text"),
	}

	var err error
	if cfg.Latitude, err = getenvFloat("DAWN_LATITUDE", 34.2085); err != nil {
		return nil, err
	}
	if cfg.Longitude, err = getenvFloat("DAWN_LONGITUDE", -77.7964); err != nil {
		return nil, err
	}

	cfg.Location, err = time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid DAWN_TIMEZONE %q: %w", cfg.Timezone, err)
	}

	if _, err := time.Parse("15:04", cfg.Schedule); err != nil {
		return nil, fmt.Errorf("invalid DAWN_SCHEDULE %q, want HH:MM: %w", cfg.Schedule, err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}
