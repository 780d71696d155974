package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/sandfly/dawnpatrol/internal/advisor"
	"github.com/sandfly/dawnpatrol/internal/cache"
	"github.com/sandfly/dawnpatrol/internal/config"
	"github.com/sandfly/dawnpatrol/internal/noaa"
	"github.com/sandfly/dawnpatrol/internal/observability"
	"github.com/sandfly/dawnpatrol/internal/openmeteo"
	"github.com/sandfly/dawnpatrol/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// bubbletea owns the terminal, so the TUI's logger is silent.
	logger := observability.NewLogger(cfg, io.Discard)

	forecast := openmeteo.NewForecastClient(cfg.Latitude, cfg.Longitude, cfg.Location)
	marine := openmeteo.NewMarineClient(cfg.Latitude, cfg.Longitude, cfg.Location)
	tides := noaa.NewTideClient(cfg.TideStation, cfg.Location)

	runner := advisor.NewRunner(
		forecast, marine, forecast, tides, tides,
		clockwork.NewRealClock(), cfg.Location, cfg.SpotName, logger,
	)

	// The cache is the offline fallback; without it the app still works.
	store, err := cache.Open(cfg.DBPath)
	if err == nil {
		defer store.Close()
	} else {
		store = nil
	}

	p := tea.NewProgram(ui.NewModel(runner, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
