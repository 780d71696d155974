package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sandfly/dawnpatrol/internal/advisor"
	"github.com/sandfly/dawnpatrol/internal/cache"
	"github.com/sandfly/dawnpatrol/internal/config"
	"github.com/sandfly/dawnpatrol/internal/noaa"
	"github.com/sandfly/dawnpatrol/internal/observability"
	"github.com/sandfly/dawnpatrol/internal/openmeteo"
)

const runTimeout = 60 * time.Second

func main() {
	schedule := flag.Bool("schedule", false, "Run as a daemon, recomputing the advisory daily at DAWN_SCHEDULE")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg, os.Stderr)

	forecast := openmeteo.NewForecastClient(cfg.Latitude, cfg.Longitude, cfg.Location)
	marine := openmeteo.NewMarineClient(cfg.Latitude, cfg.Longitude, cfg.Location)
	tides := noaa.NewTideClient(cfg.TideStation, cfg.Location)

	runner := advisor.NewRunner(
		forecast, marine, forecast, tides, tides,
		clockwork.NewRealClock(), cfg.Location, cfg.SpotName, logger,
	)

	store, err := cache.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("cache unavailable, continuing without it", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	if !*schedule {
		if err := runOnce(runner, store, os.Stdout); err != nil {
			logger.Error("advisory run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	runDaemon(cfg, runner, store, logger)
}

// runOnce computes a single advisory, prints it, and refreshes the cache.
func runOnce(runner *advisor.Runner, store *cache.Cache, w io.Writer) error {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	result, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	if store != nil {
		if err := store.Save(result); err != nil {
			return fmt.Errorf("caching advisory: %w", err)
		}
	}
	printReport(w, result)
	return nil
}

// runDaemon recomputes the advisory every day at the configured local time
// and serves /healthz and /metrics until interrupted.
func runDaemon(cfg *config.Config, runner *advisor.Runner, store *cache.Cache, logger *slog.Logger) {
	metrics := observability.NewMetrics()

	job := func() {
		start := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		result, err := runner.Run(ctx)
		metrics.RunDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.RunsTotal.WithLabelValues("error").Inc()
			logger.Error("scheduled advisory failed", "error", err)
			return
		}
		metrics.RunsTotal.WithLabelValues("success").Inc()
		metrics.ActivityScore.WithLabelValues("surf").Set(float64(result.Surf.Score))
		metrics.ActivityScore.WithLabelValues("photo").Set(float64(result.Photo.Score))
		metrics.ActivityScore.WithLabelValues("cycle").Set(float64(result.Cycle.Score))

		if store != nil {
			if err := store.Save(result); err != nil {
				logger.Warn("failed to cache advisory", "error", err)
			}
		}
		logger.Info("advisory computed",
			"target_date", result.TargetDate.Format("2006-01-02"),
			"recommendation", result.Recommendation.Activity,
			"surf", result.Surf.Score,
			"photo", result.Photo.Score,
			"cycle", result.Cycle.Score,
		)
	}

	scheduler := gocron.NewScheduler(cfg.Location)
	if _, err := scheduler.Every(1).Day().At(cfg.Schedule).Do(job); err != nil {
		logger.Error("failed to schedule advisory job", "error", err)
		os.Exit(1)
	}
	scheduler.StartAsync()
	logger.Info("scheduler started", "at", cfg.Schedule, "tz", cfg.Timezone)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"healthy"}`)
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Compute one advisory immediately so the daemon is useful before the
	// first scheduled tick.
	job()

	<-ctx.Done()
	logger.Info("shutting down")

	scheduler.Stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
}

// printReport writes the plain-text advisory.
func printReport(w io.Writer, r *advisor.RunResult) {
	rec := r.Recommendation
	fmt.Fprintf(w, "Dawn Patrol — %s, %s\n\n", r.Spot, r.TargetDate.Format("Monday Jan 2"))
	fmt.Fprintf(w, "%s  %s — %s\n\n", rec.Icon, rec.Activity, rec.Detail)
	fmt.Fprintf(w, "  Surf   %2d/10  %s\n", r.Surf.Score, r.Surf.Details)
	fmt.Fprintf(w, "  Photo  %2d/10  %s\n", r.Photo.Score, r.Photo.Verdict)
	fmt.Fprintf(w, "  Cycle  %2d/10  %s\n\n", r.Cycle.Score, r.Cycle.DirectionText)
	fmt.Fprintf(w, "  sunrise %s   tides %s   water %s\n",
		r.SunriseText(), r.TideText(advisor.TideShort), r.WaterTempText())
	for _, src := range r.Sources {
		if !src.OK {
			fmt.Fprintf(w, "  (no %s data: %s)\n", src.Name, src.Err)
		}
	}
	fmt.Fprintf(w, "\n  generated %s\n", r.GeneratedAt.Format("Jan 2 3:04 PM"))
}
