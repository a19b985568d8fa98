// Package worker runs background jobs alongside the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"dishdash/models"
)

// noCuisineLabel tags restaurants saved without a cuisine.
const noCuisineLabel = "NONE"

var restaurantsByCuisine = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "dishdash_restaurants",
		Help: "Number of stored restaurants per cuisine",
	},
	[]string{"cuisine"},
)

// CuisineCounter is the slice of the store the stats worker reads.
type CuisineCounter interface {
	CountByCuisine(ctx context.Context) (map[models.Cuisine]int, error)
}

// StatsWorker periodically publishes per-cuisine restaurant counts.
type StatsWorker struct {
	counter  CuisineCounter
	interval time.Duration
	logger   *slog.Logger
	gauge    *prometheus.GaugeVec
}

func NewStatsWorker(counter CuisineCounter, interval time.Duration, logger *slog.Logger) *StatsWorker {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsWorker{
		counter:  counter,
		interval: interval,
		logger:   logger,
		gauge:    restaurantsByCuisine,
	}
}

// Run refreshes the gauge immediately and then on every tick until ctx is done.
func (w *StatsWorker) Run(ctx context.Context) error {
	w.logger.Info("starting stats worker", slog.Duration("interval", w.interval))
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("stats worker stopped")
			return nil
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *StatsWorker) refresh(ctx context.Context) {
	counts, err := w.counter.CountByCuisine(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Warn("counting restaurants failed", slog.Any("error", err))
		}
		return
	}

	for _, c := range models.Cuisines() {
		w.gauge.WithLabelValues(string(c.Name)).Set(float64(counts[c.Name]))
	}
	w.gauge.WithLabelValues(noCuisineLabel).Set(float64(counts[""]))
	w.logger.Debug("restaurant stats refreshed", slog.Int("cuisines", len(counts)))
}
