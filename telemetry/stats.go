// Package telemetry records per-window and per-session statistics of pet
// sessions and writes them as CSV.
package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one time window.
type WindowStats struct {
	Session     int    `csv:"session"`
	WindowStart int64  `csv:"-"`
	WindowEnd   int64  `csv:"window_end"`
	Age         int    `csv:"age"`
	Stage       string `csv:"stage"`
	Flies       int    `csv:"flies"`

	// Events during window
	Feeds        int `csv:"feeds"`
	HungerTicks  int `csv:"hunger_ticks"`
	StageChanges int `csv:"stage_changes"`

	// Hunger distribution over the samples taken in the window
	HungerStats
}

// HungerStats summarizes hunger samples.
type HungerStats struct {
	HungerMean float64 `csv:"hunger_mean"`
	HungerStd  float64 `csv:"hunger_std"`
	HungerMin  float64 `csv:"hunger_min"`
	HungerP10  float64 `csv:"hunger_p10"`
	HungerP50  float64 `csv:"hunger_p50"`
	HungerP90  float64 `csv:"hunger_p90"`
}

// ComputeHungerStats calculates mean, std, min and percentiles of samples.
func ComputeHungerStats(samples []float64) HungerStats {
	n := len(samples)
	if n == 0 {
		return HungerStats{}
	}

	sorted := make([]float64, n)
	copy(sorted, samples)
	sort.Float64s(sorted)

	hs := HungerStats{
		HungerMean: stat.Mean(sorted, nil),
		HungerMin:  sorted[0],
		HungerP10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		HungerP50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		HungerP90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
	// Sample std is undefined for one sample
	if n > 1 {
		hs.HungerStd = stat.StdDev(sorted, nil)
	}
	if math.IsNaN(hs.HungerStd) {
		hs.HungerStd = 0
	}
	return hs
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("session", s.Session),
		slog.Int64("window_start", s.WindowStart),
		slog.Int64("window_end", s.WindowEnd),
		slog.Int("age", s.Age),
		slog.String("stage", s.Stage),
		slog.Int("flies", s.Flies),
		slog.Int("feeds", s.Feeds),
		slog.Int("hunger_ticks", s.HungerTicks),
		slog.Float64("hunger_mean", s.HungerMean),
		slog.Float64("hunger_p50", s.HungerP50),
	)
}

// SessionSummary describes one pet from reset to death.
type SessionSummary struct {
	Session   int     `csv:"session"`
	StartedAt int64   `csv:"started_at"`
	HatchedAt int64   `csv:"hatched_at"` // -1 if the egg never hatched
	EndedAt   int64   `csv:"ended_at"`
	FinalAge  int     `csv:"final_age"`
	Died      bool    `csv:"died"`
	Feeds     int     `csv:"feeds"`
	Lifetime  float64 `csv:"lifetime_sec"`

	HungerStats
}

// LogValue implements slog.LogValuer for structured logging.
func (s SessionSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("session", s.Session),
		slog.Int("final_age", s.FinalAge),
		slog.Bool("died", s.Died),
		slog.Int("feeds", s.Feeds),
		slog.Float64("lifetime_sec", s.Lifetime),
		slog.Float64("hunger_mean", s.HungerMean),
	)
}
