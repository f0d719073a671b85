package telemetry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeHungerStats(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		want    HungerStats
	}{
		{"empty", nil, HungerStats{}},
		{"single", []float64{40}, HungerStats{HungerMean: 40, HungerMin: 40, HungerP10: 40, HungerP50: 40, HungerP90: 40}},
		{
			"spread",
			[]float64{100, 90, 80, 70, 60, 50, 40, 30, 20, 10},
			HungerStats{HungerMean: 55, HungerMin: 10, HungerP10: 10, HungerP50: 50, HungerP90: 90},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeHungerStats(tt.samples)
			require.InDelta(t, tt.want.HungerMean, got.HungerMean, 1e-9)
			require.Equal(t, tt.want.HungerMin, got.HungerMin)
			require.Equal(t, tt.want.HungerP10, got.HungerP10)
			require.Equal(t, tt.want.HungerP50, got.HungerP50)
			require.Equal(t, tt.want.HungerP90, got.HungerP90)
		})
	}
}

func TestComputeHungerStatsStd(t *testing.T) {
	hs := ComputeHungerStats([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	// Sample standard deviation
	require.InDelta(t, 2.138, hs.HungerStd, 1e-3)

	require.Zero(t, ComputeHungerStats([]float64{3}).HungerStd)
}

func TestComputeHungerStatsDoesNotReorderInput(t *testing.T) {
	samples := []float64{3, 1, 2}
	ComputeHungerStats(samples)
	require.Equal(t, []float64{3, 1, 2}, samples)
}
