package utils

import (
	"math"
	"testing"
)

func TestHaversineDistance(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{
			name: "same point",
			lat1: -6.2, lon1: 106.8, lat2: -6.2, lon2: 106.8,
			want: 0, tolerance: 0.001,
		},
		{
			// Roughly 111m per 0.001 degree of latitude.
			name: "one millidegree north",
			lat1: 0, lon1: 0, lat2: 0.001, lon2: 0,
			want: 111.19, tolerance: 1,
		},
		{
			name: "jakarta to bandung",
			lat1: -6.2088, lon1: 106.8456, lat2: -6.9175, lon2: 107.6191,
			want: 115000, tolerance: 3000,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := HaversineDistance(c.lat1, c.lon1, c.lat2, c.lon2)
			if math.Abs(got-c.want) > c.tolerance {
				t.Errorf("HaversineDistance() = %.2f, want %.2f (±%.2f)", got, c.want, c.tolerance)
			}
		})
	}
}
