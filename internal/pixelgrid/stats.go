package pixelgrid

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ChannelStats summarizes the values of one color channel.
type ChannelStats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Stats describes a grid's shape and per-channel value distribution.
type Stats struct {
	Rows   int          `json:"rows"`
	Cols   int          `json:"cols"`
	Pixels int          `json:"pixels"`
	Red    ChannelStats `json:"red"`
	Green  ChannelStats `json:"green"`
	Blue   ChannelStats `json:"blue"`

	// Brightness is the mean of all pixel averages.
	Brightness float64 `json:"brightness"`
}

// ComputeStats returns shape and channel statistics for the grid.
//
// StdDev is the unbiased sample standard deviation; it is 0 for single-pixel
// grids. Values are rounded to 4 decimal places. Returns an error wrapping
// ErrEmptyGrid if the grid has no pixels.
func ComputeStats(g Grid) (*Stats, error) {
	var channels [3][]float64
	for _, row := range g {
		for _, p := range row {
			for i := range channels {
				channels[i] = append(channels[i], p[i])
			}
		}
	}
	n := len(channels[0])
	if n == 0 {
		return nil, ErrEmptyGrid
	}

	summary := make([]ChannelStats, 3)
	for i, values := range channels {
		mean, std := stat.MeanStdDev(values, nil)
		if n == 1 {
			std = 0
		}
		summary[i] = ChannelStats{
			Mean:   round4(mean),
			StdDev: round4(std),
			Min:    round4(floats.Min(values)),
			Max:    round4(floats.Max(values)),
		}
	}

	brightness := (floats.Sum(channels[0]) + floats.Sum(channels[1]) + floats.Sum(channels[2])) / float64(3*n)

	return &Stats{
		Rows:       g.Rows(),
		Cols:       g.Cols(),
		Pixels:     n,
		Red:        summary[0],
		Green:      summary[1],
		Blue:       summary[2],
		Brightness: round4(brightness),
	}, nil
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
