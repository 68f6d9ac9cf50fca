package indicators

import (
	"math"

	"FinScan/internal/domain/models"
)

func Closes(bars []models.Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}

func Volumes(bars []models.Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Volume
	}
	return out
}

// Last returns the newest value, or NaN for an empty series.
func Last(series []float64) float64 { return Back(series, 1) }

// Prev returns the value before the newest one.
func Prev(series []float64) float64 { return Back(series, 2) }

// Back returns series[len-n], or NaN when out of range.
func Back(series []float64, n int) float64 {
	if n < 1 || n > len(series) {
		return math.NaN()
	}
	return series[len(series)-n]
}

// Max returns the largest non-NaN value, or NaN if there is none.
func Max(series []float64) float64 {
	m := math.NaN()
	for _, v := range series {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(m) || v > m {
			m = v
		}
	}
	return m
}

// Mean of the non-NaN values.
func Mean(series []float64) float64 {
	m, _ := meanCount(series)
	return m
}

// VolumeRatio is the newest volume over its period-bar average (the average
// includes the newest bar). Missing volumes are left out of the average. ok
// is false when the newest volume is missing or the average is undefined or
// zero.
func VolumeRatio(volumes []float64, period int) (ratio float64, ok bool) {
	cur := Last(volumes)
	avg := Last(RollingMean(volumes, period))
	if math.IsNaN(cur) || math.IsNaN(avg) || avg == 0 {
		return 0, false
	}
	return cur / avg, true
}
