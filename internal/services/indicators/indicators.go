// Package indicators holds pure numerical functions over bar series.
//
// Every function returns a new slice of the same length as its input and
// never mutates its arguments. Warm-up positions hold NaN; callers treat NaN
// as "not enough history", never as zero.
package indicators

import (
	"math"

	"FinScan/internal/domain/models"
)

// EMA is the exponential moving average with k = 2/(span+1), seeded with
// the first input value.
func EMA(series []float64, span int) []float64 {
	out := make([]float64, len(series))
	if len(series) == 0 {
		return out
	}
	k := 2 / (float64(span) + 1)
	out[0] = series[0]
	for i := 1; i < len(series); i++ {
		out[i] = series[i]*k + out[i-1]*(1-k)
	}
	return out
}

// RSI is Wilder's relative strength index. The first period entries are NaN.
func RSI(closes []float64, period int) []float64 {
	out := nanSeries(len(closes))
	if period <= 0 || len(closes) <= period {
		return out
	}
	p := float64(period)

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		gain, loss := splitMove(closes[i] - closes[i-1])
		avgGain += gain
		avgLoss += loss
	}
	avgGain /= p
	avgLoss /= p
	out[period] = rsiValue(avgGain, avgLoss)

	for i := period + 1; i < len(closes); i++ {
		gain, loss := splitMove(closes[i] - closes[i-1])
		avgGain = (avgGain*(p-1) + gain) / p
		avgLoss = (avgLoss*(p-1) + loss) / p
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out
}

func splitMove(d float64) (gain, loss float64) {
	if d > 0 {
		return d, 0
	}
	return 0, -d
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	return 100 - 100/(1+avgGain/avgLoss)
}

// RollingMean is the simple moving average over period values. NaN members
// of a window are left out instead of poisoning it.
func RollingMean(series []float64, period int) []float64 {
	return rolling(series, period, func(window []float64) float64 {
		mean, _ := meanCount(window)
		return mean
	})
}

// RollingStd is the population standard deviation over period values, with
// the same NaN handling as RollingMean.
func RollingStd(series []float64, period int) []float64 {
	return rolling(series, period, func(window []float64) float64 {
		mean, n := meanCount(window)
		if n == 0 {
			return math.NaN()
		}
		var ss float64
		for _, v := range window {
			if math.IsNaN(v) {
				continue
			}
			ss += (v - mean) * (v - mean)
		}
		return math.Sqrt(ss / float64(n))
	})
}

func rolling(series []float64, period int, fn func([]float64) float64) []float64 {
	out := nanSeries(len(series))
	if period <= 0 {
		return out
	}
	for i := period - 1; i < len(series); i++ {
		out[i] = fn(series[i-period+1 : i+1])
	}
	return out
}

func meanCount(window []float64) (float64, int) {
	var sum float64
	n := 0
	for _, v := range window {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN(), 0
	}
	return sum / float64(n), n
}

// TrueRange per bar. The first bar has no previous close, so its range is
// simply high-low.
func TrueRange(bars []models.Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		tr := b.High - b.Low
		if i > 0 {
			pc := bars[i-1].Close
			tr = math.Max(tr, math.Max(math.Abs(b.High-pc), math.Abs(b.Low-pc)))
		}
		out[i] = tr
	}
	return out
}

// ATR is the rolling mean of the true range.
func ATR(bars []models.Bar, period int) []float64 {
	return RollingMean(TrueRange(bars), period)
}

// Bands returns mid ± mult*width for each index. NaN in either input gives NaN.
func Bands(mid, width []float64, mult float64) (upper, lower []float64) {
	upper = make([]float64, len(mid))
	lower = make([]float64, len(mid))
	for i := range mid {
		w := math.NaN()
		if i < len(width) {
			w = width[i]
		}
		upper[i] = mid[i] + mult*w
		lower[i] = mid[i] - mult*w
	}
	return upper, lower
}

// Bollinger bands: rolling mean ± mult rolling std.
func Bollinger(closes []float64, period int, mult float64) (upper, lower []float64) {
	return Bands(RollingMean(closes, period), RollingStd(closes, period), mult)
}

// Keltner channel: EMA(span) ± mult ATR(atrPeriod).
func Keltner(bars []models.Bar, span, atrPeriod int, mult float64) (upper, lower []float64) {
	return Bands(EMA(Closes(bars), span), ATR(bars, atrPeriod), mult)
}

// SupertrendLower is the basic lower Supertrend band: (high+low)/2 - mult*ATR.
func SupertrendLower(bars []models.Bar, atrPeriod int, mult float64) []float64 {
	atr := ATR(bars, atrPeriod)
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = (b.High+b.Low)/2 - mult*atr[i]
	}
	return out
}

func nanSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
