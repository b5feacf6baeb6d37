package tui

import "math"

// sparklineChars maps levels 0..7 to Unicode block elements ▁▂▃▄▅▆▇█.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline renders values as a sparkline, normalizing to the finite
// min/max of the series. Non-finite samples (the closed forms produce NaN at
// the singularity) render as a space so the gap stays visible.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo > hi {
		// No finite sample at all.
		blank := make([]rune, len(values))
		for i := range blank {
			blank[i] = ' '
		}
		return string(blank)
	}

	span := hi - lo
	runes := make([]rune, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			runes[i] = ' '
			continue
		}
		level := 0
		if span > 0 {
			level = int((v - lo) / span * 7.0)
		}
		if level > 7 {
			level = 7
		}
		runes[i] = sparklineChars[level]
	}
	return string(runes)
}

// Downsample reduces values to at most width samples by striding, keeping the
// first and last points. It returns the input unchanged when it already fits.
func Downsample(values []float64, width int) []float64 {
	if width <= 0 || len(values) <= width {
		return values
	}
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		idx := i * (len(values) - 1) / (width - 1)
		out[i] = values[idx]
	}
	return out
}
