// Package mathutils holds small float helpers shared by indicators and price formatting.
package mathutils

import (
	"math"
)

// PercDiff returns the percent change from prev to curr rounded to `decimals` places.
// decimals == -1 disables rounding. A zero prev yields 0.
func PercDiff(curr, prev float64, decimals int) float64 {
	if prev == 0 {
		return 0
	}
	diff := (curr - prev) / prev * 100
	if decimals == -1 {
		return diff
	}
	return Round(diff, decimals)
}

// Clamp caps 'val' within [minVal, maxVal].
func Clamp(val, minVal, maxVal float64) float64 {
	if val < minVal {
		return minVal
	} else if val > maxVal {
		return maxVal
	}
	return val
}

// Round rounds a float64 to the specified number of decimal places.
func Round(val float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(val*p) / p
}

// IsFinite reports whether val is neither NaN nor an infinity.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// AllFinite reports whether every value is finite, returning the index of the first offender.
func AllFinite(values []float64) (int, bool) {
	for i, v := range values {
		if !IsFinite(v) {
			return i, false
		}
	}
	return -1, true
}
