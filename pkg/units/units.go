// Package units provides the length and angle conversions shared by the
// fitment engine, plus small generic numeric helpers.
package units

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Conversion factors.
const (
	MMPerInch     = 25.4
	MetersPerInch = 0.0254
	MMPerMeter    = 1000.0
)

// InchToMM converts inches to millimeters.
func InchToMM(in float64) float64 {
	return in * MMPerInch
}

// MMToInch converts millimeters to inches.
func MMToInch(mm float64) float64 {
	return mm / MMPerInch
}

// InchToMeter converts inches to meters.
func InchToMeter(in float64) float64 {
	return in * MetersPerInch
}

// MeterToInch converts meters to inches.
func MeterToInch(m float64) float64 {
	return m / MetersPerInch
}

// MMToMeter converts millimeters to meters.
func MMToMeter(mm float64) float64 {
	return mm / MMPerMeter
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return math.Pi * deg / 180
}

// Clamp returns v clamped to [low, high].
func Clamp[T constraints.Ordered](v, low, high T) T {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// Lerp interpolates between a and b. t is not clamped.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}
