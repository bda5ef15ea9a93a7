// Package grid implements exact-decimal arithmetic on the ITU-T flexible
// DWDM frequency grid. All rounding and snapping runs on decimal values so
// that half-step boundaries resolve the same way on every platform; binary
// floats only appear at the wire boundary.
package grid

import "github.com/shopspring/decimal"

// Grid steps in THz.
var (
	// Step12G5 is the 12.5 GHz step used for band edges.
	Step12G5 = decimal.RequireFromString("0.0125")
	// Step6G25 is the 6.25 GHz step used for channel centers.
	Step6G25 = decimal.RequireFromString("0.00625")
)

// sliceGHz is the bandwidth of one grid slice.
var sliceGHz = decimal.RequireFromString("12.5")

var thousand = decimal.NewFromInt(1000)

// Places is the fractional digit count carried at presentation boundaries.
const Places int32 = 5

// FromFloat converts a float64 into its shortest round-tripping decimal
// representation, so 193.975 enters the decimal domain as exactly 193.975
// rather than its nearest binary neighbor.
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// Quantize rounds d to places fractional digits using round-half-up
// (ties away from zero), matching the rounding rule of the grid standard.
func Quantize(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Round(places)
}

// Round5 quantizes d to five fractional digits and returns it as a float64
// for serialization.
func Round5(d decimal.Decimal) float64 {
	return d.Round(Places).InexactFloat64()
}

// Snap returns the multiple of step nearest to v, with half-way values
// rounding to the grid point of larger magnitude.
func Snap(v, step decimal.Decimal) decimal.Decimal {
	k := v.Div(step).Round(0)
	return k.Mul(step)
}

// Width returns the bandwidth of a channel occupying slices grid slices,
// in THz.
func Width(slices int) decimal.Decimal {
	return decimal.NewFromInt(int64(slices)).Mul(sliceGHz).Div(thousand)
}

// WidthGHz is the nominal channel width in GHz. Both accepted slice counts
// yield values exactly representable in a float64.
func WidthGHz(slices int) float64 {
	return 12.5 * float64(slices)
}
