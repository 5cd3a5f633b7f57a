// Package fixedpoint implements the two fixed-point formats used throughout
// the rasterizer: a 28.4 format for subpixel screen coordinates and a 24.8
// format for barycentric and edge-function intermediates. Both are thin,
// strongly-typed wrappers around int32 so the two scales are never mixed by
// accident.
package fixedpoint

// Subpixel is a 28.4 fixed-point scalar: 4 fractional bits, matching the
// rasterizer's subpixel grid.
type Subpixel int32

// SubpixelShift is the number of fractional bits in Subpixel.
const SubpixelShift = 4

// SubpixelOne is the value of 1.0 in Subpixel units.
const SubpixelOne = 1 << SubpixelShift

// FromFloatSubpixel converts a float32 window coordinate to Subpixel,
// saturating on overflow rather than wrapping.
func FromFloatSubpixel(v float32) Subpixel {
	scaled := v * SubpixelOne
	switch {
	case scaled > float32(1<<30):
		return Subpixel(1 << 30)
	case scaled < float32(-(1 << 30)):
		return Subpixel(-(1 << 30))
	default:
		return Subpixel(int32(scaled))
	}
}

// Float32 converts a Subpixel value back to float32.
func (s Subpixel) Float32() float32 {
	return float32(s) / SubpixelOne
}

// Floor returns the integer pixel the subpixel coordinate falls in.
func (s Subpixel) Floor() int32 {
	return int32(s) >> SubpixelShift
}

// Round rounds to the nearest whole pixel (ties round toward +inf,
// matching the block-corner rounding the sweep rasterizer needs).
func (s Subpixel) Round() int32 {
	return (int32(s) + SubpixelOne/2) >> SubpixelShift
}

// BaryScale is a 24.8 fixed-point scalar used for edge functions and
// unnormalized barycentric coordinates. One multiplication of two Subpixel
// values (28.4 x 28.4) naturally produces a BaryScale (24.8) result with no
// shift.
type BaryScale int32

// BaryShift is the number of fractional bits in BaryScale.
const BaryShift = 8

// BaryOne is the value of 1.0 in BaryScale units.
const BaryOne = 1 << BaryShift

// MulSubpixel multiplies two Subpixel (28.4) values, producing a BaryScale
// (24.8) result: the product of two values with 4 fractional bits has 8
// fractional bits, so it is already 24.8 (the high bits are discarded
// deliberately -- edge function magnitudes for on-screen geometry never
// approach the 24-bit integer range).
func MulSubpixel(a, b Subpixel) BaryScale {
	return BaryScale(int64(a) * int64(b))
}

// FromInt32Bary constructs a BaryScale from a whole-number value.
func FromInt32Bary(v int32) BaryScale {
	return BaryScale(v << BaryShift)
}

// FromFloatBary converts a float32 to BaryScale, saturating on overflow.
func FromFloatBary(v float32) BaryScale {
	scaled := v * BaryOne
	switch {
	case scaled > float32(1<<30):
		return BaryScale(1 << 30)
	case scaled < float32(-(1 << 30)):
		return BaryScale(-(1 << 30))
	default:
		return BaryScale(int32(scaled))
	}
}

// Float32 converts a BaryScale value back to float32.
func (b BaryScale) Float32() float32 {
	return float32(b) / BaryOne
}

// Lerp performs 24.8 fixed-point linear interpolation: a + (b-a)*t/256,
// where t is itself expressed in BaryScale units (t=BaryOne means "all b").
func Lerp(a, b BaryScale, t BaryScale) BaryScale {
	delta := int64(b) - int64(a)
	return a + BaryScale((delta*int64(t))>>BaryShift)
}

// Add, Sub and Mul by an integer step are plain int32 arithmetic -- exposed
// as free functions (rather than methods that would hide overflow behavior)
// since callers advance these values millions of times per frame in the
// sweep's inner loops and want the operation visible at the call site.
func Add(a, b BaryScale) BaryScale { return a + b }
func Sub(a, b BaryScale) BaryScale { return a - b }
