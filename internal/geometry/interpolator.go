package geometry

import "github.com/swr-go/swr/internal/fixedpoint"

// Linear2D is a 2D linear interpolator in 24.8 fixed point: value(x,y) =
// Base + x*StepX + y*StepY, evaluated at pixel centers. It is the
// fine-grained per-pixel form of a barycentric lambda (spec §4.3 step 5)
// and is also reused, one instance per varying/depth/recip-w channel, as
// the building block of TriangleInterpolator.
type Linear2D struct {
	Value          fixedpoint.BaryScale
	StepX, StepY   fixedpoint.BaryScale
}

// StepRight advances the interpolator one pixel to the right.
func (l *Linear2D) StepRight() { l.Value += l.StepX }

// StepDown advances the interpolator to the start of the next row, given
// the number of pixels stepped back to return to the row's first column.
func (l *Linear2D) StepDown(pixelsBack int32) {
	l.Value += l.StepY - fixedpoint.BaryScale(pixelsBack)*l.StepX
}

// At evaluates the interpolator at pixel (px,py), relative to the pixel
// its Value was anchored at (0,0).
func (l Linear2D) At(px, py int) fixedpoint.BaryScale {
	return l.Value + fixedpoint.BaryScale(px)*l.StepX + fixedpoint.BaryScale(py)*l.StepY
}

// NewLerpedChannel builds the Linear2D gradient for one scalar channel
// (depth, reciprocal-w, or a single varying component) of a triangle,
// given the triangle's three edge functions -- ordered edgeV1V2, edgeV2V0,
// edgeV0V1 so that edgeV1V2 carries the barycentric weight of v0,
// edgeV2V0 carries v1's weight and edgeV0V1 carries v2's weight, matching
// the sweep's edge ordering (v0v1),(v1v2),(v2v0) -- the triangle's
// doubled area, and the channel's value at each of the three vertices.
//
// Because each edge function is itself affine in pixel coordinates, the
// barycentric-weighted sum is too: this computes that sum's gradient
// once per triangle instead of re-deriving barycentric weights at every
// covered pixel.
func NewLerpedChannel(edgeV1V2, edgeV2V0, edgeV0V1 FxEdge, area fixedpoint.BaryScale, val0, val1, val2 float32) Linear2D {
	areaF := float64(area)
	value := (float64(val0)*float64(edgeV1V2.C) + float64(val1)*float64(edgeV2V0.C) + float64(val2)*float64(edgeV0V1.C)) / areaF
	stepX := (float64(val0)*float64(edgeV1V2.StepX) + float64(val1)*float64(edgeV2V0.StepX) + float64(val2)*float64(edgeV0V1.StepX)) / areaF
	stepY := (float64(val0)*float64(edgeV1V2.StepY) + float64(val1)*float64(edgeV2V0.StepY) + float64(val2)*float64(edgeV0V1.StepY)) / areaF
	return Linear2D{
		Value: fixedpoint.FromFloatBary(float32(value)),
		StepX: fixedpoint.FromFloatBary(float32(stepX)),
		StepY: fixedpoint.FromFloatBary(float32(stepY)),
	}
}

// Linear1D is a 1D linear interpolator used by the line rasterizer to
// advance depth, reciprocal-w and varyings in lockstep along a Bresenham
// walk.
type Linear1D struct {
	Value fixedpoint.BaryScale
	Step  fixedpoint.BaryScale
}

// NewLinear1D builds an interpolator from start to end over n steps.
func NewLinear1D(start, end fixedpoint.BaryScale, n int) Linear1D {
	if n <= 0 {
		return Linear1D{Value: start}
	}
	return Linear1D{Value: start, Step: (end - start) / fixedpoint.BaryScale(n)}
}

// Advance steps the interpolator forward by one unit.
func (l *Linear1D) Advance() { l.Value += l.Step }

// TriangleInterpolator holds every quantity that must be advanced
// per-pixel across a triangle: depth, reciprocal clip-w, and one Linear2D
// per varying slot (premultiplied by clip-w for smooth varyings, constant
// -- step 0 -- for flat ones, matching spec §4.3 step 6).
type TriangleInterpolator struct {
	Depth    Linear2D
	RecipW   Linear2D
	Varyings [MaxVaryings * 4]Linear2D // up to 4 components (x,y,z,w) per varying
	VaryingCount int
}

// Clone returns an independent copy, used when a worker task needs its
// own mutable snapshot so it never shares state with the producer thread
// or with other workers (spec §5).
func (t *TriangleInterpolator) Clone() TriangleInterpolator {
	return *t
}
