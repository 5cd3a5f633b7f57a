package geometry

import "github.com/swr-go/swr/internal/fixedpoint"

// EdgeFunctionF evaluates the float64 edge function area(p - v0, v1 - v0),
// the floating-point counterpart of FxEdge.
func EdgeFunctionF(v0, v1, p [2]float64) float64 {
	return (p[0]-v0[0])*(v1[1]-v0[1]) - (p[1]-v0[1])*(v1[0]-v0[0])
}

// FxEdge is a fixed-point edge function evaluator: E(p) = area(p - v0, v1 - v0)
// computed in 24.8 (BaryScale) units from 28.4 (Subpixel) vertex coordinates,
// plus the x/y step deltas needed to advance it incrementally.
type FxEdge struct {
	// C is the edge function's value at the center of pixel (0,0). It
	// does not include the fill-rule bias; see Bias.
	C fixedpoint.BaryScale
	// StepX, StepY are the per-subpixel-unit increments: advancing one
	// full pixel to the right adds StepX*16 in 28.4 terms, but since the
	// rasterizer walks whole pixels the step fields below are already
	// expressed per-pixel.
	StepX, StepY fixedpoint.BaryScale
}

// NewFxEdge builds the fixed-point edge function for the directed edge
// v0->v1, evaluated such that E(p) = (p.x-v0.x)*(v1.y-v0.y) - (p.y-v0.y)*(v1.x-v0.x).
//
// C is E evaluated at the center of pixel (0,0) rather than at the
// subpixel origin, and StepX/StepY are the deltas for moving one whole
// pixel right/down. That lets the rasterizer evaluate any pixel (px,py)
// as C + px*StepX + py*StepY using plain integer multiplication, with
// pixel-center sampling already baked in.
func NewFxEdge(v0, v1 [2]fixedpoint.Subpixel) FxEdge {
	a := v1[1] - v0[1] // dy
	b := v0[0] - v1[0] // -dx
	const onePixel = fixedpoint.Subpixel(fixedpoint.SubpixelOne)
	const halfPixel = fixedpoint.Subpixel(fixedpoint.SubpixelOne / 2)
	stepX := fixedpoint.MulSubpixel(a, onePixel)
	stepY := fixedpoint.MulSubpixel(b, onePixel)

	// C = a*(half - v0.x) + b*(half - v0.y), i.e. E at pixel (0,0)'s center.
	c := fixedpoint.Add(fixedpoint.MulSubpixel(a, halfPixel-v0[0]), fixedpoint.MulSubpixel(b, halfPixel-v0[1]))
	return FxEdge{C: c, StepX: stepX, StepY: stepY}
}

// At evaluates the edge function at the center of pixel (px,py).
func (e FxEdge) At(px, py int) fixedpoint.BaryScale {
	return e.C + fixedpoint.BaryScale(px)*e.StepX + fixedpoint.BaryScale(py)*e.StepY
}

// IsTopLeft reports whether the directed edge v0->v1 is a "top" edge
// (horizontal, pointing in +x) or a "left" edge (strictly decreasing y
// under CW winding), per spec §4.3's fill rule.
func IsTopLeft(v0, v1 [2]fixedpoint.Subpixel) bool {
	dy := v1[1] - v0[1]
	dx := v1[0] - v0[0]
	top := dy == 0 && dx > 0
	left := dy < 0
	return top || left
}

// Bias returns the fill-rule bias to add to an edge's constant term: +1
// (the smallest representable unit) for a top/left edge, zero otherwise.
// A pixel center falling exactly on a top/left edge (E==0) then reads as
// strictly positive ("inside"); falling exactly on any other edge it
// reads as zero, which the checked-mode fragment test treats as outside.
// This is what makes adjacent triangles sharing an edge produce exactly
// one fragment per covered pixel.
func Bias(topLeft bool) fixedpoint.BaryScale {
	if topLeft {
		return 1
	}
	return 0
}
