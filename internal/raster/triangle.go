// Package raster implements the triangle, line and point rasterizers of
// spec §4.3-4.5: fixed-point edge functions swept over a block hierarchy
// with trivial accept/reject, Bresenham line stepping (no diamond-exit
// rule; both endpoints are drawn), and single-fragment point rasterization.
package raster

import (
	"github.com/swr-go/swr/internal/fixedpoint"
	"github.com/swr-go/swr/internal/geometry"
)

// BlockSize is the edge length, in pixels, of one rasterizer block. The
// sweep recurses from a bounding box down to blocks of this size before
// falling back to per-pixel edge evaluation.
const BlockSize = 8

// Fragment is one shaded-ready sample the triangle sweep emits.
type Fragment struct {
	X, Y         int
	Depth        uint32
	RecipW       float32
	Varyings     [geometry.MaxVaryings * 4]float32
	VaryingCount int
	// FrontFacing is the winding the primitive assembler determined for
	// the triangle this fragment came from. Lines and standalone points
	// have no orientation concept and always report true.
	FrontFacing bool
}

// FragmentSink receives fragments as the sweep produces them.
type FragmentSink interface {
	Emit(f Fragment)
}

// edges holds the three fixed-point edge functions of a triangle plus
// the top-left fill-rule bias for each and the triangle's doubled area
// (used to normalize barycentric weights).
type edges struct {
	fn   [3]geometry.FxEdge
	bias [3]fixedpoint.BaryScale
	area fixedpoint.BaryScale
}

// setup computes the three edge functions for (v0,v1,v2) in screen
// (subpixel) space, their top-left fill-rule biases, and the signed area.
func setup(v0, v1, v2 [2]fixedpoint.Subpixel) edges {
	var e edges
	pairs := [3][2][2]fixedpoint.Subpixel{{v0, v1}, {v1, v2}, {v2, v0}}
	for i, p := range pairs {
		e.fn[i] = geometry.NewFxEdge(p[0], p[1])
		e.bias[i] = geometry.Bias(geometry.IsTopLeft(p[0], p[1]))
	}
	e.area = e.fn[0].C + e.fn[1].C + e.fn[2].C
	return e
}

// evalAt evaluates the three edge functions at the center of pixel (px,py).
func evalAt(e *edges, px, py int) [3]fixedpoint.BaryScale {
	var v [3]fixedpoint.BaryScale
	for i := 0; i < 3; i++ {
		v[i] = e.fn[i].At(px, py)
	}
	return v
}

// inside reports whether a set of edge values classifies a sample as
// covered: every bias-adjusted edge value must be strictly positive.
func inside(v, bias [3]fixedpoint.BaryScale) bool {
	for i := 0; i < 3; i++ {
		if v[i]+bias[i] <= 0 {
			return false
		}
	}
	return true
}

// Bounds is an inclusive pixel-space rectangle.
type Bounds struct {
	MinX, MinY, MaxX, MaxY int
}

// clampBounds intersects a triangle's bounding box with the given bounds
// (both expressed as inclusive pixel bounds).
func clampBounds(b, viewport Bounds) Bounds {
	if b.MinX < viewport.MinX {
		b.MinX = viewport.MinX
	}
	if b.MinY < viewport.MinY {
		b.MinY = viewport.MinY
	}
	if b.MaxX > viewport.MaxX {
		b.MaxX = viewport.MaxX
	}
	if b.MaxY > viewport.MaxY {
		b.MaxY = viewport.MaxY
	}
	return b
}

// VertexData is the per-vertex scalar payload the sweep interpolates:
// post-divide depth, reciprocal clip-w, and the varyings a vertex shader
// produced (already premultiplied by clip-w for perspective-correct
// channels, per spec §4.3 step 6).
type VertexData struct {
	Depth    uint32
	RecipW   float32
	Varyings []float32
	// Perspective marks, per varying component, whether it must be
	// divided by the interpolated reciprocal-w (smooth) or used as-is
	// (flat / no_perspective).
	Perspective []bool
}

// buildInterpolator derives the per-channel Linear2D gradients (RecipW
// and each varying component) from the triangle's edge functions and the
// three vertices' scalar values.
func buildInterpolator(e *edges, v0, v1, v2 VertexData) geometry.TriangleInterpolator {
	var ti geometry.TriangleInterpolator
	ti.RecipW = geometry.NewLerpedChannel(e.fn[1], e.fn[2], e.fn[0], e.area, v0.RecipW, v1.RecipW, v2.RecipW)
	n := len(v0.Varyings)
	if n > len(ti.Varyings) {
		n = len(ti.Varyings)
	}
	ti.VaryingCount = n
	for i := 0; i < n; i++ {
		ti.Varyings[i] = geometry.NewLerpedChannel(e.fn[1], e.fn[2], e.fn[0], e.area, v0.Varyings[i], v1.Varyings[i], v2.Varyings[i])
	}
	return ti
}

// Triangle sweeps the triangle (v0,v1,v2), already in viewport subpixel
// space, over viewport (the inclusive pixel bounds the caller passes; the
// scissor test is not applied here), emitting one Fragment per covered
// sample via sink. Either winding is accepted: a triangle with negative
// edge-function area has v1 and v2 swapped before the sweep.
//
// The sweep recurses through a block hierarchy: it walks BlockSize x
// BlockSize blocks across the bounding box, classifying each block as
// trivially outside (skip), trivially inside (emit every sample in the
// block without per-pixel edge tests) or partial (test each sample's
// three edge values individually), per spec §4.3's accept/reject scheme.
func Triangle(v0, v1, v2 [2]fixedpoint.Subpixel, d0, d1, d2 VertexData, frontFacing bool, viewport Bounds, sink FragmentSink) {
	e := setup(v0, v1, v2)
	if e.area < 0 {
		// Opposite winding: swap v1 and v2 (and their data) so the edge
		// functions are positive inside the triangle.
		v1, v2 = v2, v1
		d1, d2 = d2, d1
		e = setup(v0, v1, v2)
	}
	if e.area == 0 {
		// Degenerate; nothing to rasterize.
		return
	}

	bounds := clampBounds(boundingBox(v0, v1, v2), viewport)
	if bounds.MinX > bounds.MaxX || bounds.MinY > bounds.MaxY {
		return
	}

	interp := buildInterpolator(&e, d0, d1, d2)
	depth := [3]uint32{d0.Depth, d1.Depth, d2.Depth}
	perspective := d0.Perspective

	for by := bounds.MinY; by <= bounds.MaxY; by += BlockSize {
		blockMaxY := minInt(by+BlockSize-1, bounds.MaxY)
		for bx := bounds.MinX; bx <= bounds.MaxX; bx += BlockSize {
			blockMaxX := minInt(bx+BlockSize-1, bounds.MaxX)
			sweepBlock(&e, bx, by, blockMaxX, blockMaxY, depth, interp, perspective, frontFacing, sink)
		}
	}
}

// sweepBlock classifies and emits one block's worth of samples. It builds
// a geometry.Block per edge from the block's top-left corner value and
// the edge-function delta across the block's (possibly partial, at the
// bounding-box boundary) width and height, and classifies the block from
// a single GetCoverageMask call: if every corner fails one edge the block
// is trivially rejected; if every corner passes every edge the block is
// trivially covered; otherwise each sample is tested individually.
func sweepBlock(e *edges, minX, minY, maxX, maxY int, depth [3]uint32, interp geometry.TriangleInterpolator, perspective []bool, frontFacing bool, sink FragmentSink) {
	bw := fixedpoint.BaryScale(maxX - minX)
	bh := fixedpoint.BaryScale(maxY - minY)
	var blk geometry.Block
	for i := 0; i < 3; i++ {
		blk.Lambda[i] = e.fn[i].At(minX, minY) + e.bias[i]
		blk.StepX[i] = bw * e.fn[i].StepX
		blk.StepY[i] = bh * e.fn[i].StepY
	}
	mask := blk.GetCoverageMask()

	for edgeIdx := 0; edgeIdx < 3; edgeIdx++ {
		if geometry.AllNonPositive(mask, edgeIdx) {
			return // trivially rejected against this edge
		}
	}

	allIn := true
	for edgeIdx := 0; edgeIdx < 3; edgeIdx++ {
		if !geometry.AllPositive(mask, edgeIdx) {
			allIn = false
			break
		}
	}

	if allIn {
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				v := evalAt(e, x, y)
				emitFragment(x, y, v, e.area, depth, interp, perspective, frontFacing, sink)
			}
		}
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			v := evalAt(e, x, y)
			if inside(v, e.bias) {
				emitFragment(x, y, v, e.area, depth, interp, perspective, frontFacing, sink)
			}
		}
	}
}

// emitFragment converts raw edge values into normalized barycentric
// weights, interpolates depth linearly, evaluates the reciprocal-w and
// varying gradients at this pixel (applying the perspective divide where
// required), and hands the finished fragment to sink.
//
// Edges are ordered (v0v1),(v1v2),(v2v0), so v[1] (the v1v2 edge) carries
// the weight of the opposite vertex v0, v[2] carries v1's weight and
// v[0] carries v2's weight.
func emitFragment(x, y int, v [3]fixedpoint.BaryScale, area fixedpoint.BaryScale, depth [3]uint32, interp geometry.TriangleInterpolator, perspective []bool, frontFacing bool, sink FragmentSink) {
	areaF := float64(area)
	w0 := float64(v[1]) / areaF
	w1 := float64(v[2]) / areaF
	w2 := float64(v[0]) / areaF

	d := w0*float64(depth[0]) + w1*float64(depth[1]) + w2*float64(depth[2])

	recipW := interp.RecipW.At(x, y).Float32()

	var frag Fragment
	frag.X, frag.Y = x, y
	frag.Depth = uint32(d)
	frag.RecipW = recipW
	frag.FrontFacing = frontFacing
	frag.VaryingCount = interp.VaryingCount
	for i := 0; i < interp.VaryingCount; i++ {
		val := interp.Varyings[i].At(x, y).Float32()
		if i < len(perspective) && perspective[i] && recipW != 0 {
			val /= recipW
		}
		frag.Varyings[i] = val
	}
	sink.Emit(frag)
}

// boundingBox returns the inclusive pixel-space bounding box of the three
// subpixel vertices.
func boundingBox(v0, v1, v2 [2]fixedpoint.Subpixel) Bounds {
	minX := int(min3(v0[0], v1[0], v2[0]).Floor())
	minY := int(min3(v0[1], v1[1], v2[1]).Floor())
	maxX := int(max3(v0[0], v1[0], v2[0]).Floor())
	maxY := int(max3(v0[1], v1[1], v2[1]).Floor())
	return Bounds{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

func min3(a, b, c fixedpoint.Subpixel) fixedpoint.Subpixel {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c fixedpoint.Subpixel) fixedpoint.Subpixel {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
