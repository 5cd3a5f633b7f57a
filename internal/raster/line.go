package raster

import (
	"github.com/swr-go/swr/internal/fixedpoint"
	"github.com/swr-go/swr/internal/geometry"
)

// Line rasterizes the segment (x0,y0)-(x1,y1), given in viewport pixel
// space, via integer Bresenham stepping, emitting one pixel per step of
// the major axis from the first endpoint to the last, both inclusive
// (pixels outside viewport are skipped). The diamond-exit rule is not
// applied, so both endpoint pixels are always drawn. Depth,
// reciprocal-w and varyings are interpolated linearly along the steps.
func Line(x0, y0, x1, y1 int, d0, d1 VertexData, viewport Bounds, sink FragmentSink) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
		d0, d1 = d1, d0
	}

	dx := x1 - x0
	dy := y1 - y0
	yStep := 1
	ady := dy
	if dy < 0 {
		yStep = -1
		ady = -dy
	}

	n := dx
	recipW := geometry.NewLinear1D(fixedpoint.FromFloatBary(d0.RecipW), fixedpoint.FromFloatBary(d1.RecipW), n)
	varN := len(d0.Varyings)
	varyings := make([]geometry.Linear1D, varN)
	for i := 0; i < varN; i++ {
		varyings[i] = geometry.NewLinear1D(fixedpoint.FromFloatBary(d0.Varyings[i]), fixedpoint.FromFloatBary(d1.Varyings[i]), n)
	}

	err := ady * 2 - dx
	y := y0

	for i := 0; i <= dx; i++ {
		px, py := x0+i, y
		if steep {
			px, py = py, px
		}
		if inViewport(px, py, viewport) {
			emitLineSample(px, py, i, n, d0, d1, recipW, varyings, sink)
		}
		recipW.Advance()
		for j := range varyings {
			varyings[j].Advance()
		}
		if err > 0 {
			// Step the minor axis once the accumulated error crosses
			// the midpoint into the next row.
			y += yStep
			err -= dx * 2
		}
		err += ady * 2
	}
}

// emitLineSample always reports the fragment as front-facing: a line
// segment has no winding order to derive orientation from.
func emitLineSample(px, py, i, n int, d0, d1 VertexData, recipW geometry.Linear1D, varyings []geometry.Linear1D, sink FragmentSink) {
	t := float64(0)
	if n > 0 {
		t = float64(i) / float64(n)
	}
	depth := uint32(float64(d0.Depth) + t*(float64(d1.Depth)-float64(d0.Depth)))

	var frag Fragment
	frag.X, frag.Y = px, py
	frag.Depth = depth
	frag.RecipW = recipW.Value.Float32()
	frag.FrontFacing = true
	frag.VaryingCount = len(varyings)
	for i, v := range varyings {
		val := v.Value.Float32()
		if i < len(d0.Perspective) && d0.Perspective[i] && frag.RecipW != 0 {
			val /= frag.RecipW
		}
		frag.Varyings[i] = val
	}
	sink.Emit(frag)
}

func inViewport(x, y int, b Bounds) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Point rasterizes a single pixel-space sample as one fragment, per spec
// §4.5. frontFacing carries the provoking triangle's winding when a
// triangle is being rasterized in poly_mode = point; standalone point
// primitives have no orientation and pass true.
func Point(x, y int, d VertexData, frontFacing bool, viewport Bounds, sink FragmentSink) {
	if !inViewport(x, y, viewport) {
		return
	}
	var frag Fragment
	frag.X, frag.Y = x, y
	frag.Depth = d.Depth
	frag.RecipW = d.RecipW
	frag.FrontFacing = frontFacing
	frag.VaryingCount = len(d.Varyings)
	for i, val := range d.Varyings {
		if i < len(d.Perspective) && d.Perspective[i] && frag.RecipW != 0 {
			val /= frag.RecipW
		}
		frag.Varyings[i] = val
	}
	sink.Emit(frag)
}
