// Package geometry holds the per-vertex record, edge functions, the
// linear interpolators that advance attributes across a primitive, and
// the barycentric coordinate block used by the triangle sweep for
// trivial accept/reject classification.
package geometry

import "github.com/swr-go/swr/internal/vecmath"

// Limits mirror spec §3's invariants on attribute/varying counts.
const (
	MaxAttributes = 16
	MaxVaryings   = 32
)

// Flags are the per-vertex bit flags named in spec §3's data model.
type Flags uint8

const (
	// FlagStripEnd marks the last vertex of a reconstructed line strip.
	FlagStripEnd Flags = 1 << iota
	// FlagClipDiscard marks a vertex that failed the visibility inequality
	// -w <= x,y,z <= w, w > 0.
	FlagClipDiscard
	// FlagInterpolated marks a vertex introduced by the clipper (as
	// opposed to one sourced directly from the vertex buffer).
	FlagInterpolated
)

// Vertex is the per-vertex record that flows from the vertex shader
// through clipping, assembly and rasterization.
type Vertex struct {
	// Coord is the clip-space position after the vertex shader runs, and
	// the viewport-space position after the perspective divide + viewport
	// transform.
	Coord vecmath.Vec4

	// Attribs holds the vertex shader's inputs, sourced from the bound
	// attribute buffers. Only the first AttribCount entries are valid.
	Attribs    [MaxAttributes]vecmath.Vec4
	AttribCount int

	// Varyings holds the vertex shader's outputs, one per program
	// varying. Only the first VaryingCount entries are valid.
	Varyings    [MaxVaryings]vecmath.Vec4
	VaryingCount int

	Flags Flags
}

// Visible reports whether the vertex satisfies spec §3's visibility
// inequality: -w <= x,y,z <= w and w > 0.
func (v *Vertex) Visible() bool {
	w := v.Coord.W
	if w <= 0 {
		return false
	}
	c := v.Coord
	return c.X >= -w && c.X <= w && c.Y >= -w && c.Y <= w && c.Z >= -w && c.Z <= w
}

// Lerp returns a new vertex whose coordinate and every attribute/varying
// is linearly interpolated between a and b at parameter t. Used both by
// the clipper (to introduce a new vertex at a plane crossing) and by the
// line rasterizer's endpoint-shift step.
func Lerp(a, b *Vertex, t float32) Vertex {
	out := Vertex{
		Coord:        vecmath.Lerp(a.Coord, b.Coord, t),
		AttribCount:  a.AttribCount,
		VaryingCount: a.VaryingCount,
		Flags:        FlagInterpolated,
	}
	for i := 0; i < a.AttribCount; i++ {
		out.Attribs[i] = vecmath.Lerp(a.Attribs[i], b.Attribs[i], t)
	}
	for i := 0; i < a.VaryingCount; i++ {
		out.Varyings[i] = vecmath.Lerp(a.Varyings[i], b.Varyings[i], t)
	}
	return out
}
