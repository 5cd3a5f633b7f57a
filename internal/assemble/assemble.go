// Package assemble implements the primitive assembler and culler of
// spec §4.2: face-orientation testing, front/back/front-and-back
// culling, and line-strip reconstruction after clipping for
// poly_mode=line triangles and line_list primitives.
package assemble

import "github.com/swr-go/swr/internal/geometry"

// FrontFace selects which winding order is considered front-facing.
type FrontFace int

const (
	FrontFaceCW FrontFace = iota
	FrontFaceCCW
)

// CullMode selects which orientation(s) to discard.
type CullMode int

const (
	CullNone CullMode = iota
	CullFront
	CullBack
	CullFrontAndBack
)

// Orientation is the result of the face test on one triangle.
type Orientation int

const (
	Front Orientation = iota
	Back
)

// signedArea computes twice the signed area of the 2D viewport
// parallelogram (v2-v1) x (v3-v1).
func signedArea(v1, v2, v3 geometry.Vertex) float64 {
	ax := float64(v2.Coord.X - v1.Coord.X)
	ay := float64(v2.Coord.Y - v1.Coord.Y)
	bx := float64(v3.Coord.X - v1.Coord.X)
	by := float64(v3.Coord.Y - v1.Coord.Y)
	return ax*by - ay*bx
}

// OrientTriangle returns the triangle's orientation under the given
// front-face convention.
func OrientTriangle(v1, v2, v3 geometry.Vertex, front FrontFace) Orientation {
	area := signedArea(v1, v2, v3)
	isCW := area < 0
	if front == FrontFaceCW {
		if isCW {
			return Front
		}
		return Back
	}
	if !isCW {
		return Front
	}
	return Back
}

// CullTriangle reports whether the triangle should be rejected given the
// current culling state.
func CullTriangle(o Orientation, enabled bool, mode CullMode) bool {
	if !enabled {
		return false
	}
	if mode == CullFrontAndBack {
		return true
	}
	if mode == CullFront && o == Front {
		return true
	}
	if mode == CullBack && o == Back {
		return true
	}
	return false
}

// Triangle is one assembled, accepted triangle ready for the rasterizer.
type Triangle struct {
	V0, V1, V2 geometry.Vertex
	FrontFacing bool
}

// AssembleTriangles walks a clipped triangle list (already expanded into
// independent triples, e.g. via clip.Fan) and returns the subset that
// survives culling, each tagged with its front-facing flag.
func AssembleTriangles(tris [][3]geometry.Vertex, front FrontFace, cullEnabled bool, mode CullMode) []Triangle {
	out := make([]Triangle, 0, len(tris))
	for _, tri := range tris {
		o := OrientTriangle(tri[0], tri[1], tri[2], front)
		if CullTriangle(o, cullEnabled, mode) {
			continue
		}
		v0, v1, v2 := tri[0], tri[1], tri[2]
		if o == Back {
			// Swap two vertices of a back-facing (opposite-winding)
			// triangle so every assembled triangle has the same
			// winding; this does not change which pixels it covers.
			// raster.Triangle accepts either winding.
			v1, v2 = v2, v1
		}
		out = append(out, Triangle{V0: v0, V1: v1, V2: v2, FrontFacing: o == Front})
	}
	return out
}

// Segment is one line segment ready for the line rasterizer.
type Segment struct {
	V0, V1 geometry.Vertex
}

// AssembleLineStrip cuts a clipped vertex list into strips at
// FlagStripEnd markers and, for each non-empty strip of length N, emits N
// segments including the closing edge. A convexity/orientation check on
// the whole strip is used for culling (non-convex or degenerate strips
// are dropped); strips shorter than 3 vertices are passed straight
// through uncullable (there is no area to test).
func AssembleLineStrip(verts []geometry.Vertex, cullEnabled bool, mode CullMode, front FrontFace) []Segment {
	var out []Segment
	start := 0
	for i := 0; i < len(verts); i++ {
		if verts[i].Flags&geometry.FlagStripEnd == 0 {
			continue
		}
		strip := verts[start : i+1]
		start = i + 1
		out = append(out, stripSegments(strip, cullEnabled, mode, front)...)
	}
	if start < len(verts) {
		out = append(out, stripSegments(verts[start:], cullEnabled, mode, front)...)
	}
	return out
}

func stripSegments(strip []geometry.Vertex, cullEnabled bool, mode CullMode, front FrontFace) []Segment {
	n := len(strip)
	if n == 0 {
		return nil
	}
	if n >= 3 && cullEnabled {
		if !isConvex(strip) {
			return nil
		}
		o := OrientTriangle(strip[0], strip[1], strip[2], front)
		if CullTriangle(o, cullEnabled, mode) {
			return nil
		}
	}
	segs := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		segs = append(segs, Segment{V0: strip[i], V1: strip[j]})
	}
	return segs
}

// isConvex reports whether the polygon's consecutive cross products all
// share the same sign.
func isConvex(strip []geometry.Vertex) bool {
	n := len(strip)
	if n < 3 {
		return true
	}
	var sign float64
	for i := 0; i < n; i++ {
		a := strip[i]
		b := strip[(i+1)%n]
		c := strip[(i+2)%n]
		area := signedArea(a, b, c)
		if area == 0 {
			continue
		}
		if sign == 0 {
			sign = area
		} else if (sign > 0) != (area > 0) {
			return false
		}
	}
	return true
}
