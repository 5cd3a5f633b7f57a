// Package clip implements the homogeneous-space clipper: spec §4.1's
// Sutherland-Hodgman-style pass against the w=epsilon plane followed by
// the six view-frustum planes +-x=w, +-y=w, +-z=w. It is structured the
// same way the teacher's internal/clip package walks a 2D polygon
// against a clip rectangle (test each vertex's sign, lerp when a
// consecutive pair disagrees) but operates on homogeneous 4-vectors
// instead of 2D points, and lerps every vertex attribute/varying instead
// of just position.
package clip

import "github.com/swr-go/swr/internal/geometry"

// Epsilon is the small positive bias used for the w=epsilon plane, to
// avoid a divide-by-zero at the later perspective divide.
const Epsilon = 1e-5

// plane identifies one of the seven clip planes in the fixed pass order
// spec §4.1 requires.
type plane int

const (
	planeW plane = iota
	planePosX
	planeNegX
	planePosY
	planeNegY
	planePosZ
	planeNegZ
)

var allPlanes = [...]plane{planeW, planePosX, planeNegX, planePosY, planeNegY, planePosZ, planeNegZ}

// distance returns d = w - axis*coord (or w + axis*coord) for the given
// plane, positive meaning "inside".
func distance(p plane, v *geometry.Vertex) float64 {
	w := float64(v.Coord.W)
	switch p {
	case planeW:
		return w - Epsilon
	case planePosX:
		return w - float64(v.Coord.X)
	case planeNegX:
		return w + float64(v.Coord.X)
	case planePosY:
		return w - float64(v.Coord.Y)
	case planeNegY:
		return w + float64(v.Coord.Y)
	case planePosZ:
		return w - float64(v.Coord.Z)
	case planeNegZ:
		return w + float64(v.Coord.Z)
	default:
		return 0
	}
}

// clipAgainstPlane runs one Sutherland-Hodgman pass of the polygon
// (already expressed as a closed vertex fan) against a single plane.
//
// For determinism when the same edge is visited from two adjacent
// triangles, the "inside" vertex is always named first in the lerp
// (spec §4.1): prev when prev is inside and curr is not, curr when curr
// is inside and prev is not. Either way t is computed as
// d_inside / (d_inside - d_outside), which is the same value regardless
// of which triangle produced the pair, since both d values only depend
// on the (shared) vertex data.
func clipAgainstPlane(p plane, in []geometry.Vertex) []geometry.Vertex {
	if len(in) == 0 {
		return nil
	}
	out := make([]geometry.Vertex, 0, len(in)+1)
	prev := in[len(in)-1]
	prevD := distance(p, &prev)
	prevIn := prevD >= 0

	for i := range in {
		curr := in[i]
		currD := distance(p, &curr)
		currIn := currD >= 0

		switch {
		case currIn && prevIn:
			out = append(out, curr)
		case currIn != prevIn:
			out = append(out, crossing(&prev, prevD, prevIn, &curr, currD))
			if currIn {
				out = append(out, curr)
			}
		default:
			// both outside: emit nothing
		}

		prev, prevD, prevIn = curr, currD, currIn
	}
	return out
}

// crossing interpolates the vertex at a plane crossing between prev and
// curr, always naming the inside vertex first: t = dIn / (dIn - dOut).
// Because dIn/dOut/inside are derived purely from each vertex's own sign
// (not from which one happens to be "prev" in this traversal), the same
// edge visited from the adjacent triangle -- where prev and curr swap
// roles -- computes the identical t and the identical interpolated
// vertex, bit for bit.
func crossing(prev *geometry.Vertex, prevD float64, prevIn bool, curr *geometry.Vertex, currD float64) geometry.Vertex {
	if prevIn {
		t := prevD / (prevD - currD)
		return geometry.Lerp(prev, curr, float32(t))
	}
	t := currD / (currD - prevD)
	return geometry.Lerp(curr, prev, float32(t))
}

// Mode selects what kind of primitive the clipped output should be
// reassembled into.
type Mode int

const (
	ModeTriangles Mode = iota
	ModeLines
	ModePoints
)

// Triangle clips a single triangle (three vertices) against all seven
// planes in sequence and returns the resulting convex polygon, which Fan
// expands into a triangle fan from its vertex 0. Returns nil when fewer
// than three vertices survive; a degenerate (zero-area) triangle inside
// the frustum is returned unchanged.
func Triangle(v0, v1, v2 geometry.Vertex) []geometry.Vertex {
	poly := []geometry.Vertex{v0, v1, v2}
	for _, p := range allPlanes {
		poly = clipAgainstPlane(p, poly)
		if len(poly) < 3 {
			return nil
		}
	}
	return poly
}

// Fan expands a clipped convex polygon into a triangle list, fanning
// from vertex 0 -- "output is emitted as a triangle fan from
// clipped[0]" per spec §4.1.
func Fan(poly []geometry.Vertex) [][3]geometry.Vertex {
	if len(poly) < 3 {
		return nil
	}
	tris := make([][3]geometry.Vertex, 0, len(poly)-2)
	for i := 1; i+1 < len(poly); i++ {
		tris = append(tris, [3]geometry.Vertex{poly[0], poly[i], poly[i+1]})
	}
	return tris
}

// Line clips a single line segment against all seven planes. Returns
// (v0, v1, true) if any portion of the segment survives, or a zero pair
// and false if it is clipped away entirely.
func Line(a, b geometry.Vertex) (geometry.Vertex, geometry.Vertex, bool) {
	for _, p := range allPlanes {
		da := distance(p, &a)
		db := distance(p, &b)
		aIn := da >= 0
		bIn := db >= 0
		switch {
		case aIn && bIn:
			// both survive this plane unchanged
		case !aIn && !bIn:
			return geometry.Vertex{}, geometry.Vertex{}, false
		case aIn && !bIn:
			t := da / (da - db)
			b = geometry.Lerp(&a, &b, float32(t))
		case !aIn && bIn:
			t := db / (db - da)
			a = geometry.Lerp(&b, &a, float32(t))
		}
	}
	return a, b, true
}

// Point clips a single point against all seven planes, returning false
// if it fails any of them.
func Point(v geometry.Vertex) bool {
	for _, p := range allPlanes {
		if distance(p, &v) < 0 {
			return false
		}
	}
	return true
}
