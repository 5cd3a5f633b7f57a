package assemble

import (
	"testing"

	"github.com/swr-go/swr/internal/geometry"
	"github.com/swr-go/swr/internal/vecmath"
)

func vertexAt(x, y float32) geometry.Vertex {
	return geometry.Vertex{Coord: vecmath.Vec4{X: x, Y: y, Z: 0, W: 1}}
}

func TestOrientTriangleCCW(t *testing.T) {
	// Counter-clockwise in screen space (y-down doesn't matter here, just consistency).
	v0 := vertexAt(0, 0)
	v1 := vertexAt(1, 0)
	v2 := vertexAt(0, 1)
	o := OrientTriangle(v0, v1, v2, FrontFaceCCW)
	if o != Front {
		t.Errorf("expected CCW triangle to be Front under FrontFaceCCW, got %v", o)
	}
	o2 := OrientTriangle(v0, v1, v2, FrontFaceCW)
	if o2 != Back {
		t.Errorf("expected CCW triangle to be Back under FrontFaceCW, got %v", o2)
	}
}

func TestCullTriangleModes(t *testing.T) {
	if CullTriangle(Front, false, CullBack) {
		t.Errorf("culling disabled should never reject")
	}
	if !CullTriangle(Front, true, CullFrontAndBack) {
		t.Errorf("CullFrontAndBack should reject everything")
	}
	if !CullTriangle(Front, true, CullFront) {
		t.Errorf("CullFront should reject a front-facing triangle")
	}
	if CullTriangle(Front, true, CullBack) {
		t.Errorf("CullBack should not reject a front-facing triangle")
	}
}

func TestAssembleTrianglesSwapsBackFacing(t *testing.T) {
	v0 := vertexAt(0, 0)
	v1 := vertexAt(0, 1)
	v2 := vertexAt(1, 0)
	// Under CCW-front convention this winding (0,0)->(0,1)->(1,0) is CW, i.e. back-facing.
	tris := [][3]geometry.Vertex{{v0, v1, v2}}
	out := AssembleTriangles(tris, FrontFaceCCW, false, CullNone)
	if len(out) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(out))
	}
	if out[0].FrontFacing {
		t.Errorf("expected triangle to be reported back-facing")
	}
	if out[0].V1.Coord != v2.Coord || out[0].V2.Coord != v1.Coord {
		t.Errorf("expected v1/v2 swapped for back-facing triangle, got v1=%+v v2=%+v", out[0].V1.Coord, out[0].V2.Coord)
	}
}

func TestAssembleTrianglesCulling(t *testing.T) {
	v0 := vertexAt(0, 0)
	v1 := vertexAt(1, 0)
	v2 := vertexAt(0, 1)
	tris := [][3]geometry.Vertex{{v0, v1, v2}}
	out := AssembleTriangles(tris, FrontFaceCCW, true, CullFront)
	if len(out) != 0 {
		t.Errorf("expected front-facing triangle to be culled, got %d", len(out))
	}
}

func TestAssembleLineStripSegmentCount(t *testing.T) {
	verts := []geometry.Vertex{vertexAt(0, 0), vertexAt(1, 0), vertexAt(1, 1)}
	verts[2].Flags |= geometry.FlagStripEnd
	segs := AssembleLineStrip(verts, false, CullNone, FrontFaceCCW)
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments (closed strip), got %d", len(segs))
	}
}

func TestAssembleLineStripMultipleStrips(t *testing.T) {
	verts := []geometry.Vertex{
		vertexAt(0, 0), vertexAt(1, 0),
		vertexAt(2, 2), vertexAt(3, 2),
	}
	verts[1].Flags |= geometry.FlagStripEnd
	verts[3].Flags |= geometry.FlagStripEnd
	segs := AssembleLineStrip(verts, false, CullNone, FrontFaceCCW)
	if len(segs) != 4 {
		t.Fatalf("expected 2 segments per 2-vertex strip (closed), got %d", len(segs))
	}
}

func TestIsConvexTriangleAlwaysConvex(t *testing.T) {
	strip := []geometry.Vertex{vertexAt(0, 0), vertexAt(1, 0), vertexAt(0, 1)}
	if !isConvex(strip) {
		t.Errorf("expected a triangle to always be convex")
	}
}

func TestIsConvexRejectsNonConvex(t *testing.T) {
	// A simple non-convex quad ("arrow" / chevron shape).
	strip := []geometry.Vertex{vertexAt(0, 0), vertexAt(2, 1), vertexAt(0, 2), vertexAt(1, 1)}
	if isConvex(strip) {
		t.Errorf("expected chevron quad to be detected as non-convex")
	}
}
