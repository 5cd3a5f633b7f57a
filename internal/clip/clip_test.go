package clip

import (
	"testing"

	"github.com/swr-go/swr/internal/geometry"
	"github.com/swr-go/swr/internal/vecmath"
)

func vertexAt(x, y, z, w float32) geometry.Vertex {
	return geometry.Vertex{Coord: vecmath.Vec4{X: x, Y: y, Z: z, W: w}}
}

func TestTriangleFullyInsideUnchanged(t *testing.T) {
	v0 := vertexAt(0, 0, 0, 1)
	v1 := vertexAt(0.5, 0, 0, 1)
	v2 := vertexAt(0, 0.5, 0, 1)
	out := Triangle(v0, v1, v2)
	if len(out) != 3 {
		t.Fatalf("expected 3 vertices unchanged, got %d", len(out))
	}
	want := []geometry.Vertex{v0, v1, v2}
	for i := range want {
		if out[i].Coord != want[i].Coord {
			t.Errorf("vertex %d changed: got %+v want %+v", i, out[i].Coord, want[i].Coord)
		}
	}
}

func TestTriangleOverlappingFrustumProducesOutput(t *testing.T) {
	// All three vertices outside the frustum (each fails an x or y plane)
	// but the hull still straddles the view volume.
	v0 := vertexAt(2, 2, 0, 1)
	v1 := vertexAt(-2, 2, 0, 1)
	v2 := vertexAt(0, -2, 0, 1)
	out := Triangle(v0, v1, v2)
	if len(out) < 3 {
		t.Fatalf("expected a non-empty clipped polygon, got %d vertices", len(out))
	}
}

func TestTriangleAllOutsideSameSideProducesEmpty(t *testing.T) {
	v0 := vertexAt(2, 0, 0, 1)
	v1 := vertexAt(3, 0, 0, 1)
	v2 := vertexAt(2.5, 1, 0, 1)
	out := Triangle(v0, v1, v2)
	if out != nil {
		t.Errorf("expected nil, got %d vertices", len(out))
	}
}

func TestSharedEdgeDeterministic(t *testing.T) {
	// Two triangles sharing the edge (v1,v2); v1 inside, v2 outside x=w.
	v1 := vertexAt(0, 0, 0, 1)
	v2 := vertexAt(2, 0, 0, 1)
	a0 := vertexAt(0, 1, 0, 1)
	b0 := vertexAt(0, -1, 0, 1)

	outA := Triangle(a0, v1, v2)
	outB := Triangle(b0, v2, v1) // same edge, opposite order

	// Each clipped polygon has two crossings of x=w; the one on the
	// shared edge (v1,v2) is the one lying on y=0.
	findCrossing := func(poly []geometry.Vertex) vecmath.Vec4 {
		for _, v := range poly {
			if v.Flags&geometry.FlagInterpolated != 0 && v.Coord.Y == 0 {
				return v.Coord
			}
		}
		t.Fatalf("no interpolated vertex found")
		return vecmath.Vec4{}
	}
	ca := findCrossing(outA)
	cb := findCrossing(outB)
	if ca != cb {
		t.Errorf("shared edge crossing differs: %+v vs %+v", ca, cb)
	}
}

func TestFan(t *testing.T) {
	poly := []geometry.Vertex{vertexAt(0, 0, 0, 1), vertexAt(1, 0, 0, 1), vertexAt(1, 1, 0, 1), vertexAt(0, 1, 0, 1)}
	tris := Fan(poly)
	if len(tris) != 2 {
		t.Fatalf("expected 2 triangles from a quad fan, got %d", len(tris))
	}
}

func TestLineClipBothOutsideRejected(t *testing.T) {
	a := vertexAt(2, 0, 0, 1)
	b := vertexAt(3, 0, 0, 1)
	_, _, ok := Line(a, b)
	if ok {
		t.Errorf("expected line fully outside to be rejected")
	}
}

func TestPointClip(t *testing.T) {
	if !Point(vertexAt(0, 0, 0, 1)) {
		t.Errorf("expected origin point to survive clipping")
	}
	if Point(vertexAt(2, 0, 0, 1)) {
		t.Errorf("expected out-of-frustum point to be discarded")
	}
}

func TestEmptyInputYieldsEmptyOutput(t *testing.T) {
	if out := Fan(nil); out != nil {
		t.Errorf("expected nil for empty input, got %v", out)
	}
}
