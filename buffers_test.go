package swr

import (
	"testing"

	"github.com/swr-go/swr/internal/shaderreg"
	"github.com/swr-go/swr/internal/vecmath"
)

func TestVertexBufferCreateDelete(t *testing.T) {
	ctx := NewContext(4, 4)
	id := ctx.CreateVertexBuffer([]vecmath.Vec4{{X: 1, W: 1}})
	if id == 0 {
		t.Fatalf("CreateVertexBuffer returned reserved handle 0")
	}
	ctx.BindVertexBuffer(id)
	ctx.DeleteVertexBuffer(id)
	ctx.DrawArrays(Triangles, 1)
	if err := ctx.GetError(); err != InvalidOperation {
		t.Errorf("GetError() after drawing with deleted buffer = %v, want InvalidOperation", err)
	}
}

func TestIndexBufferCreateDelete(t *testing.T) {
	ctx := NewContext(4, 4)
	id := ctx.CreateIndexBuffer([]uint32{0, 1, 2})
	if id == 0 {
		t.Fatalf("CreateIndexBuffer returned reserved handle 0")
	}
	ctx.DeleteIndexBuffer(id)
	vb := ctx.CreateVertexBuffer([]vecmath.Vec4{{W: 1}})
	ctx.BindVertexBuffer(vb)
	ctx.DrawIndexed(Triangles, id)
	if err := ctx.GetError(); err != InvalidOperation {
		t.Errorf("GetError() after indexing with deleted buffer = %v, want InvalidOperation", err)
	}
}

func TestBindAttributeRejectsOutOfRangeSlot(t *testing.T) {
	ctx := NewContext(4, 4)
	ctx.BindAttribute(-1, 1)
	if err := ctx.GetError(); err != InvalidValue {
		t.Errorf("GetError() = %v, want InvalidValue", err)
	}
	ctx.BindAttribute(maxAttributeSlots, 1)
	if err := ctx.GetError(); err != InvalidValue {
		t.Errorf("GetError() = %v, want InvalidValue", err)
	}
}

func TestAttributeBufferAtReportsStaleHandle(t *testing.T) {
	ctx := NewContext(4, 4)
	buf, ok := ctx.attributeBufferAt(12345)
	if ok || buf != nil {
		t.Fatalf("attributeBufferAt(stale) = (%v, %v), want (nil, false)", buf, ok)
	}
	if err := ctx.GetError(); err != InvalidOperation {
		t.Errorf("GetError() = %v, want InvalidOperation", err)
	}
}

func TestAttributeBufferAtZeroHandleIsSilent(t *testing.T) {
	ctx := NewContext(4, 4)
	buf, ok := ctx.attributeBufferAt(0)
	if ok || buf != nil {
		t.Fatalf("attributeBufferAt(0) = (%v, %v), want (nil, false)", buf, ok)
	}
	if err := ctx.GetError(); err != NoError {
		t.Errorf("GetError() = %v, want NoError for the unbound slot 0", err)
	}
}

func TestBindAttributeFeedsVertexShader(t *testing.T) {
	ctx := NewContext(4, 4)
	positions := ctx.CreateVertexBuffer([]vecmath.Vec4{{X: -1, Y: -1, W: 1}})
	colors := ctx.CreateAttributeBuffer([]vecmath.Vec4{{X: 1, Y: 2, Z: 3, W: 4}})
	ctx.BindVertexBuffer(positions)
	ctx.BindAttribute(1, colors)

	var gotColor vecmath.Vec4
	vertex := func(attribs []vecmath.Vec4, _ *shaderreg.UniformTable) (vecmath.Vec4, []vecmath.Vec4) {
		if len(attribs) > 1 {
			gotColor = attribs[1]
		}
		return attribs[0], nil
	}
	prog := ctx.CreateProgram(&shaderreg.Program{
		Vertex:   vertex,
		Fragment: func(_ vecmath.Vec4, _ bool, _ []float32, depth float32, _ *shaderreg.UniformTable) ([4]float32, float32, bool) {
			return [4]float32{}, depth, true
		},
	})
	ctx.UseProgram(prog)
	ctx.DrawArrays(Points, 1)
	ctx.Present()

	if gotColor != (vecmath.Vec4{X: 1, Y: 2, Z: 3, W: 4}) {
		t.Errorf("vertex shader saw attrib slot 1 = %+v, want {1 2 3 4}", gotColor)
	}
}
