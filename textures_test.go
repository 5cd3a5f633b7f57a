package swr

import (
	"testing"

	"github.com/swr-go/swr/internal/shaderreg"
	"github.com/swr-go/swr/internal/texture"
	"github.com/swr-go/swr/internal/vecmath"
)

func TestCreateTextureReservesZero(t *testing.T) {
	ctx := NewContext(4, 4)
	id := ctx.CreateTexture(texture.New(2, 2))
	if id == 0 {
		t.Fatalf("CreateTexture returned reserved handle 0")
	}
}

func TestBindTextureRejectsOutOfRangeUnit(t *testing.T) {
	ctx := NewContext(4, 4)
	ctx.BindTexture(-1, 1)
	if err := ctx.GetError(); err != InvalidValue {
		t.Errorf("GetError() = %v, want InvalidValue", err)
	}
	ctx.BindTexture(MaxTextureUnits, 1)
	if err := ctx.GetError(); err != InvalidValue {
		t.Errorf("GetError() = %v, want InvalidValue", err)
	}
}

func TestTextureUnitFallsBackToDefault(t *testing.T) {
	ctx := NewContext(4, 4)
	if got := ctx.TextureUnit(0); got != ctx.defaultTexture {
		t.Errorf("TextureUnit(0) with nothing bound = %v, want the default checkerboard", got)
	}
	if got := ctx.TextureUnit(-1); got != ctx.defaultTexture {
		t.Errorf("TextureUnit(-1) = %v, want the default checkerboard", got)
	}
	ctx.BindTexture(0, 999) // stale handle, was never registered
	if got := ctx.TextureUnit(0); got != ctx.defaultTexture {
		t.Errorf("TextureUnit(0) with a stale handle = %v, want the default checkerboard", got)
	}
}

func TestBindTextureThenSample(t *testing.T) {
	ctx := NewContext(4, 4)
	ctx.SetTextureEnabled(true)
	tex := texture.New(1, 1)
	tex.SetTexel(0, 0, 1, 0, 0, 1)
	id := ctx.CreateTexture(tex)
	ctx.BindTexture(2, id)
	if got := ctx.TextureUnit(2); got != tex {
		t.Errorf("TextureUnit(2) = %v, want the bound texture", got)
	}
}

// TestExecutePreservesRenderObjectTextureSnapshot verifies that rebinding
// a texture unit between a draw call and Present does not change which
// texture an already-queued draw samples, matching every other piece of
// render state captured into the render object.
func TestExecutePreservesRenderObjectTextureSnapshot(t *testing.T) {
	ctx := NewContext(4, 4)
	texA := texture.New(1, 1)
	texA.SetTexel(0, 0, 1, 0, 0, 1)
	texB := texture.New(1, 1)
	texB.SetTexel(0, 0, 0, 0, 1, 1)
	idA := ctx.CreateTexture(texA)
	idB := ctx.CreateTexture(texB)

	vb := ctx.CreateVertexBuffer([]vecmath.Vec4{{W: 1}})
	ctx.BindVertexBuffer(vb)

	var sampled *texture.Texture2D
	fragment := func(_ vecmath.Vec4, _ bool, _ []float32, depth float32, _ *shaderreg.UniformTable) ([4]float32, float32, bool) {
		sampled = ctx.TextureUnit(0)
		return [4]float32{}, depth, true
	}
	prog := ctx.CreateProgram(&shaderreg.Program{Vertex: defaultVertexShader, Fragment: fragment})
	ctx.UseProgram(prog)

	ctx.SetTextureEnabled(true)
	ctx.BindTexture(0, idA)
	ctx.DrawArrays(Points, 1)
	ctx.BindTexture(0, idB) // rebind after the draw call, before Present
	ctx.Present()

	if sampled != texA {
		t.Errorf("fragment shader sampled %v, want the texture bound at draw-call time (texA)", sampled)
	}
}

func TestDeleteTextureFallsBackForBoundUnit(t *testing.T) {
	ctx := NewContext(4, 4)
	id := ctx.CreateTexture(texture.New(1, 1))
	ctx.BindTexture(0, id)
	ctx.DeleteTexture(id)
	if got := ctx.TextureUnit(0); got != ctx.defaultTexture {
		t.Errorf("TextureUnit(0) after deleting the bound texture = %v, want the default checkerboard", got)
	}
}
