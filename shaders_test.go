package swr

import (
	"testing"

	"github.com/swr-go/swr/internal/shaderreg"
	"github.com/swr-go/swr/internal/vecmath"
)

func TestCreateProgramReservesZero(t *testing.T) {
	ctx := NewContext(4, 4)
	id := ctx.CreateProgram(&shaderreg.Program{Vertex: defaultVertexShader, Fragment: defaultFragmentShader})
	if id == 0 {
		t.Fatalf("CreateProgram returned reserved handle 0")
	}
}

func TestUseProgramRejectsUnregisteredHandle(t *testing.T) {
	ctx := NewContext(4, 4)
	ctx.UseProgram(999)
	if err := ctx.GetError(); err != InvalidOperation {
		t.Errorf("GetError() = %v, want InvalidOperation", err)
	}
}

func TestUseProgramZeroIsAlwaysValid(t *testing.T) {
	ctx := NewContext(4, 4)
	ctx.UseProgram(0)
	if err := ctx.GetError(); err != NoError {
		t.Errorf("GetError() = %v, want NoError for the default program", err)
	}
}

func TestDeleteProgramThenUseReportsError(t *testing.T) {
	ctx := NewContext(4, 4)
	id := ctx.CreateProgram(&shaderreg.Program{Vertex: defaultVertexShader, Fragment: defaultFragmentShader})
	ctx.DeleteProgram(id)
	ctx.UseProgram(id)
	if err := ctx.GetError(); err != InvalidOperation {
		t.Errorf("GetError() = %v, want InvalidOperation", err)
	}
}

func TestSetUniformRejectsOutOfRangeLocation(t *testing.T) {
	ctx := NewContext(4, 4)
	ctx.SetUniform(-1, vecmath.Vec4{})
	if err := ctx.GetError(); err != InvalidValue {
		t.Errorf("GetError() = %v, want InvalidValue", err)
	}
	ctx.SetUniform(MaxUniformLocations, vecmath.Vec4{})
	if err := ctx.GetError(); err != InvalidValue {
		t.Errorf("GetError() = %v, want InvalidValue", err)
	}
}

func TestUniformRoundtrip(t *testing.T) {
	ctx := NewContext(4, 4)
	v := vecmath.Vec4{X: 1, Y: 2, Z: 3, W: 4}
	ctx.SetUniform(5, v)
	if got := ctx.Uniform(5); got != v {
		t.Errorf("Uniform(5) = %+v, want %+v", got, v)
	}
	if got := ctx.Uniform(6); got != (vecmath.Vec4{}) {
		t.Errorf("Uniform(6) = %+v, want zero vector for an unset location", got)
	}
}

func TestUniformFloatIntMat4Roundtrip(t *testing.T) {
	ctx := NewContext(4, 4)

	ctx.SetUniformFloat(3, 1.5)
	if got := ctx.UniformFloat(3); got != 1.5 {
		t.Errorf("UniformFloat(3) = %v, want 1.5", got)
	}

	ctx.SetUniformInt(4, -12)
	if got := ctx.UniformInt(4); got != -12 {
		t.Errorf("UniformInt(4) = %v, want -12", got)
	}

	m := vecmath.NewMat4RowMajor([]float32{
		2, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 2, 0,
		0, 0, 0, 1,
	})
	ctx.SetUniformMat4(5, m)
	if got := ctx.UniformMat4(5); got != m {
		t.Errorf("UniformMat4(5) = %+v, want %+v", got, m)
	}
}

func TestSetUniformMat4RejectsOutOfRangeLocation(t *testing.T) {
	ctx := NewContext(4, 4)
	ctx.SetUniformMat4(-1, vecmath.IdentityMat4())
	if err := ctx.GetError(); err != InvalidValue {
		t.Errorf("GetError() = %v, want InvalidValue", err)
	}
	ctx.SetUniformMat4(MaxUniformLocations, vecmath.IdentityMat4())
	if err := ctx.GetError(); err != InvalidValue {
		t.Errorf("GetError() = %v, want InvalidValue", err)
	}
}

// TestUniformSnapshotIsolatesQueuedDraws verifies that a SetUniform call
// made after a draw call but before Present does not retroactively affect
// the already-queued draw, matching every other piece of render state.
func TestUniformSnapshotIsolatesQueuedDraws(t *testing.T) {
	ctx := NewContext(4, 4)
	vb := ctx.CreateVertexBuffer([]vecmath.Vec4{{W: 1}})
	ctx.BindVertexBuffer(vb)

	var seen vecmath.Vec4
	vertex := func(attribs []vecmath.Vec4, u *shaderreg.UniformTable) (vecmath.Vec4, []vecmath.Vec4) {
		seen = u.Get(0)
		return attribs[0], nil
	}
	prog := ctx.CreateProgram(&shaderreg.Program{
		Vertex:   vertex,
		Fragment: func(_ vecmath.Vec4, _ bool, _ []float32, depth float32, _ *shaderreg.UniformTable) ([4]float32, float32, bool) {
			return [4]float32{}, depth, true
		},
	})
	ctx.UseProgram(prog)

	ctx.SetUniform(0, vecmath.Vec4{X: 1})
	ctx.DrawArrays(Points, 1)
	ctx.SetUniform(0, vecmath.Vec4{X: 2})
	ctx.Present()

	if seen != (vecmath.Vec4{X: 1}) {
		t.Errorf("vertex shader saw uniform %+v, want {1 0 0 0} (the value at draw-call time)", seen)
	}
}
