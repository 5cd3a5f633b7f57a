// Package shaderreg implements shader program registration and uniform
// storage for spec §4.6/§6: pre-link metadata collection (varying
// interpolation qualifiers, attribute/uniform locations) and a sparse,
// resize-on-write uniform table indexed by location.
package shaderreg

import "github.com/swr-go/swr/internal/vecmath"

// Qualifier selects how a varying is interpolated across a primitive.
type Qualifier int

const (
	// Smooth varyings are divided by the interpolated reciprocal-w
	// (perspective-correct).
	Smooth Qualifier = iota
	// NoPerspective varyings are interpolated linearly in screen space,
	// skipping the perspective divide.
	NoPerspective
	// Flat varyings take the value from the primitive's provoking vertex
	// and do not vary across it.
	Flat
)

// VertexShader transforms one input vertex's attributes into clip-space
// position and varyings.
type VertexShader func(attribs []vecmath.Vec4, uniforms *UniformTable) (position vecmath.Vec4, varyings []vecmath.Vec4)

// FragmentShader computes a fragment's output color from interpolated
// varyings. fragCoord carries the window-space x/y, the rasterizer's
// interpolated depth in Z and the interpolated reciprocal-w in W;
// frontFacing reports the triangle's winding as the assembler determined
// it (always true for lines and standalone points, which have no
// orientation). depth is the rasterizer-interpolated depth the shader may
// pass through or override via depthOut, which is what the output merger
// compares against and writes to the depth buffer. ok=false discards the
// fragment.
type FragmentShader func(fragCoord vecmath.Vec4, frontFacing bool, varyings []float32, depth float32, uniforms *UniformTable) (color [4]float32, depthOut float32, ok bool)

// Program is one registered shader: a vertex stage, a fragment stage,
// and the interpolation qualifier for each varying the vertex stage
// produces, collected at registration time (spec's "pre-link metadata").
type Program struct {
	Vertex     VertexShader
	Fragment   FragmentShader
	Qualifiers []Qualifier
}

// Perspective reports, per-varying, whether the channel requires the
// perspective divide -- true for Smooth, false for NoPerspective and Flat.
func (p *Program) Perspective() []bool {
	out := make([]bool, len(p.Qualifiers))
	for i, q := range p.Qualifiers {
		out[i] = q == Smooth
	}
	return out
}

// Registry is the stable-ID table of linked shader programs, mirroring
// the slot-map pattern used for buffers and textures elsewhere in the
// engine.
type Registry struct {
	programs map[uint32]*Program
	next     uint32
}

// NewRegistry creates an empty shader registry; ID 0 is reserved and
// never returned by Register.
func NewRegistry() *Registry {
	return &Registry{programs: make(map[uint32]*Program), next: 1}
}

// Register records a program and returns its handle.
func (r *Registry) Register(p *Program) uint32 {
	id := r.next
	r.next++
	r.programs[id] = p
	return id
}

// Get returns the program for id, or nil if it does not exist.
func (r *Registry) Get(id uint32) *Program {
	return r.programs[id]
}

// Delete removes a program from the registry.
func (r *Registry) Delete(id uint32) {
	delete(r.programs, id)
}

// UniformKind tags which field of a UniformValue is live, so a sparse
// table can hold a mix of vec4, float, int and mat4 uniforms without
// boxing.
type UniformKind int

const (
	UniformVec4 UniformKind = iota
	UniformFloat
	UniformInt
	UniformMat4
)

// UniformValue is one tagged uniform slot's contents.
type UniformValue struct {
	Kind  UniformKind
	Vec4  vecmath.Vec4
	Float float32
	Int   int32
	Mat4  vecmath.Mat4
}

// UniformTable is a sparse, resize-on-write store of uniform values
// indexed by location. Locations are assigned densely by the caller
// starting at 0, but the table grows lazily so a program that only
// writes a handful of high-numbered locations doesn't pay for the gap.
type UniformTable struct {
	values map[int]UniformValue
}

// NewUniformTable returns an empty uniform table.
func NewUniformTable() *UniformTable {
	return &UniformTable{values: make(map[int]UniformValue)}
}

// Set writes a vec4 uniform value at location.
func (u *UniformTable) Set(location int, v vecmath.Vec4) {
	u.values[location] = UniformValue{Kind: UniformVec4, Vec4: v}
}

// Get reads the vec4 uniform value at location, returning the zero
// vector if nothing has been written there or the stored value has a
// different kind.
func (u *UniformTable) Get(location int) vecmath.Vec4 {
	return u.values[location].Vec4
}

// SetFloat writes a scalar uniform value at location.
func (u *UniformTable) SetFloat(location int, v float32) {
	u.values[location] = UniformValue{Kind: UniformFloat, Float: v}
}

// GetFloat reads the scalar uniform value at location, returning 0 if
// nothing has been written there or the stored value has a different
// kind.
func (u *UniformTable) GetFloat(location int) float32 {
	return u.values[location].Float
}

// SetInt writes an integer uniform value at location.
func (u *UniformTable) SetInt(location int, v int32) {
	u.values[location] = UniformValue{Kind: UniformInt, Int: v}
}

// GetInt reads the integer uniform value at location, returning 0 if
// nothing has been written there or the stored value has a different
// kind.
func (u *UniformTable) GetInt(location int) int32 {
	return u.values[location].Int
}

// SetMat4 writes a 4x4 matrix uniform value at location, the slot kind a
// host uploads an MVP or normal matrix through.
func (u *UniformTable) SetMat4(location int, m vecmath.Mat4) {
	u.values[location] = UniformValue{Kind: UniformMat4, Mat4: m}
}

// GetMat4 reads the matrix uniform value at location, returning the zero
// matrix if nothing has been written there or the stored value has a
// different kind.
func (u *UniformTable) GetMat4(location int) vecmath.Mat4 {
	return u.values[location].Mat4
}

// Clone returns an independent copy of the table, so a render object can
// snapshot the uniform state at draw-call time without later writes
// retroactively affecting it.
func (u *UniformTable) Clone() *UniformTable {
	out := make(map[int]UniformValue, len(u.values))
	for loc, v := range u.values {
		out[loc] = v
	}
	return &UniformTable{values: out}
}
