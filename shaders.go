package swr

import (
	"github.com/swr-go/swr/internal/shaderreg"
	"github.com/swr-go/swr/internal/vecmath"
)

// MaxUniformLocations bounds the uniform table, per spec §3's invariant
// that uniform location N is only defined if N < 1024.
const MaxUniformLocations = 1024

// UniformSnapshot is the uniform values a render object carries, cloned
// at draw-call time so a later SetUniform does not retroactively affect
// an already-queued draw.
type UniformSnapshot struct {
	table *shaderreg.UniformTable
}

// CreateProgram registers a shader program and returns its handle. ID 0
// is reserved for the no-op default program and is never returned.
func (c *Context) CreateProgram(p *shaderreg.Program) uint32 {
	return c.programs.Register(p)
}

// DeleteProgram unregisters a shader program.
func (c *Context) DeleteProgram(id uint32) {
	c.programs.Delete(id)
}

// UseProgram binds a shader program for subsequent draw calls.
func (c *Context) UseProgram(id uint32) {
	if id != 0 && c.programs.Get(id) == nil {
		c.setError(InvalidOperation)
		return
	}
	c.state.program = id
}

// SetUniform writes a vec4 uniform value at location, for the currently
// bound program's uniform table.
func (c *Context) SetUniform(location int, v vecmath.Vec4) {
	if location < 0 || location >= MaxUniformLocations {
		c.setError(InvalidValue)
		return
	}
	c.uniforms.Set(location, v)
}

// Uniform reads a vec4 uniform value at location; unset locations read as
// the zero vector.
func (c *Context) Uniform(location int) vecmath.Vec4 {
	return c.uniforms.Get(location)
}

// SetUniformFloat writes a scalar uniform value at location.
func (c *Context) SetUniformFloat(location int, v float32) {
	if location < 0 || location >= MaxUniformLocations {
		c.setError(InvalidValue)
		return
	}
	c.uniforms.SetFloat(location, v)
}

// UniformFloat reads a scalar uniform value at location; unset locations
// read as 0.
func (c *Context) UniformFloat(location int) float32 {
	return c.uniforms.GetFloat(location)
}

// SetUniformInt writes an integer uniform value at location.
func (c *Context) SetUniformInt(location int, v int32) {
	if location < 0 || location >= MaxUniformLocations {
		c.setError(InvalidValue)
		return
	}
	c.uniforms.SetInt(location, v)
}

// UniformInt reads an integer uniform value at location; unset locations
// read as 0.
func (c *Context) UniformInt(location int) int32 {
	return c.uniforms.GetInt(location)
}

// SetUniformMat4 writes a 4x4 matrix uniform value at location, the entry
// point a host uploads an MVP or normal matrix through.
func (c *Context) SetUniformMat4(location int, m vecmath.Mat4) {
	if location < 0 || location >= MaxUniformLocations {
		c.setError(InvalidValue)
		return
	}
	c.uniforms.SetMat4(location, m)
}

// UniformMat4 reads a matrix uniform value at location; unset locations
// read as the zero matrix.
func (c *Context) UniformMat4(location int) vecmath.Mat4 {
	return c.uniforms.GetMat4(location)
}

// snapshotUniforms clones the live uniform table into a render object's
// own copy, so draw calls observe the uniform state at the time they were
// issued rather than at Present time.
func (c *Context) snapshotUniforms() *UniformSnapshot {
	return &UniformSnapshot{table: c.uniforms.Clone()}
}
