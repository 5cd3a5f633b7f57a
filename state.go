package swr

import (
	"github.com/swr-go/swr/internal/assemble"
	"github.com/swr-go/swr/internal/blend"
	intcolor "github.com/swr-go/swr/internal/color"
)

// PolyMode selects how triangle primitives are rasterized: as filled
// triangles or as their outline (reusing the line rasterizer, per spec
// §4.2's "poly_mode = line" case).
type PolyMode int

const (
	PolyModeFill PolyMode = iota
	PolyModeLine
	PolyModePoint
)

// Rect is an axis-aligned pixel rectangle used for the viewport and the
// scissor box.
type Rect struct {
	X, Y, Width, Height int
}

// renderState is the full snapshot of fixed-function state a draw call
// captures into its render object, so a later state change does not
// retroactively affect an already-queued draw (spec §3's "render object"
// owns a full render-state copy).
type renderState struct {
	cullEnabled bool
	cullMode    assemble.CullMode
	frontFace   assemble.FrontFace
	polyMode    PolyMode

	depthTestEnabled  bool
	depthWriteEnabled bool
	depthFunc         intcolor.CompareFunc

	blendEnabled  bool
	blendEquation blend.Equation

	scissorEnabled bool
	scissor        Rect

	textureEnabled bool

	viewport Rect

	depthRangeNear float32
	depthRangeFar  float32

	clearColor RGBA
	clearDepth float32

	program  uint32
	uniforms *UniformSnapshot
}

func defaultRenderState() renderState {
	return renderState{
		cullEnabled:       false,
		cullMode:          assemble.CullBack,
		frontFace:         assemble.FrontFaceCCW,
		polyMode:          PolyModeFill,
		depthTestEnabled:  false,
		depthWriteEnabled: true,
		depthFunc:         intcolor.CompareLess,
		blendEnabled:      false,
		blendEquation:     blend.DefaultEquation,
		textureEnabled:    false,
		depthRangeNear:    0,
		depthRangeFar:     1,
		clearColor:        Transparent,
		clearDepth:        1,
	}
}

// SetDepthRange remaps the post-divide NDC z from [-1,1] into [near,far]
// before it reaches the depth buffer, instead of the implicit [0,1] a
// zero-value context starts with.
func (c *Context) SetDepthRange(near, far float32) {
	c.state.depthRangeNear = near
	c.state.depthRangeFar = far
}

// SetClearColor sets the color a subsequent ClearColorBuffer fills with.
func (c *Context) SetClearColor(color RGBA) {
	c.state.clearColor = color
}

// SetClearDepth sets the normalized depth a subsequent ClearDepthBuffer
// fills with.
func (c *Context) SetClearDepth(z float32) {
	c.state.clearDepth = z
}

// SetCullMode sets which face orientation(s) are discarded by the
// primitive assembler. Has no effect unless cull testing is enabled via
// [Context.SetCullEnabled].
func (c *Context) SetCullMode(mode assemble.CullMode) {
	c.state.cullMode = mode
}

// SetCullEnabled enables or disables face culling.
func (c *Context) SetCullEnabled(enabled bool) {
	c.state.cullEnabled = enabled
}

// SetFrontFace selects which winding order is considered front-facing.
func (c *Context) SetFrontFace(face assemble.FrontFace) {
	c.state.frontFace = face
}

// SetPolyMode selects whether triangle primitives rasterize as filled
// triangles or as outlines.
func (c *Context) SetPolyMode(mode PolyMode) {
	c.state.polyMode = mode
}

// SetDepthTest enables or disables the depth test and selects its
// comparison function.
func (c *Context) SetDepthTest(enabled bool, fn intcolor.CompareFunc) {
	c.state.depthTestEnabled = enabled
	c.state.depthFunc = fn
}

// SetDepthWriteMask controls whether a passing fragment writes its depth
// back to the depth buffer.
func (c *Context) SetDepthWriteMask(write bool) {
	c.state.depthWriteEnabled = write
}

// SetBlend enables or disables alpha blending and sets its equation.
func (c *Context) SetBlend(enabled bool, eq blend.Equation) {
	c.state.blendEnabled = enabled
	c.state.blendEquation = eq
}

// SetScissor enables the scissor test and sets its rectangle. Pixels
// outside the rectangle are discarded at the fragment stage regardless of
// the primitive that would have covered them.
func (c *Context) SetScissor(enabled bool, r Rect) {
	c.state.scissorEnabled = enabled
	c.state.scissor = r
}

// SetViewport sets the viewport transform's target rectangle within the
// framebuffer.
func (c *Context) SetViewport(r Rect) {
	c.state.viewport = r
}

// SetTextureEnabled enables or disables texturing. When disabled,
// [Context.TextureUnit] always resolves to the default checkerboard
// texture regardless of what is bound.
func (c *Context) SetTextureEnabled(enabled bool) {
	c.state.textureEnabled = enabled
	c.textureEnabled = enabled
}

// State names one of the boolean fixed-function toggles [Context.GetState]
// reports on.
type State int

const (
	StateBlend State = iota
	StateCullFace
	StateDepthTest
	StateDepthWrite
	StateScissorTest
	StateTexture
)

// GetState reports whether the named toggle is currently enabled.
func (c *Context) GetState(s State) bool {
	switch s {
	case StateBlend:
		return c.state.blendEnabled
	case StateCullFace:
		return c.state.cullEnabled
	case StateDepthTest:
		return c.state.depthTestEnabled
	case StateDepthWrite:
		return c.state.depthWriteEnabled
	case StateScissorTest:
		return c.state.scissorEnabled
	case StateTexture:
		return c.state.textureEnabled
	default:
		return false
	}
}
