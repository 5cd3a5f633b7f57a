package swr

import (
	"fmt"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/swr-go/swr/internal/parallel"
	"github.com/swr-go/swr/internal/shaderreg"
	"github.com/swr-go/swr/internal/slotmap"
	"github.com/swr-go/swr/internal/texture"
	"github.com/swr-go/swr/internal/vecmath"
)

// Context is the render device: the default framebuffer, all render
// state, every buffer/shader/texture registry, and the draw list
// accumulated between Present calls. A Context is not safe for
// concurrent use; its methods must be called from one goroutine at a
// time.
type Context struct {
	framebuffer *Framebuffer
	state       renderState
	lastError   ErrorCode

	vertexBuffers *slotmap.SlotMap[*VertexBuffer]
	indexBuffers  *slotmap.SlotMap[*IndexBuffer]
	attribBuffers *slotmap.SlotMap[*AttributeBuffer]

	boundVertexBuffer uint32
	boundAttribs      [maxAttributeSlots]uint32
	boundTextures     [MaxTextureUnits]uint32
	textureEnabled    bool

	textures       *slotmap.SlotMap[*texture.Texture2D]
	defaultTexture *texture.Texture2D

	programs       *shaderreg.Registry
	uniforms       *shaderreg.UniformTable
	defaultProgram *shaderreg.Program

	taskPool *parallel.TaskPool
	tileGrid *parallel.TileGrid

	drawList []renderObject

	stats frameStats

	locked bool
}

// defaultVertexShader passes attribute slot 0 straight through as clip
// position and produces no varyings; it backs shader handle 0 (the
// no-op default every context starts with).
func defaultVertexShader(attribs []vecmath.Vec4, _ *shaderreg.UniformTable) (vecmath.Vec4, []vecmath.Vec4) {
	if len(attribs) == 0 {
		return vecmath.Vec4{W: 1}, nil
	}
	return attribs[0], nil
}

// defaultFragmentShader writes opaque white, passing the rasterizer's
// interpolated depth through unmodified; it backs shader handle 0.
func defaultFragmentShader(_ vecmath.Vec4, _ bool, _ []float32, depth float32, _ *shaderreg.UniformTable) ([4]float32, float32, bool) {
	return [4]float32{1, 1, 1, 1}, depth, true
}

// NewContext creates a render context with a freshly allocated default
// framebuffer of the given logical size.
func NewContext(width, height int, opts ...ContextOption) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context{
		framebuffer:    NewFramebufferFormat(width, height, o.format),
		state:          defaultRenderState(),
		vertexBuffers:  slotmap.New[*VertexBuffer](),
		indexBuffers:   slotmap.New[*IndexBuffer](),
		attribBuffers:  slotmap.New[*AttributeBuffer](),
		textures:       slotmap.New[*texture.Texture2D](),
		defaultTexture: texture.DefaultCheckerboard(),
		programs:       shaderreg.NewRegistry(),
		uniforms:       shaderreg.NewUniformTable(),
		defaultProgram: &shaderreg.Program{Vertex: defaultVertexShader, Fragment: defaultFragmentShader},
		taskPool:       parallel.NewTaskPool(o.workers),
		tileGrid:       parallel.NewTileGrid(width, height),
	}
	c.state.viewport = Rect{Width: width, Height: height}
	return c
}

// Lock acquires the default framebuffer's color pointer for the
// duration of a Present call, matching the single acquire/release this
// engine's concurrency model wraps around presentation. Panics on
// double-lock, since that indicates a logic error in the caller rather
// than a recoverable misuse.
func (c *Context) Lock() {
	if c.locked {
		panic("swr: Context already locked")
	}
	c.locked = true
}

// Unlock releases the lock Lock acquired.
func (c *Context) Unlock() {
	c.locked = false
}

// ClearColorBuffer fills the color attachment with the state's clear
// color (see SetClearColor).
func (c *Context) ClearColorBuffer() {
	c.framebuffer.Clear(c.state.clearColor)
}

// ClearDepthBuffer fills the depth attachment with the state's clear
// depth (see SetClearDepth).
func (c *Context) ClearDepthBuffer() {
	c.framebuffer.ClearDepth(c.state.clearDepth)
}

// Width returns the default framebuffer's logical width.
func (c *Context) Width() int { return c.framebuffer.Width() }

// Height returns the default framebuffer's logical height.
func (c *Context) Height() int { return c.framebuffer.Height() }

// Framebuffer returns the context's default render target.
func (c *Context) Framebuffer() *Framebuffer { return c.framebuffer }

// Image returns the color attachment as a standard image.Image.
func (c *Context) Image() image.Image { return c.framebuffer.ToImage() }

// SavePNG encodes the color attachment as a PNG file at path.
func (c *Context) SavePNG(path string) error { return c.framebuffer.SavePNG(path) }

// CopyDefaultColorBuffer copies the default framebuffer's color attachment
// into dst, converting pixel format and scaling to dst's bounds as needed.
// The method does not take or check the context lock (see Lock).
func (c *Context) CopyDefaultColorBuffer(dst draw.Image, scale xdraw.Scaler) {
	c.framebuffer.CopyDefaultColorBuffer(dst, scale)
}

// Resize reallocates the default framebuffer and tile grid to a new
// logical size. Existing buffer, shader and texture handles remain
// valid.
func (c *Context) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		c.setError(InvalidValue)
		return fmt.Errorf("swr: invalid framebuffer size %dx%d", width, height)
	}
	c.framebuffer = NewFramebufferFormat(width, height, c.framebuffer.format.Format)
	c.tileGrid.Resize(width, height)
	c.state.viewport = Rect{Width: width, Height: height}
	return nil
}

// Close releases the context's worker pool and tile grid. The context
// must not be used afterward.
func (c *Context) Close() error {
	c.taskPool.Close()
	c.tileGrid.Close()
	return nil
}
