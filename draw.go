package swr

import (
	"github.com/swr-go/swr/internal/assemble"
	"github.com/swr-go/swr/internal/blend"
	intcolor "github.com/swr-go/swr/internal/color"
	"github.com/swr-go/swr/internal/clip"
	"github.com/swr-go/swr/internal/fixedpoint"
	"github.com/swr-go/swr/internal/geometry"
	"github.com/swr-go/swr/internal/raster"
	"github.com/swr-go/swr/internal/shaderreg"
	"github.com/swr-go/swr/internal/vecmath"
)

// PrimitiveMode selects which rasterizer a draw call feeds. The
// higher-order modes (triangle_fan, triangle_strip, quads, polygon) named
// in the fixed-function API this engine models belong to an
// immediate-mode adapter that expands them into triangles before they
// ever reach the core, so only the three primitive list kinds appear
// here.
type PrimitiveMode int

const (
	Triangles PrimitiveMode = iota
	Lines
	Points
)

// renderObject is the snapshot a draw call appends to the draw list:
// which buffers and bindings it reads, and a full copy of the render
// state and uniforms in effect at the time of the call, so a state
// change after the call never affects it.
type renderObject struct {
	mode         PrimitiveMode
	vertexBuffer uint32
	indexBuffer  uint32 // 0 selects the non-indexed path
	count        int    // vertex count for the non-indexed path

	attribBindings  [maxAttributeSlots]uint32
	textureBindings [MaxTextureUnits]uint32

	state    renderState
	program  *shaderreg.Program
	uniforms *UniformSnapshot
}

func (c *Context) snapshotRenderObject(mode PrimitiveMode) renderObject {
	return renderObject{
		mode:            mode,
		vertexBuffer:    c.boundVertexBuffer,
		attribBindings:  c.boundAttribs,
		textureBindings: c.boundTextures,
		state:           c.state,
		program:         c.resolveProgram(c.state.program),
		uniforms:        c.snapshotUniforms(),
	}
}

// DrawArrays appends a non-indexed draw of the first count vertices from
// the bound vertex buffer to the draw list.
func (c *Context) DrawArrays(mode PrimitiveMode, count int) {
	if count <= 0 {
		c.setError(InvalidValue)
		return
	}
	if _, ok := c.vertexBuffers.Get(c.boundVertexBuffer); !ok {
		c.setError(InvalidOperation)
		return
	}
	ro := c.snapshotRenderObject(mode)
	ro.count = count
	c.drawList = append(c.drawList, ro)
}

// DrawIndexed appends an indexed draw reading vertex indices from
// indexBuffer to the draw list.
func (c *Context) DrawIndexed(mode PrimitiveMode, indexBuffer uint32) {
	if _, ok := c.vertexBuffers.Get(c.boundVertexBuffer); !ok {
		c.setError(InvalidOperation)
		return
	}
	if _, ok := c.indexBuffers.Get(indexBuffer); !ok {
		c.setError(InvalidOperation)
		return
	}
	ro := c.snapshotRenderObject(mode)
	ro.indexBuffer = indexBuffer
	c.drawList = append(c.drawList, ro)
}

// resolveProgram returns the registered program for id, falling back to
// the context's no-op default (id 0, or a stale handle).
func (c *Context) resolveProgram(id uint32) *shaderreg.Program {
	if id != 0 {
		if p := c.programs.Get(id); p != nil {
			return p
		}
	}
	return c.defaultProgram
}

// Present iterates the draw list in order, running the geometry
// front-end and rasterizer for each render object, then empties the
// draw list. Buffer handles remain valid afterward.
func (c *Context) Present() {
	c.stats.triangles.Store(0)
	c.stats.fragments.Store(0)
	for _, ro := range c.drawList {
		c.execute(ro)
	}
	c.drawList = c.drawList[:0]
}

func (c *Context) execute(ro renderObject) {
	vb, ok := c.vertexBuffers.Get(ro.vertexBuffer)
	if !ok {
		return
	}

	// A fragment shader samples textures by closing over the Context and
	// calling TextureUnit, which reads live bindings rather than ro's
	// snapshot. Swap the live bindings in for the duration of this render
	// object so a rebind between DrawArrays and Present can't retroactively
	// change what an already-queued draw samples. Present runs render
	// objects one at a time and each one's tile dispatch is a blocking
	// barrier, so this is safe without synchronization.
	prevTextures := c.boundTextures
	prevTextureEnabled := c.textureEnabled
	c.boundTextures = ro.textureBindings
	c.textureEnabled = ro.state.textureEnabled
	defer func() {
		c.boundTextures = prevTextures
		c.textureEnabled = prevTextureEnabled
	}()

	var verts []geometry.Vertex
	if ro.indexBuffer != 0 {
		ib, ok := c.indexBuffers.Get(ro.indexBuffer)
		if !ok {
			return
		}
		verts = make([]geometry.Vertex, 0, len(ib.Data))
		for _, idx := range ib.Data {
			verts = append(verts, c.shadeVertex(idx, vb, &ro))
		}
	} else {
		verts = make([]geometry.Vertex, 0, ro.count)
		for i := 0; i < ro.count; i++ {
			verts = append(verts, c.shadeVertex(uint32(i), vb, &ro))
		}
	}

	switch ro.mode {
	case Triangles:
		c.drawTriangles(verts, &ro)
	case Lines:
		c.drawLines(verts, &ro)
	case Points:
		c.drawPoints(verts, &ro)
	}
}

// shadeVertex invokes the vertex shader for one index: attribute slot 0
// is always the vertex buffer's position-only input; slots 1..15 are
// whichever attribute buffers the render object had bound at draw time.
func (c *Context) shadeVertex(index uint32, vb *VertexBuffer, ro *renderObject) geometry.Vertex {
	var attribs [maxAttributeSlots]vecmath.Vec4
	count := 1
	if int(index) < len(vb.Data) {
		attribs[0] = vb.Data[index]
	}
	for slot := 1; slot < maxAttributeSlots; slot++ {
		bufID := ro.attribBindings[slot]
		if bufID == 0 {
			continue
		}
		buf, ok := c.attributeBufferAt(bufID)
		if !ok || int(index) >= len(buf.Data) {
			continue
		}
		attribs[slot] = buf.Data[index]
		if slot+1 > count {
			count = slot + 1
		}
	}

	position, varyings := ro.program.Vertex(attribs[:count], ro.uniforms.table)

	if len(varyings) > geometry.MaxVaryings {
		Logger().Warn("varying count clamped", "got", len(varyings), "max", geometry.MaxVaryings)
		varyings = varyings[:geometry.MaxVaryings]
	}

	var v geometry.Vertex
	v.Coord = position
	v.AttribCount = count
	copy(v.Attribs[:], attribs[:count])
	v.VaryingCount = len(varyings)
	copy(v.Varyings[:], varyings)
	if !v.Visible() {
		v.Flags |= geometry.FlagClipDiscard
	}
	return v
}

// viewportRect resolves a render object's effective viewport, defaulting
// to the whole framebuffer when none was ever set.
func (c *Context) viewportRect(ro *renderObject) Rect {
	vp := ro.state.viewport
	if vp.Width == 0 && vp.Height == 0 {
		return Rect{Width: c.framebuffer.Width(), Height: c.framebuffer.Height()}
	}
	return vp
}

// toWindowSpace performs the perspective divide and viewport transform,
// mapping clip space (Y up, matching the engine's NDC convention) onto
// window space (Y down, origin top-left, matching the framebuffer): smooth
// varyings are premultiplied by the vertex's reciprocal-w here so the
// rasterizer's interpolator can recover their perspective-correct value
// with a single divide per fragment.
func (c *Context) toWindowSpace(v geometry.Vertex, ro *renderObject, vp Rect) geometry.Vertex {
	w := v.Coord.W
	recipW := float32(1)
	if w != 0 {
		recipW = 1 / w
	}
	ndcX := v.Coord.X * recipW
	ndcY := v.Coord.Y * recipW
	ndcZ := v.Coord.Z * recipW

	near, far := ro.state.depthRangeNear, ro.state.depthRangeFar
	out := v
	out.Coord = vecmath.Vec4{
		X: float32(vp.X) + (ndcX*0.5+0.5)*float32(vp.Width),
		Y: float32(vp.Y) + (1-(ndcY*0.5+0.5))*float32(vp.Height),
		Z: near + (ndcZ*0.5+0.5)*(far-near),
		W: recipW,
	}

	perspective := ro.program.Perspective()
	for i := 0; i < v.VaryingCount; i++ {
		if i < len(perspective) && perspective[i] {
			out.Varyings[i] = v.Varyings[i].Scale(recipW)
		}
	}
	return out
}

// buildVertexData flattens a window-space vertex's varyings into the flat
// per-component payload the rasterizer interpolates, forcing flat
// varyings to the provoking vertex's value.
func buildVertexData(v, provoking geometry.Vertex, qualifiers []shaderreg.Qualifier) raster.VertexData {
	n := v.VaryingCount * 4
	varyings := make([]float32, n)
	perspective := make([]bool, n)

	for i := 0; i < v.VaryingCount; i++ {
		q := shaderreg.Smooth
		if i < len(qualifiers) {
			q = qualifiers[i]
		}
		val := v.Varyings[i]
		if q == shaderreg.Flat {
			val = provoking.Varyings[i]
		}
		comps := [4]float32{val.X, val.Y, val.Z, val.W}
		for k := 0; k < 4; k++ {
			varyings[i*4+k] = comps[k]
			perspective[i*4+k] = q == shaderreg.Smooth
		}
	}

	return raster.VertexData{
		Depth:       intcolor.DepthFromFloat(v.Coord.Z),
		RecipW:      v.Coord.W,
		Varyings:    varyings,
		Perspective: perspective,
	}
}

func toSubpixel(v geometry.Vertex) [2]fixedpoint.Subpixel {
	return [2]fixedpoint.Subpixel{
		fixedpoint.FromFloatSubpixel(v.Coord.X),
		fixedpoint.FromFloatSubpixel(v.Coord.Y),
	}
}

func rectToBounds(r Rect) raster.Bounds {
	return raster.Bounds{MinX: r.X, MinY: r.Y, MaxX: r.X + r.Width - 1, MaxY: r.Y + r.Height - 1}
}

func intersectBounds(a, b raster.Bounds) raster.Bounds {
	if b.MinX > a.MinX {
		a.MinX = b.MinX
	}
	if b.MinY > a.MinY {
		a.MinY = b.MinY
	}
	if b.MaxX < a.MaxX {
		a.MaxX = b.MaxX
	}
	if b.MaxY < a.MaxY {
		a.MaxY = b.MaxY
	}
	return a
}

func (c *Context) drawTriangles(verts []geometry.Vertex, ro *renderObject) {
	vp := c.viewportRect(ro)
	viewportBounds := rectToBounds(vp)

	for i := 0; i+2 < len(verts); i += 3 {
		clipped := clip.Triangle(verts[i], verts[i+1], verts[i+2])
		if clipped == nil {
			continue
		}

		if ro.state.polyMode == PolyModeLine {
			c.drawTriangleOutline(clipped, ro, vp, viewportBounds)
			continue
		}

		fans := clip.Fan(clipped)
		windowTris := make([][3]geometry.Vertex, 0, len(fans))
		for _, tri := range fans {
			windowTris = append(windowTris, [3]geometry.Vertex{
				c.toWindowSpace(tri[0], ro, vp),
				c.toWindowSpace(tri[1], ro, vp),
				c.toWindowSpace(tri[2], ro, vp),
			})
		}

		assembled := assemble.AssembleTriangles(windowTris, ro.state.frontFace, ro.state.cullEnabled, ro.state.cullMode)
		for _, tri := range assembled {
			c.stats.triangles.Add(1)
			if ro.state.polyMode == PolyModePoint {
				c.rasterizeTrianglePoints(tri, ro, viewportBounds)
				continue
			}
			c.rasterizeTriangle(tri, ro, viewportBounds)
		}
	}
}

// rasterizeTrianglePoints renders an assembled triangle's three vertices
// as individual points instead of a filled triangle or outline, per the
// poly_mode = point case.
func (c *Context) rasterizeTrianglePoints(tri assemble.Triangle, ro *renderObject, viewportBounds raster.Bounds) {
	for _, v := range [3]geometry.Vertex{tri.V0, tri.V1, tri.V2} {
		d := buildVertexData(v, v, ro.program.Qualifiers)
		x, y := int(v.Coord.X+0.5), int(v.Coord.Y+0.5)
		sink := &mergerSink{ctx: c, ro: ro}
		raster.Point(x, y, d, tri.FrontFacing, viewportBounds, sink)
	}
}

// rasterizeTriangle dispatches one assembled triangle's rasterization
// across the tiles its bounding box overlaps, one TaskPool task per tile.
// Tiles are disjoint framebuffer regions, so concurrent tasks never write
// the same pixel and no locking is needed across them.
func (c *Context) rasterizeTriangle(tri assemble.Triangle, ro *renderObject, viewportBounds raster.Bounds) {
	p0, p1, p2 := toSubpixel(tri.V0), toSubpixel(tri.V1), toSubpixel(tri.V2)
	d0 := buildVertexData(tri.V0, tri.V0, ro.program.Qualifiers)
	d1 := buildVertexData(tri.V1, tri.V0, ro.program.Qualifiers)
	d2 := buildVertexData(tri.V2, tri.V0, ro.program.Qualifiers)

	minX, maxX := tri.V0.Coord.X, tri.V0.Coord.X
	minY, maxY := tri.V0.Coord.Y, tri.V0.Coord.Y
	for _, v := range [2]geometry.Vertex{tri.V1, tri.V2} {
		minX, maxX = min32(minX, v.Coord.X), max32(maxX, v.Coord.X)
		minY, maxY = min32(minY, v.Coord.Y), max32(maxY, v.Coord.Y)
	}
	bx, by := int(minX), int(minY)
	bw, bh := int(maxX)-bx+1, int(maxY)-by+1

	tiles := c.tileGrid.TilesInRect(bx, by, bw, bh)
	if len(tiles) == 0 {
		return
	}

	tasks := make([]func(), 0, len(tiles))
	for _, tile := range tiles {
		tile := tile
		tasks = append(tasks, func() {
			tx, ty, tw, th := tile.Bounds()
			bounds := intersectBounds(raster.Bounds{MinX: tx, MinY: ty, MaxX: tx + tw - 1, MaxY: ty + th - 1}, viewportBounds)
			sink := &mergerSink{ctx: c, ro: ro}
			raster.Triangle(p0, p1, p2, d0, d1, d2, tri.FrontFacing, bounds, sink)
		})
	}
	c.taskPool.Dispatch(tasks)
}

// drawTriangleOutline renders a clipped triangle's edges as lines instead
// of a filled triangle, reconstructing a closed strip from the clipper's
// polygon output. Orientation testing for culling needs window-space
// coordinates, so the whole polygon is transformed before assembly.
func (c *Context) drawTriangleOutline(poly []geometry.Vertex, ro *renderObject, vp Rect, viewportBounds raster.Bounds) {
	strip := make([]geometry.Vertex, len(poly))
	for i, v := range poly {
		strip[i] = c.toWindowSpace(v, ro, vp)
		strip[i].Flags &^= geometry.FlagStripEnd
	}
	strip[len(strip)-1].Flags |= geometry.FlagStripEnd

	segments := assemble.AssembleLineStrip(strip, ro.state.cullEnabled, ro.state.cullMode, ro.state.frontFace)
	for _, seg := range segments {
		c.rasterizeWindowLine(seg.V0, seg.V1, ro, viewportBounds)
	}
}

func (c *Context) drawLines(verts []geometry.Vertex, ro *renderObject) {
	vp := c.viewportRect(ro)
	viewportBounds := rectToBounds(vp)
	for i := 0; i+1 < len(verts); i += 2 {
		a, b, ok := clip.Line(verts[i], verts[i+1])
		if !ok {
			continue
		}
		c.rasterizeLine(a, b, ro, vp, viewportBounds)
	}
}

// rasterizeLine transforms a clip-space segment to window space and
// rasterizes it. Runs on the owner thread (non-triangle primitives are
// never tile-dispatched, per the engine's concurrency model).
func (c *Context) rasterizeLine(a, b geometry.Vertex, ro *renderObject, vp Rect, viewportBounds raster.Bounds) {
	aw := c.toWindowSpace(a, ro, vp)
	bw := c.toWindowSpace(b, ro, vp)
	c.rasterizeWindowLine(aw, bw, ro, viewportBounds)
}

// rasterizeWindowLine rasterizes a segment already in window space.
func (c *Context) rasterizeWindowLine(aw, bw geometry.Vertex, ro *renderObject, viewportBounds raster.Bounds) {
	d0 := buildVertexData(aw, aw, ro.program.Qualifiers)
	d1 := buildVertexData(bw, aw, ro.program.Qualifiers)

	x0, y0 := int(aw.Coord.X+0.5), int(aw.Coord.Y+0.5)
	x1, y1 := int(bw.Coord.X+0.5), int(bw.Coord.Y+0.5)

	sink := &mergerSink{ctx: c, ro: ro}
	raster.Line(x0, y0, x1, y1, d0, d1, viewportBounds, sink)
}

func (c *Context) drawPoints(verts []geometry.Vertex, ro *renderObject) {
	vp := c.viewportRect(ro)
	viewportBounds := rectToBounds(vp)
	for _, v := range verts {
		if v.Flags&geometry.FlagClipDiscard != 0 || !clip.Point(v) {
			continue
		}
		vw := c.toWindowSpace(v, ro, vp)
		d := buildVertexData(vw, vw, ro.program.Qualifiers)
		x, y := int(vw.Coord.X+0.5), int(vw.Coord.Y+0.5)
		sink := &mergerSink{ctx: c, ro: ro}
		raster.Point(x, y, d, true, viewportBounds, sink)
	}
}

// mergerSink implements raster.FragmentSink with the output merger of
// §4.6: scissor test, fragment shader dispatch (which can override the
// fragment's depth), depth test with write mask, and alpha blending,
// writing directly into the bound framebuffer.
type mergerSink struct {
	ctx *Context
	ro  *renderObject
}

func (s *mergerSink) Emit(f raster.Fragment) {
	ro := s.ro
	if ro.state.scissorEnabled {
		sc := ro.state.scissor
		if f.X < sc.X || f.X >= sc.X+sc.Width || f.Y < sc.Y || f.Y >= sc.Y+sc.Height {
			return
		}
	}

	rasterDepth := intcolor.DepthToFloat(f.Depth)
	fragCoord := vecmath.Vec4{X: float32(f.X) + 0.5, Y: float32(f.Y) + 0.5, Z: rasterDepth, W: f.RecipW}

	color, depthOut, ok := ro.program.Fragment(fragCoord, f.FrontFacing, f.Varyings[:f.VaryingCount], rasterDepth, ro.uniforms.table)
	if !ok {
		return
	}
	depth := intcolor.DepthFromFloat(depthOut)

	fb := s.ctx.framebuffer
	depthIdx := f.Y*fb.BufferWidth() + f.X
	depthBuf := fb.DepthBuffer()

	if ro.state.depthTestEnabled {
		if !ro.state.depthFunc.Test(depth, depthBuf[depthIdx]) {
			return
		}
		if ro.state.depthWriteEnabled {
			depthBuf[depthIdx] = depth
		}
	} else if ro.state.depthWriteEnabled {
		depthBuf[depthIdx] = depth
	}

	out := RGBA{R: float64(clamp01(color[0])), G: float64(clamp01(color[1])), B: float64(clamp01(color[2])), A: float64(clamp01(color[3]))}

	if ro.state.blendEnabled {
		dst := fb.GetPixel(f.X, f.Y)
		sr, sg, sb, sa := byteFromUnit(color[0]), byteFromUnit(color[1]), byteFromUnit(color[2]), byteFromUnit(color[3])
		dr, dg, db, da := byteFromUnit(float32(dst.R)), byteFromUnit(float32(dst.G)), byteFromUnit(float32(dst.B)), byteFromUnit(float32(dst.A))
		br, bg, bb, ba := blend.BlendRGBA(ro.state.blendEquation, sr, sg, sb, sa, dr, dg, db, da)
		out = RGBA{R: float64(br) / 255, G: float64(bg) / 255, B: float64(bb) / 255, A: float64(ba) / 255}
	}

	fb.SetPixel(f.X, f.Y, out)
	s.ctx.stats.fragments.Add(1)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func byteFromUnit(v float32) byte {
	v = clamp01(v)
	return byte(v * 255)
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
