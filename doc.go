// Package swr implements a CPU-only software rasterization engine.
//
// # Overview
//
// swr takes transformed vertex streams through a fixed-function geometry
// front-end (primitive assembly, face culling, clipping), a block-hierarchical
// triangle sweep rasterizer, perspective-correct attribute interpolation, and
// a programmable fragment stage feeding an output merger (depth test, blend,
// framebuffer write). Work is distributed across a worker pool by tile.
//
// # Quick Start
//
//	import "github.com/swr-go/swr"
//
//	ctx := swr.NewContext(512, 512)
//	ctx.SetClearColor(swr.RGB(0, 0, 0))
//	ctx.ClearColorBuffer()
//
//	vb := ctx.CreateVertexBuffer(positions)
//	ctx.BindVertexBuffer(vb)
//	prog := ctx.CreateProgram(myProgram)
//	ctx.UseProgram(prog)
//
//	ctx.DrawArrays(swr.Triangles, 3)
//	ctx.Present()
//
// # Architecture
//
//   - Public API: Context, Framebuffer, RGBA, shader registration, buffers
//   - internal/geometry: fixed-point edge functions, barycentric interpolation
//   - internal/assemble: primitive assembly, winding, face culling
//   - internal/clip: homogeneous clipping against the view frustum
//   - internal/raster: triangle sweep and line rasterization
//   - internal/parallel: tile-based work-stealing task pool
//   - internal/blend: output merger compositing
//   - internal/color: pixel format packing/unpacking
//   - internal/texture: texture sampling and wrap/filter modes
//   - internal/shaderreg: shader program and uniform registration
//
// # Coordinate System
//
//   - Origin (0,0) at top-left of the framebuffer
//   - X increases right, Y increases down
//   - Normalized device coordinates follow OpenGL convention: Y up, Z in [-1,1]
//
// # Concurrency
//
// Rendering work for a draw call is split into framebuffer tiles and
// dispatched across a fixed worker pool; any state change that would alter
// an in-flight draw call first drains the pool.
package swr
