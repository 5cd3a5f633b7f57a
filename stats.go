package swr

import "sync/atomic"

// frameStats holds the atomic counters a Present call accumulates into;
// both fields are reset to zero at the start of each Present.
type frameStats struct {
	triangles atomic.Uint64
	fragments atomic.Uint64
}

// FrameStats reports the triangle and fragment counts from the most
// recently completed Present call.
type FrameStats struct {
	// Triangles is the number of triangles that reached the rasterizer,
	// after clipping and face culling.
	Triangles uint64
	// Fragments is the number of fragments the output merger wrote to
	// the framebuffer (after the scissor test, the fragment shader's
	// discard, and the depth test all passed).
	Fragments uint64
}

// Stats returns the triangle and fragment counts from the most recently
// completed Present call. Safe to call while a concurrent Present is
// still in flight, in which case it reports a partial, in-progress count.
func (c *Context) Stats() FrameStats {
	return FrameStats{
		Triangles: c.stats.triangles.Load(),
		Fragments: c.stats.fragments.Load(),
	}
}
