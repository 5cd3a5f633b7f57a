// Package texture implements 2D texture sampling: wrap modes, nearest
// and dithered-point filtering, and the hard-wired default checkerboard
// texture supplementing spec §4.6's sampler stage.
package texture

import "github.com/swr-go/swr/internal/color"

// WrapMode selects how out-of-[0,1) texture coordinates are resolved.
type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapMirroredRepeat
	WrapClampToEdge
)

// Filter selects the sampling kernel.
type Filter int

const (
	FilterNearest Filter = iota
	// FilterDithered perturbs the sample position by a per-pixel
	// ordered-dither offset before nearest-sampling, trading a regular
	// pattern of aliasing for a less structured one at minification.
	FilterDithered
)

// Texture2D is a 2D image sampled by the fragment stage.
type Texture2D struct {
	Width, Height int
	Pixels        []float32 // RGBA, row-major, 4 floats per texel
	WrapS, WrapT  WrapMode
	Filter        Filter
}

// New allocates a zeroed width x height RGBA texture.
func New(width, height int) *Texture2D {
	return &Texture2D{
		Width:  width,
		Height: height,
		Pixels: make([]float32, width*height*4),
	}
}

// SetTexel writes one texel's RGBA value.
func (t *Texture2D) SetTexel(x, y int, r, g, b, a float32) {
	i := (y*t.Width + x) * 4
	t.Pixels[i+0], t.Pixels[i+1], t.Pixels[i+2], t.Pixels[i+3] = r, g, b, a
}

func (t *Texture2D) texelAt(x, y int) (r, g, b, a float32) {
	i := (y*t.Width + x) * 4
	return t.Pixels[i+0], t.Pixels[i+1], t.Pixels[i+2], t.Pixels[i+3]
}

func wrap(mode WrapMode, coord, size int) int {
	if size <= 0 {
		return 0
	}
	switch mode {
	case WrapClampToEdge:
		if coord < 0 {
			return 0
		}
		if coord >= size {
			return size - 1
		}
		return coord
	case WrapMirroredRepeat:
		period := 2 * size
		m := ((coord % period) + period) % period
		if m >= size {
			return period - m - 1
		}
		return m
	default: // WrapRepeat
		return ((coord % size) + size) % size
	}
}

// ditherOffset implements a 2x2 ordered-dither pattern used by
// FilterDithered: alternating pixels sample a quarter-texel offset in
// opposite directions so minified textures break up into a less regular
// pattern than plain nearest sampling.
func ditherOffset(px, py int) (dx, dy float32) {
	pattern := [2][2]float32{{-0.25, -0.25}, {0.25, 0.25}}
	return pattern[px&1][py&1], pattern[py&1][px&1]
}

// Sample fetches the texel nearest (u,v), u,v in [0,1) texture space,
// applying the texture's wrap modes and filter.
func (t *Texture2D) Sample(u, v float32, px, py int) (r, g, b, a float32) {
	if t.Width == 0 || t.Height == 0 {
		return 0, 0, 0, 0
	}

	fu, fv := u*float32(t.Width), v*float32(t.Height)
	if t.Filter == FilterDithered {
		dx, dy := ditherOffset(px, py)
		fu += dx
		fv += dy
	}

	x := wrap(t.WrapS, int(fu), t.Width)
	y := wrap(t.WrapT, int(fv), t.Height)
	return t.texelAt(x, y)
}

// DefaultCheckerboard returns the engine's hard-wired 2x2 checkerboard
// fallback texture, sampled whenever a draw call references a texture
// unit with nothing bound: texel (0,0) and (1,1) are opaque white,
// (1,0) and (0,1) are opaque black, matching the original engine's
// hard-coded default texture bytes byte-for-byte.
func DefaultCheckerboard() *Texture2D {
	t := New(2, 2)
	desc := color.DescriptorFor(color.RGBA8888)
	white := unpackFloats(desc, 0xFFFFFFFF)
	black := unpackFloats(desc, 0x000000FF)
	t.SetTexel(0, 0, white[0], white[1], white[2], white[3])
	t.SetTexel(1, 0, black[0], black[1], black[2], black[3])
	t.SetTexel(0, 1, black[0], black[1], black[2], black[3])
	t.SetTexel(1, 1, white[0], white[1], white[2], white[3])
	t.WrapS, t.WrapT = WrapRepeat, WrapRepeat
	t.Filter = FilterNearest
	return t
}

func unpackFloats(d color.Descriptor, pixel uint32) [4]float32 {
	r, g, b, a := d.Unpack(pixel)
	return [4]float32{r, g, b, a}
}
