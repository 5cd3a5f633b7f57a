package swr

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	intcolor "github.com/swr-go/swr/internal/color"
	"github.com/swr-go/swr/internal/raster"
)

// Compile-time interface checks: Framebuffer's color attachment behaves
// like any other Go image, so a host can hand it to text shapers, PNG
// encoders, or draw.Draw without an adapter.
var (
	_ image.Image = (*Framebuffer)(nil)
	_ draw.Image  = (*Framebuffer)(nil)
)

// blockAlign rounds n up to the next multiple of the rasterizer's block
// size, matching the invariant that color and depth buffers are always
// block-size aligned.
func blockAlign(n int) int {
	if n <= 0 {
		return raster.BlockSize
	}
	rem := n % raster.BlockSize
	if rem == 0 {
		return n
	}
	return n + (raster.BlockSize - rem)
}

// Framebuffer is the default render target: a packed 32-bit color
// attachment in a pluggable pixel format plus a 32-bit fixed-point depth
// attachment. Its logical dimensions are rounded up to a multiple of the
// rasterizer block size so every tile is fully backed by storage.
type Framebuffer struct {
	width, height int // logical, as requested by the caller
	bufW, bufH    int // block-aligned, actual backing store dimensions

	format intcolor.Descriptor
	color  []byte   // bufW*bufH*4 bytes, packed per format
	depth  []uint32 // bufW*bufH, fixed-point DepthShift
}

// NewFramebuffer creates a render target of the given logical size using
// the ARGB8888 pixel format, the engine's default.
func NewFramebuffer(width, height int) *Framebuffer {
	return NewFramebufferFormat(width, height, intcolor.ARGB8888)
}

// NewFramebufferFormat creates a render target using an explicit pixel
// format (ARGB8888, BGRA8888, or RGBA8888).
func NewFramebufferFormat(width, height int, format intcolor.Format) *Framebuffer {
	bufW, bufH := blockAlign(width), blockAlign(height)
	return &Framebuffer{
		width:  width,
		height: height,
		bufW:   bufW,
		bufH:   bufH,
		format: intcolor.DescriptorFor(format),
		color:  make([]byte, bufW*bufH*4),
		depth:  make([]uint32, bufW*bufH),
	}
}

// Width returns the framebuffer's logical width.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the framebuffer's logical height.
func (f *Framebuffer) Height() int { return f.height }

// BufferWidth returns the block-aligned backing store width.
func (f *Framebuffer) BufferWidth() int { return f.bufW }

// BufferHeight returns the block-aligned backing store height.
func (f *Framebuffer) BufferHeight() int { return f.bufH }

// Format returns the color attachment's pixel format descriptor.
func (f *Framebuffer) Format() intcolor.Descriptor { return f.format }

// ColorBytes returns the raw packed color attachment, bufW*bufH*4 bytes.
func (f *Framebuffer) ColorBytes() []byte { return f.color }

// DepthBuffer returns the raw fixed-point depth attachment, bufW*bufH words.
func (f *Framebuffer) DepthBuffer() []uint32 { return f.depth }

func (f *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < f.bufW && y >= 0 && y < f.bufH
}

// SetPixel writes one pixel of the color attachment.
func (f *Framebuffer) SetPixel(x, y int, c RGBA) {
	if !f.inBounds(x, y) {
		return
	}
	i := (y*f.bufW + x) * 4
	packed := f.format.Pack(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
	f.color[i+0] = byte(packed >> 24)
	f.color[i+1] = byte(packed >> 16)
	f.color[i+2] = byte(packed >> 8)
	f.color[i+3] = byte(packed)
}

// GetPixel reads one pixel of the color attachment.
func (f *Framebuffer) GetPixel(x, y int) RGBA {
	if !f.inBounds(x, y) {
		return Transparent
	}
	i := (y*f.bufW + x) * 4
	packed := uint32(f.color[i+0])<<24 | uint32(f.color[i+1])<<16 | uint32(f.color[i+2])<<8 | uint32(f.color[i+3])
	r, g, b, a := f.format.Unpack(packed)
	return RGBA{R: float64(r), G: float64(g), B: float64(b), A: float64(a)}
}

// SetDepth writes one texel of the depth attachment.
func (f *Framebuffer) SetDepth(x, y int, z float32) {
	if !f.inBounds(x, y) {
		return
	}
	f.depth[y*f.bufW+x] = intcolor.DepthFromFloat(z)
}

// GetDepth reads one texel of the depth attachment, normalized to [0,1].
func (f *Framebuffer) GetDepth(x, y int) float32 {
	if !f.inBounds(x, y) {
		return 1
	}
	return intcolor.DepthToFloat(f.depth[y*f.bufW+x])
}

// Clear fills the color attachment with c. It does not touch depth; use
// ClearDepth for that, matching the engine's separate clear-mask semantics.
func (f *Framebuffer) Clear(c RGBA) {
	packed := f.format.Pack(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
	bytes4 := [4]byte{byte(packed >> 24), byte(packed >> 16), byte(packed >> 8), byte(packed)}
	for i := 0; i < len(f.color); i += 4 {
		f.color[i+0] = bytes4[0]
		f.color[i+1] = bytes4[1]
		f.color[i+2] = bytes4[2]
		f.color[i+3] = bytes4[3]
	}
}

// ClearDepth fills the depth attachment with the far-plane value z.
func (f *Framebuffer) ClearDepth(z float32) {
	stored := intcolor.DepthFromFloat(z)
	for i := range f.depth {
		f.depth[i] = stored
	}
}

// ToImage converts the logical (unaligned) region of the color attachment
// to a standard image.RGBA for host consumption (PNG encode, text shaping,
// draw.Draw destinations).
func (f *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.GetPixel(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(clamp255(c.R * 255)),
				G: uint8(clamp255(c.G * 255)),
				B: uint8(clamp255(c.B * 255)),
				A: uint8(clamp255(c.A * 255)),
			})
		}
	}
	return img
}

// SavePNG saves the framebuffer's logical color region to a PNG file.
func (f *Framebuffer) SavePNG(path string) error {
	file, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()
	return png.Encode(file, f.ToImage())
}

// At implements image.Image.
func (f *Framebuffer) At(x, y int) color.Color {
	return f.GetPixel(x, y).Color()
}

// Set implements draw.Image, letting standard library drawing code (and
// golang.org/x/image/draw) target the framebuffer directly.
func (f *Framebuffer) Set(x, y int, c color.Color) {
	f.SetPixel(x, y, FromColor(c))
}

// Bounds implements image.Image, reporting the logical (unaligned) extent.
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements image.Image.
func (f *Framebuffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// CopyDefaultColorBuffer blits the color attachment into dst, converting
// pixel format and scaling as needed. A host display surface is rarely the
// engine's own RGBA layout or size, so this goes through x/image/draw's
// general Image/draw.Image path rather than the fast byte-for-byte copy
// ToImage uses internally. scale selects the resampling kernel; pass nil
// for nearest-neighbor.
func (f *Framebuffer) CopyDefaultColorBuffer(dst draw.Image, scale xdraw.Scaler) {
	if scale == nil {
		scale = xdraw.NearestNeighbor
	}
	scale.Scale(dst, dst.Bounds(), f, f.Bounds(), xdraw.Src, nil)
}

// FromImage creates a framebuffer from a source image, for host code that
// wants to seed a render target's color attachment from a loaded texture
// or a previous frame.
func FromImage(img image.Image) *Framebuffer {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	fb := NewFramebuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fb.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return fb
}
