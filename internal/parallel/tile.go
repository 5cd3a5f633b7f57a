// Package parallel provides the tile-parallel dispatch infrastructure
// described in spec §5: the framebuffer is divided into fixed-size
// blocks that can be rasterized independently across goroutines, with a
// bounded LRU-style cache of reusable block buffers and an SPMC task
// pool to run them.
//
// Thread safety: TileGrid operations are NOT thread-safe by default; use
// external synchronization or submit work through a TaskPool.
package parallel

// Tile dimensions match the rasterizer's block size (internal/raster.BlockSize)
// so one tile is exactly one unit of the triangle sweep's block hierarchy.
const (
	TileWidth  = 8
	TileHeight = 8

	TilePixels = TileWidth * TileHeight

	// TileBytes is the size of a full tile's color data (RGBA8888).
	TileBytes = TilePixels * 4
)

// Tile is one block-sized region of the framebuffer, processed as a unit
// by a single TaskPool worker.
type Tile struct {
	X, Y          int // tile column/row index
	Width, Height int // actual pixel extent; smaller than TileWidth/TileHeight at the framebuffer edge

	// Color holds the tile's RGBA8888 color data, length Width*Height*4.
	Color []byte
	// Depth holds the tile's 32-bit fixed-point depth data, one uint32 per
	// pixel, stored as little-endian bytes so it can share the same pooled
	// byte-slice allocation strategy as Color.
	Depth []byte
}

// Reset clears a tile's buffers for reuse from the pool.
func (t *Tile) Reset() {
	clear(t.Color)
	clear(t.Depth)
}

// Bounds returns the tile's pixel rectangle in framebuffer space.
func (t *Tile) Bounds() (x, y, w, h int) {
	return t.X * TileWidth, t.Y * TileHeight, t.Width, t.Height
}

// ColorOffset returns the byte offset into Color for tile-local pixel
// (px,py), or -1 if out of bounds.
func (t *Tile) ColorOffset(px, py int) int {
	if px < 0 || px >= t.Width || py < 0 || py >= t.Height {
		return -1
	}
	return (py*t.Width + px) * 4
}

// DepthOffset returns the byte offset into Depth for tile-local pixel
// (px,py), or -1 if out of bounds.
func (t *Tile) DepthOffset(px, py int) int {
	if px < 0 || px >= t.Width || py < 0 || py >= t.Height {
		return -1
	}
	return (py*t.Width + px) * 4
}

// Contains reports whether framebuffer-space pixel (fx,fy) falls within
// this tile.
func (t *Tile) Contains(fx, fy int) bool {
	tx, ty := t.X*TileWidth, t.Y*TileHeight
	return fx >= tx && fx < tx+t.Width && fy >= ty && fy < ty+t.Height
}

// Stride returns the tile's color row stride in bytes.
func (t *Tile) Stride() int { return t.Width * 4 }
