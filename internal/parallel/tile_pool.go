package parallel

import (
	"sync"
	"sync/atomic"
)

// MaxCachedTiles bounds how many tile buffers TilePool keeps alive for
// reuse. Tiles returned once this many are already cached are left for
// the garbage collector instead of retained, so a single abnormally
// large frame can't pin an unbounded amount of tile memory.
const MaxCachedTiles = 1024

// TilePool provides efficient reuse of Tile instances via sync.Pool,
// bounded to MaxCachedTiles live buffers.
//
// Thread safety: TilePool is safe for concurrent use.
type TilePool struct {
	pools sync.Map // key: poolKey(width,height) -> *sync.Pool

	fullTilePool sync.Pool // dedicated pool for full BlockSize tiles, the common case

	cached atomic.Int64
}

// NewTilePool creates a new tile pool.
func NewTilePool() *TilePool {
	p := &TilePool{}
	p.fullTilePool.New = func() any {
		return &Tile{
			Width:  TileWidth,
			Height: TileHeight,
			Color:  make([]byte, TileBytes),
			Depth:  make([]byte, TilePixels*4),
		}
	}
	return p
}

// Get retrieves a tile of the given dimensions from the pool, or
// allocates a new one if the pool is empty.
func (p *TilePool) Get(width, height int) *Tile {
	if width <= 0 || height <= 0 {
		return nil
	}

	if width == TileWidth && height == TileHeight {
		tile := p.fullTilePool.Get().(*Tile)
		tile.Reset()
		tile.X, tile.Y = 0, 0
		if p.cached.Load() > 0 {
			p.cached.Add(-1)
		}
		return tile
	}

	key := poolKey(width, height)
	pool := p.getOrCreatePool(key, width, height)
	tile := pool.Get().(*Tile)
	tile.Reset()
	tile.X, tile.Y = 0, 0
	tile.Width, tile.Height = width, height
	if p.cached.Load() > 0 {
		p.cached.Add(-1)
	}
	return tile
}

// Put returns a tile to the pool for reuse, unless the pool already
// holds MaxCachedTiles buffers, in which case the tile is dropped for
// the GC to reclaim.
func (p *TilePool) Put(tile *Tile) {
	if tile == nil {
		return
	}
	if p.cached.Load() >= MaxCachedTiles {
		slogger().Debug("tile cache full, dropping tile", "max", MaxCachedTiles)
		return
	}
	tile.Reset()
	p.cached.Add(1)

	if tile.Width == TileWidth && tile.Height == TileHeight {
		p.fullTilePool.Put(tile)
		return
	}

	key := poolKey(tile.Width, tile.Height)
	if pool, ok := p.pools.Load(key); ok {
		pool.(*sync.Pool).Put(tile)
	}
}

// poolKey packs a tile's dimensions into a lookup key, clamped to avoid overflow.
func poolKey(width, height int) uint32 {
	w, h := width, height
	if w > 0xFFFF {
		w = 0xFFFF
	}
	if h > 0xFFFF {
		h = 0xFFFF
	}
	return uint32(w)<<16 | uint32(h) //nolint:gosec // clamped above
}

func (p *TilePool) getOrCreatePool(key uint32, width, height int) *sync.Pool {
	if pool, ok := p.pools.Load(key); ok {
		return pool.(*sync.Pool)
	}
	newPool := &sync.Pool{
		New: func() any {
			return &Tile{
				Width:  width,
				Height: height,
				Color:  make([]byte, width*height*4),
				Depth:  make([]byte, width*height*4),
			}
		},
	}
	actual, _ := p.pools.LoadOrStore(key, newPool)
	return actual.(*sync.Pool)
}
