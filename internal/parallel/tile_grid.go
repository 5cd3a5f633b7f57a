package parallel

// TileGrid partitions a framebuffer into the 8x8 blocks the triangle
// sweep and tile cache operate on, stored flat in row-major order for
// cache-friendly iteration.
//
// Thread safety: TileGrid is NOT thread-safe; serialize resizes against
// in-flight tile work (drain the TaskPool first).
type TileGrid struct {
	tiles  []*Tile
	tilesX int
	tilesY int
	width  int
	height int
	pool   *TilePool
}

// NewTileGrid creates a grid covering width x height framebuffer pixels.
func NewTileGrid(width, height int) *TileGrid {
	if width <= 0 || height <= 0 {
		return &TileGrid{pool: NewTilePool()}
	}

	tilesX := (width + TileWidth - 1) / TileWidth
	tilesY := (height + TileHeight - 1) / TileHeight

	g := &TileGrid{
		tiles:  make([]*Tile, tilesX*tilesY),
		tilesX: tilesX,
		tilesY: tilesY,
		width:  width,
		height: height,
		pool:   NewTilePool(),
	}
	g.allocateTiles()
	return g
}

func (g *TileGrid) allocateTiles() {
	for ty := range g.tilesY {
		for tx := range g.tilesX {
			tileW := TileWidth
			tileH := TileHeight
			if (tx+1)*TileWidth > g.width {
				tileW = g.width - tx*TileWidth
			}
			if (ty+1)*TileHeight > g.height {
				tileH = g.height - ty*TileHeight
			}

			tile := g.pool.Get(tileW, tileH)
			tile.X = tx
			tile.Y = ty
			g.tiles[ty*g.tilesX+tx] = tile
		}
	}
}

// Resize changes the grid dimensions, releasing old tiles back to the
// pool and allocating new ones. No-op if dimensions are unchanged.
func (g *TileGrid) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		g.Close()
		*g = TileGrid{pool: g.pool}
		return
	}
	if g.width == width && g.height == height {
		return
	}

	g.Close()
	g.tilesX = (width + TileWidth - 1) / TileWidth
	g.tilesY = (height + TileHeight - 1) / TileHeight
	g.width = width
	g.height = height
	g.tiles = make([]*Tile, g.tilesX*g.tilesY)
	g.allocateTiles()
}

// TileAt returns the tile at tile coordinates (tx,ty), or nil if out of range.
func (g *TileGrid) TileAt(tx, ty int) *Tile {
	if tx < 0 || tx >= g.tilesX || ty < 0 || ty >= g.tilesY {
		return nil
	}
	return g.tiles[ty*g.tilesX+tx]
}

// TileAtPixel returns the tile containing framebuffer pixel (px,py).
func (g *TileGrid) TileAtPixel(px, py int) *Tile {
	if px < 0 || px >= g.width || py < 0 || py >= g.height {
		return nil
	}
	return g.tiles[(py/TileHeight)*g.tilesX+px/TileWidth]
}

// TilesInRect returns every tile intersecting the pixel rectangle
// (x,y,w,h), e.g. a triangle's clamped bounding box.
func (g *TileGrid) TilesInRect(x, y, w, h int) []*Tile {
	if w <= 0 || h <= 0 {
		return nil
	}
	x1, y1 := max(x, 0), max(y, 0)
	x2, y2 := min(x+w, g.width), min(y+h, g.height)
	if x1 >= x2 || y1 >= y2 {
		return nil
	}

	tx1, ty1 := x1/TileWidth, y1/TileHeight
	tx2, ty2 := (x2-1)/TileWidth, (y2-1)/TileHeight

	result := make([]*Tile, 0, (tx2-tx1+1)*(ty2-ty1+1))
	for ty := ty1; ty <= ty2; ty++ {
		for tx := tx1; tx <= tx2; tx++ {
			if tile := g.TileAt(tx, ty); tile != nil {
				result = append(result, tile)
			}
		}
	}
	return result
}

// TileCount returns the total number of tiles in the grid.
func (g *TileGrid) TileCount() int { return len(g.tiles) }

// TilesX returns the number of tile columns.
func (g *TileGrid) TilesX() int { return g.tilesX }

// TilesY returns the number of tile rows.
func (g *TileGrid) TilesY() int { return g.tilesY }

// Width returns the framebuffer width in pixels.
func (g *TileGrid) Width() int { return g.width }

// Height returns the framebuffer height in pixels.
func (g *TileGrid) Height() int { return g.height }

// AllTiles returns every tile in row-major order. The slice must not be modified.
func (g *TileGrid) AllTiles() []*Tile { return g.tiles }

// Close releases every tile back to the pool. The grid must not be used
// afterward.
func (g *TileGrid) Close() {
	for i, tile := range g.tiles {
		if tile != nil {
			g.pool.Put(tile)
			g.tiles[i] = nil
		}
	}
}

// ForEach calls fn for every tile in row-major order.
func (g *TileGrid) ForEach(fn func(tile *Tile)) {
	for _, tile := range g.tiles {
		if tile != nil {
			fn(tile)
		}
	}
}
