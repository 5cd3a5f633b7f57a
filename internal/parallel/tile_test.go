package parallel

import "testing"

func TestTileColorOffset(t *testing.T) {
	tile := &Tile{Width: 8, Height: 8, Color: make([]byte, TileBytes)}
	if off := tile.ColorOffset(0, 0); off != 0 {
		t.Errorf("ColorOffset(0,0) = %d, want 0", off)
	}
	if off := tile.ColorOffset(1, 0); off != 4 {
		t.Errorf("ColorOffset(1,0) = %d, want 4", off)
	}
	if off := tile.ColorOffset(0, 1); off != 32 {
		t.Errorf("ColorOffset(0,1) = %d, want 32", off)
	}
	if off := tile.ColorOffset(8, 0); off != -1 {
		t.Errorf("ColorOffset(8,0) out of bounds should be -1, got %d", off)
	}
}

func TestTileContains(t *testing.T) {
	tile := &Tile{X: 1, Y: 2, Width: 8, Height: 8}
	if !tile.Contains(8, 16) {
		t.Errorf("expected tile (1,2) to contain pixel (8,16)")
	}
	if tile.Contains(7, 16) {
		t.Errorf("did not expect tile (1,2) to contain pixel (7,16)")
	}
}

func TestTileReset(t *testing.T) {
	tile := &Tile{Color: []byte{1, 2, 3, 4}, Depth: []byte{5, 6, 7, 8}}
	tile.Reset()
	for _, b := range tile.Color {
		if b != 0 {
			t.Errorf("expected Reset to zero Color data")
		}
	}
	for _, b := range tile.Depth {
		if b != 0 {
			t.Errorf("expected Reset to zero Depth data")
		}
	}
}

func TestTileGridBasics(t *testing.T) {
	g := NewTileGrid(20, 10)
	defer g.Close()

	if g.TilesX() != 3 || g.TilesY() != 2 {
		t.Fatalf("expected 3x2 tiles for a 20x10 framebuffer, got %dx%d", g.TilesX(), g.TilesY())
	}

	edge := g.TileAt(2, 0)
	if edge == nil {
		t.Fatalf("expected edge tile to exist")
	}
	if edge.Width != 4 {
		t.Errorf("expected edge tile width 4 (20 - 2*8), got %d", edge.Width)
	}
}

func TestTileGridTileAtPixel(t *testing.T) {
	g := NewTileGrid(16, 16)
	defer g.Close()

	tile := g.TileAtPixel(9, 1)
	if tile == nil || tile.X != 1 || tile.Y != 0 {
		t.Fatalf("expected pixel (9,1) to map to tile (1,0), got %+v", tile)
	}
}

func TestTileGridTilesInRect(t *testing.T) {
	g := NewTileGrid(32, 32)
	defer g.Close()

	tiles := g.TilesInRect(0, 0, 9, 9)
	if len(tiles) != 4 {
		t.Fatalf("expected a 9x9 rect to touch 4 tiles, got %d", len(tiles))
	}
}

func TestTilePoolBoundedCacheDoesNotPanic(t *testing.T) {
	pool := NewTilePool()
	var tiles []*Tile
	for i := 0; i < MaxCachedTiles+10; i++ {
		tiles = append(tiles, pool.Get(TileWidth, TileHeight))
	}
	for _, tile := range tiles {
		pool.Put(tile)
	}
	for i := 0; i < 5; i++ {
		tile := pool.Get(TileWidth, TileHeight)
		if tile == nil {
			t.Fatalf("expected pool to keep producing tiles past its cache bound")
		}
	}
}
